package model

// Package model defines the value types shared by the runner, the session
// controller and the UI: download requests, cookie sources, runner events,
// run status and playlist summaries.
