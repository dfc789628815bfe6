// Package ui contains the Fyne main window. It collects user input, hands it
// to a session.Session and renders the resulting output log.
package ui
