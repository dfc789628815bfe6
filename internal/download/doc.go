// Package download turns a model.DownloadRequest into a yt-dlp invocation
// and runs it in the background. Output lines and the final exit status are
// delivered as model.Event values on a per-run channel.
package download
