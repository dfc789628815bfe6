package model

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	// ErrEmptyURL is returned when the URL is blank after trimming
	ErrEmptyURL = errors.New("url is empty")

	// ErrTargetNotDirectory is returned when the download target is missing or is not a directory
	ErrTargetNotDirectory = errors.New("download directory does not exist")
)

// DownloadRequest is everything the runner needs for one download attempt.
// It is built once per attempt and never modified afterwards.
type DownloadRequest struct {
	URL             string
	TargetDirectory string
	AudioOnly       bool
	Cookies         CookieSource
}

// NewDownloadRequest validates user input and builds a request.
func NewDownloadRequest(url, targetDir string, audioOnly bool, cookies CookieSource) (DownloadRequest, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return DownloadRequest{}, ErrEmptyURL
	}

	info, err := os.Stat(targetDir)
	if err != nil || !info.IsDir() {
		return DownloadRequest{}, fmt.Errorf("%w: %s", ErrTargetNotDirectory, targetDir)
	}

	return DownloadRequest{
		URL:             url,
		TargetDirectory: targetDir,
		AudioOnly:       audioOnly,
		Cookies:         cookies,
	}, nil
}

// Kind returns "audio" or "video"
func (r DownloadRequest) Kind() string {
	if r.AudioOnly {
		return "audio"
	}
	return "video"
}
