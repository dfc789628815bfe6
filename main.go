package main

import "github.com/ytget/yt-dlp-gui/internal/cli"

// version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	cli.Main(version)
}
