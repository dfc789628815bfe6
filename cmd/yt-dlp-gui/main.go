package main

import "github.com/ytget/yt-dlp-gui/internal/cli"

var version = "dev"

func main() {
	cli.Main(version)
}
