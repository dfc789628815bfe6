package cli

import (
	"context"

	fyneapp "fyne.io/fyne/v2/app"

	"github.com/ytget/yt-dlp-gui/internal/ui"
)

// AppID identifies the application to the desktop environment
const AppID = "io.github.ytget.yt-dlp-gui"

// runGUI blocks until the main window is closed
func runGUI(ctx context.Context, a *app) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fa := fyneapp.NewWithID(AppID)
	w := fa.NewWindow(ui.AppTitle)
	ui.NewRootUI(ctx, w, a.session, a.cfg.SettingsFile, a.log)

	a.log.Infow("Window opened", "tool", a.cfg.Tool)
	w.ShowAndRun()
	a.log.Infow("Window closed")
	return nil
}
