// Package cli defines the yt-dlp-gui command line. Without a subcommand it
// opens the main window; the download and check-updates subcommands run the
// same session logic headless.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ytget/yt-dlp-gui/internal/config"
	"github.com/ytget/yt-dlp-gui/internal/download"
	"github.com/ytget/yt-dlp-gui/internal/logger"
	"github.com/ytget/yt-dlp-gui/internal/platform"
	"github.com/ytget/yt-dlp-gui/internal/session"
	"github.com/ytget/yt-dlp-gui/internal/update"
)

// app is everything a command needs, built after flags are parsed
type app struct {
	cfg      *config.AppConfig
	log      *zap.SugaredLogger
	settings config.AppSettings
	session  *session.Session
}

// NewRootCommand builds the command tree
func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "yt-dlp-gui",
		Short:         "Desktop front end for yt-dlp",
		Long:          "yt-dlp-gui downloads videos and audio with yt-dlp. Run without a subcommand to open the window.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, nil)
			if err != nil {
				return err
			}
			defer a.log.Sync()
			return runGUI(cmd.Context(), a)
		},
	}

	config.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(downloadCmd())
	rootCmd.AddCommand(checkUpdatesCmd())
	rootCmd.AddCommand(versionCmd(version))

	return rootCmd
}

// newApp loads configuration and wires the session. starter replaces the
// process starter when non-nil.
func newApp(cmd *cobra.Command, starter download.ProcessStarter) (*app, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	settings := config.LoadSettings(cfg.SettingsFile)
	log.Debugw("Configuration loaded",
		"tool", cfg.Tool,
		"settings_file", cfg.SettingsFile,
		"video_dir", settings.VideoDir,
		"audio_dir", settings.AudioDir,
	)

	runnerOpts := []download.Option{download.WithLogger(log)}
	if starter != nil {
		runnerOpts = append(runnerOpts, download.WithStarter(starter))
	}
	runner := download.NewRunner(cfg.Tool, runnerOpts...)

	checker := update.NewChecker(cfg.Tool, cfg.HTTPTimeout, log)
	checker.ReleasesURL = cfg.ReleasesURL

	sessOpts := []session.Option{
		session.WithLogger(log),
		session.WithChecker(checker),
	}
	if cfg.InspectPlaylists {
		sessOpts = append(sessOpts, session.WithInspector(platform.NewPlaylistInspector(cfg.PlaylistTimeout, log)))
	}

	return &app{
		cfg:      cfg,
		log:      log,
		settings: settings,
		session:  session.New(settings, runner, sessOpts...),
	}, nil
}

func versionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}

func checkUpdatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-updates",
		Short: "Compare the installed yt-dlp with the latest release",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, nil)
			if err != nil {
				return err
			}
			defer a.log.Sync()

			out := newTerminalOutput(cmd.OutOrStdout(), nil)
			a.session.CheckForUpdates(cmd.Context(), out)
			return nil
		},
	}
}
