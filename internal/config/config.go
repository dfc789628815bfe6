package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. YTDLP_GUI_TOOL
const EnvPrefix = "YTDLP_GUI"

// Config keys
const (
	KeyTool             = "tool"
	KeySettingsFile     = "settings_file"
	KeyReleasesURL      = "releases_url"
	KeyHTTPTimeout      = "http_timeout"
	KeyInspectPlaylists = "inspect_playlists"
	KeyPlaylistTimeout  = "playlist_timeout"
	KeyLogLevel         = "log.level"
	KeyLogFormat        = "log.format"
)

// Flag names bound to config keys
const (
	FlagTool      = "tool"
	FlagSettings  = "settings"
	FlagLogLevel  = "log-level"
	FlagLogFormat = "log-format"
)

// Default values
const (
	DefaultTool            = "yt-dlp"
	DefaultReleasesURL     = "https://api.github.com/repos/yt-dlp/yt-dlp/releases/latest"
	DefaultHTTPTimeout     = 15 * time.Second
	DefaultPlaylistTimeout = 20 * time.Second
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "console"
)

// AppConfig is the process-level configuration. It is separate from
// AppSettings, which holds per-user state edited through the window.
type AppConfig struct {
	Tool             string        `mapstructure:"tool"`
	SettingsFile     string        `mapstructure:"settings_file"`
	ReleasesURL      string        `mapstructure:"releases_url"`
	HTTPTimeout      time.Duration `mapstructure:"http_timeout"`
	InspectPlaylists bool          `mapstructure:"inspect_playlists"`
	PlaylistTimeout  time.Duration `mapstructure:"playlist_timeout"`
	Log              LogConfig     `mapstructure:"log"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load resolves configuration from defaults, optional .env files, the
// environment and the given flag set, in increasing priority.
func Load(flags *pflag.FlagSet, envFiles ...string) (*AppConfig, error) {
	loadEnvFiles(envFiles...)

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// RegisterFlags adds the persistent flags that Load understands
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String(FlagTool, DefaultTool, "path or name of the yt-dlp executable")
	flags.String(FlagSettings, DefaultSettingsFile, "path of the JSON settings file")
	flags.String(FlagLogLevel, DefaultLogLevel, "log level (debug, info, warn, error)")
	flags.String(FlagLogFormat, DefaultLogFormat, "log format (console, json)")
}

// Validate checks values that would otherwise fail later and far from the cause
func (c *AppConfig) Validate() error {
	if strings.TrimSpace(c.Tool) == "" {
		return errors.New("tool must not be empty")
	}
	if strings.TrimSpace(c.SettingsFile) == "" {
		return errors.New("settings_file must not be empty")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http_timeout must be positive, got %s", c.HTTPTimeout)
	}
	if c.PlaylistTimeout <= 0 {
		return fmt.Errorf("playlist_timeout must be positive, got %s", c.PlaylistTimeout)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyTool, DefaultTool)
	v.SetDefault(KeySettingsFile, DefaultSettingsFile)
	v.SetDefault(KeyReleasesURL, DefaultReleasesURL)
	v.SetDefault(KeyHTTPTimeout, DefaultHTTPTimeout)
	v.SetDefault(KeyInspectPlaylists, true)
	v.SetDefault(KeyPlaylistTimeout, DefaultPlaylistTimeout)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogFormat, DefaultLogFormat)
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	bindings := map[string]string{
		KeyTool:         FlagTool,
		KeySettingsFile: FlagSettings,
		KeyLogLevel:     FlagLogLevel,
		KeyLogFormat:    FlagLogFormat,
	}
	for key, name := range bindings {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	return nil
}

// loadEnvFiles loads .env files that exist; variables already set win
func loadEnvFiles(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		_ = godotenv.Load(f)
	}
}
