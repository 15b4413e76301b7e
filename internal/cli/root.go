// Package cli implements the blogsite command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/opencode-ai/blogsite/internal/config"
	"github.com/opencode-ai/blogsite/internal/logging"
	"github.com/opencode-ai/blogsite/internal/palette"
)

const (
	envPrefix       = "BLOGSITE"
	settingsName    = ".blogsite"
	defaultSitePath = "site.yaml"
)

// Settings are the CLI options resolved from flags, BLOGSITE_* environment
// variables and the optional .blogsite.yaml settings file, in that order.
type Settings struct {
	Site      string `mapstructure:"site"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
	JSON      bool   `mapstructure:"json"`
	Mode      string `mapstructure:"mode"`
}

// settingFlags maps viper keys to the persistent flags bound to them.
var settingFlags = map[string]string{
	"site":       "site",
	"log_level":  "log-level",
	"log_format": "log-format",
	"json":       "json",
	"mode":       "mode",
}

type app struct {
	configFile string
	settings   Settings
	logger     zerolog.Logger
	mode       palette.Mode
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "blogsite",
		Short: "Site config and code palettes for the blog",
		Long: `blogsite validates the site configuration consumed by the static-site
generator and manages the light/dark syntax-highlighting palettes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initialize(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "settings file (default ./"+settingsName+".yaml)")
	flags.String("site", defaultSitePath, "site config file")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", string(logging.FormatAuto), "log format (auto, console, json)")
	flags.Bool("json", false, "print JSON instead of tables")
	flags.String("mode", "", "color mode: light or dark (default from the site config)")

	root.AddCommand(
		newCheckCmd(a),
		newInitCmd(a),
		newResolveCmd(a),
		newPaletteCmd(a),
		newHighlightCmd(a),
	)
	return root
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func (a *app) initialize(cmd *cobra.Command) error {
	v := viper.New()
	v.SetDefault("site", defaultSitePath)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", string(logging.FormatAuto))

	if a.configFile != "" {
		v.SetConfigFile(a.configFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(settingsName)
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	flags := cmd.Root().PersistentFlags()
	for key, name := range settingFlags {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		// The settings file is optional unless named with --config.
		var notFound viper.ConfigFileNotFoundError
		if a.configFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read settings file: %w", err)
		}
	}

	if err := v.Unmarshal(&a.settings); err != nil {
		return fmt.Errorf("decode settings: %w", err)
	}

	logger, err := logging.Setup(logging.Options{
		Level:  a.settings.LogLevel,
		Format: logging.Format(strings.ToLower(a.settings.LogFormat)),
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	a.logger = logger
	if used := v.ConfigFileUsed(); used != "" {
		a.logger.Debug().Str("path", used).Msg("settings file loaded")
	}

	a.mode = ""
	if strings.TrimSpace(a.settings.Mode) != "" {
		mode, err := palette.ParseMode(a.settings.Mode)
		if err != nil {
			return err
		}
		a.mode = mode
	}
	return nil
}

// modeFor picks --mode, then the site's default mode, then light.
func (a *app) modeFor(cfg *config.SiteConfig) palette.Mode {
	if a.mode != "" {
		return a.mode
	}
	if cfg != nil {
		return cfg.DefaultMode()
	}
	return palette.ModeLight
}

// palettes resolves the palette pair of the site config. Without a site
// config the built-in pair is used.
func (a *app) palettes() (palette.Set, *config.SiteConfig, error) {
	cfg, err := config.Load(a.settings.Site, a.logger)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		a.logger.Debug().Str("path", a.settings.Site).Msg("no site config, using built-in palettes")
		return palette.DefaultSet(), nil, nil
	case err != nil:
		return palette.Set{}, nil, err
	}

	set, err := cfg.Palettes(cfg.ProjectDir())
	if err != nil {
		return palette.Set{}, nil, err
	}
	return set, cfg, nil
}
