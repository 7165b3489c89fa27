package commands

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"tableflip.dev/gyoji/pkg/app"
	"tableflip.dev/gyoji/pkg/commands/options"
	"tableflip.dev/gyoji/pkg/config"
	"tableflip.dev/gyoji/pkg/locale"
	"tableflip.dev/gyoji/pkg/logging"
	"tableflip.dev/gyoji/pkg/seed"
	"tableflip.dev/gyoji/pkg/store"
	"tableflip.dev/gyoji/pkg/timeutil"
)

// rootOptions are the persistent flags shared by every verb.
type rootOptions struct {
	ConfigPath string
	Demo       bool
	ICS        string
	LogLevel   string
}

func addRootArgs(cmd *cobra.Command, o *rootOptions) {
	cmd.PersistentFlags().StringVar(&o.ConfigPath, "config", "",
		"Config file (default is .gyoji.yaml in $GYOJI_CONFIG_PATH, ./ or $HOME).")
	cmd.PersistentFlags().BoolVar(&o.Demo, "demo", false,
		"Seed sample school events around today.")
	cmd.PersistentFlags().StringVar(&o.ICS, "ics", "",
		"Import events from an iCalendar file.")
	cmd.PersistentFlags().StringVar(&o.LogLevel, "log-level", "",
		"Log level: debug, info, warn or error. Overrides the config value.")
}

// session is everything a verb needs: the loaded config, the seeded index
// and a calendar positioned on today.
type session struct {
	Config   *config.Config
	Index    *store.Index
	Calendar *app.Calendar
	Labels   locale.Locale
	Location *time.Location

	closer io.Closer
}

// sessionFor loads configuration, sets up logging and seeds the event
// index. When interactive is set, logs go to the configured file or are
// discarded so they do not draw over the terminal UI.
func sessionFor(cmd *cobra.Command, o *rootOptions, ws *options.WeekStartOptions, interactive bool) (*session, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("demo") {
		cfg.Demo = o.Demo
	}
	if o.ICS != "" {
		cfg.ICS = o.ICS
	}
	if o.LogLevel != "" {
		cfg.Log.Level = o.LogLevel
	}
	if ws != nil && ws.Raw != "" {
		cfg.WeekStart = ws.Raw
	}
	if err := cfg.Normalize(); err != nil {
		return nil, err
	}

	s := &session{Config: cfg, Labels: cfg.Labels()}

	var logOut io.Writer = os.Stderr
	if interactive {
		logOut = io.Discard
	}
	if cfg.Log.File != "" {
		f, err := logging.OpenFile(cfg.Log.File)
		if err != nil {
			return nil, err
		}
		s.closer = f
		logOut = f
	}
	if err := logging.Setup(cfg.Log.Level, logOut); err != nil {
		s.Close()
		return nil, err
	}
	if cfg.Source != "" {
		log.Debug().Str("path", cfg.Source).Msg("config loaded")
	}

	loc, _ := cfg.Location()
	weekStart, _ := cfg.WeekStartDay()
	s.Location = loc

	s.Index = store.NewIndex()
	today := timeutil.Today(time.Now(), loc)
	if _, err := seed.All(s.Index, cfg, today, loc); err != nil {
		s.Close()
		return nil, err
	}

	s.Calendar = app.NewCalendar(s.Index,
		app.WithLocation(loc),
		app.WithWeekStart(weekStart),
	)
	return s, nil
}

// Close releases the log file, if one was opened.
func (s *session) Close() {
	if s.closer != nil {
		_ = s.closer.Close()
	}
}
