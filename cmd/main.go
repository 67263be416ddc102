package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"tapclock/internal/core/clockengine"
	"tapclock/internal/core/timefmt"
	"tapclock/internal/storage"
	"tapclock/internal/ui/preferences"
	"tapclock/internal/ui/terminal"
)

const (
	appName = "tapclock"
	appID   = "com.tapclock.app"
)

type options struct {
	configPath  string
	stopTime    string
	terminal    bool
	writeConfig bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		log.Printf("%s: %v", appName, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var opts options

	command := &cobra.Command{
		Use:           appName,
		Short:         "A tap-to-reverse count-up/count-down clock",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, _ []string) error {
			settings, path, err := resolveSettings(opts)
			if err != nil {
				return err
			}

			if opts.writeConfig {
				if err := storage.SaveSettings(path, settings); err != nil {
					return err
				}
				fmt.Fprintf(command.OutOrStdout(), "settings written to %s\n", path)
				return nil
			}

			clock := clockwork.NewRealClock()
			engine := clockengine.New(settings.ClockConfig(), clockengine.Config{Clock: clock})
			defer engine.Close()

			if opts.terminal {
				return terminal.Run(command.Context(), engine, clock)
			}
			return runDesktop(command.Context(), engine, clock, settings, path)
		},
	}

	flags := command.Flags()
	flags.StringVar(&opts.configPath, "config", "", "settings file (default: user config dir)")
	flags.StringVar(&opts.stopTime, "stop-time", "", "stop time as M:SS or \"infinity\"")
	flags.BoolVar(&opts.terminal, "terminal", false, "run in the terminal instead of a window")
	flags.BoolVar(&opts.writeConfig, "write-config", false, "write the resolved settings and exit")

	return command
}

// resolveSettings loads the settings file and applies flag overrides. A
// broken settings file is logged and replaced by defaults; a bad
// --stop-time is an error.
func resolveSettings(opts options) (preferences.Settings, string, error) {
	path := opts.configPath
	if path == "" {
		defaultPath, err := storage.DefaultPath(appName)
		if err != nil {
			return preferences.Settings{}, "", err
		}
		path = defaultPath
	}

	settings, err := storage.LoadSettings(path)
	if err != nil {
		log.Printf("settings load: %v", err)
		settings = preferences.DefaultSettings()
	}

	if opts.stopTime != "" {
		stopTime, err := timefmt.Parse(opts.stopTime)
		if err != nil {
			return preferences.Settings{}, "", fmt.Errorf("--stop-time: %w", err)
		}
		if stopTime <= 0 {
			return preferences.Settings{}, "", fmt.Errorf("--stop-time %q: %w", opts.stopTime, clockengine.ErrNonPositiveStopTime)
		}
		settings.StopTime = stopTime
	}

	return settings, path, nil
}
