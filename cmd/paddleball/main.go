package main

import (
	"fmt"
	"log"
	"os"

	"github.com/diegok/paddleball/internal/app"
	"github.com/diegok/paddleball/internal/audio"
	"github.com/diegok/paddleball/internal/config"
	"github.com/diegok/paddleball/internal/speaker"
	"github.com/diegok/paddleball/internal/window"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code so deferred cleanup happens before exit.
func run(args []string) int {
	cfg, err := config.ParseArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		return 1
	}

	if logFile := app.SetupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	// The game still runs without an audio device.
	var out audio.Output
	if spk, err := speaker.Open(); err != nil {
		log.Printf("Sound disabled: %v", err)
	} else {
		defer spk.Close()
		out = spk
	}

	application, err := app.NewApp(cfg, out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	front := app.Terminal
	if cfg.UI == config.UIWindow {
		front = func(a *app.App) error {
			return window.Run(a, window.Options{Scale: cfg.Scale, Debug: cfg.Debug})
		}
	}

	if err := application.Run(front); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  paddleball [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --ui <terminal|window>  Frontend (default: terminal)")
	fmt.Fprintln(os.Stderr, "  --fps <n>               Terminal frame rate (default: 60)")
	fmt.Fprintln(os.Stderr, "  --scale <f>             Window scale factor (default: 1)")
	fmt.Fprintln(os.Stderr, "  --frames <n>            Stop after n frames")
	fmt.Fprintln(os.Stderr, "  --demo                  Computer plays both paddles")
	fmt.Fprintln(os.Stderr, "  --mute                  Start with sound off")
	fmt.Fprintln(os.Stderr, "  --debug                 Write logs/paddleball.log")
	fmt.Fprintln(os.Stderr, "  --config <file>         TOML settings file")
	fmt.Fprintln(os.Stderr, "  --env <file>            dotenv file (default: .env)")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Keys:")
	fmt.Fprintln(os.Stderr, "  Up/Down or W/S  move   m  sound on/off   q/Esc  quit")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  paddleball")
	fmt.Fprintln(os.Stderr, "  paddleball --ui window --scale 1.5")
	fmt.Fprintln(os.Stderr, "  PADDLEBALL_MUTE=1 paddleball --demo --frames 600")
}
