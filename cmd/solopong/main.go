package main

import (
	"fmt"
	"os"

	"github.com/diegok/solopong/internal/app"
	"github.com/diegok/solopong/internal/config"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	application := app.NewApp(cfg)
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  solopong [options]                Play against the computer")
	fmt.Fprintln(os.Stderr, "  solopong --replay <file>          Watch a recorded match")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --ai-speed <v>      AI paddle speed per tick (default: 2.5, max: 8)")
	fmt.Fprintln(os.Stderr, "  --seed <n>          Serve seed (default: clock)")
	fmt.Fprintln(os.Stderr, "  --mute              Start with sound off")
	fmt.Fprintln(os.Stderr, "  --log <file>        Write JSON logs to file")
	fmt.Fprintln(os.Stderr, "  --record <file>     Record the match to file")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Controls:")
	fmt.Fprintln(os.Stderr, "  W/S or Up/Down      Move your paddle")
	fmt.Fprintln(os.Stderr, "  M                   Toggle sound")
	fmt.Fprintln(os.Stderr, "  Q or Esc            Quit")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  solopong --ai-speed 4")
	fmt.Fprintln(os.Stderr, "  solopong --seed 42 --record match.trace")
	fmt.Fprintln(os.Stderr, "  solopong --replay match.trace")
}
