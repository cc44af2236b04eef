package main

import (
	"fmt"
	"os"

	"github.com/diegok/pongsim/internal/app"
	"github.com/diegok/pongsim/internal/config"
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
	fmt.Fprintln(os.Stderr, "  pongsim [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --ups <n>             Physics updates per second (default: 120)")
	fmt.Fprintln(os.Stderr, "  --dps <n>             Frames drawn per second (default: 60)")
	fmt.Fprintln(os.Stderr, "  --sps <n>             Sleep cadence per second (default: 240)")
	fmt.Fprintln(os.Stderr, "  --pps <n>             Telemetry lines per second (default: 1)")
	fmt.Fprintln(os.Stderr, "  --balls <n>           Number of balls (default: 1)")
	fmt.Fprintln(os.Stderr, "  --seed <n>            Random seed (default: from the clock)")
	fmt.Fprintln(os.Stderr, "  --mute                Disable sound effects")
	fmt.Fprintln(os.Stderr, "  --log <path>          Write telemetry to a file")
	fmt.Fprintln(os.Stderr, "  --debug               Also log every point scored")
	fmt.Fprintln(os.Stderr, "  --ball-color <hex>    Ball color (default: #ffffff)")
	fmt.Fprintln(os.Stderr, "  --paddle-color <hex>  Paddle color (default: #ffffff)")
	fmt.Fprintln(os.Stderr, "  --wall-color <hex>    Wall color (default: #808080)")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Controls:")
	fmt.Fprintln(os.Stderr, "  W / S                 Left paddle")
	fmt.Fprintln(os.Stderr, "  Up / Down             Right paddle")
	fmt.Fprintln(os.Stderr, "  Esc / Q / Ctrl+C      Quit")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  pongsim --seed 42 --log pong.log")
	fmt.Fprintln(os.Stderr, "  pongsim --balls 3 --ups 240 --ball-color #ffcc00")
}
