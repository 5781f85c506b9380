// Package main is the entry point for tileroom.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/cenkalti/backoff/v5"
	"github.com/joho/godotenv"

	"github.com/samdwyer/tileroom/internal/app"
	"github.com/samdwyer/tileroom/internal/palette"
	"github.com/samdwyer/tileroom/internal/telemetry"
	"github.com/samdwyer/tileroom/internal/tiling"
	"github.com/samdwyer/tileroom/internal/ui"
)

func main() {
	width := flag.Int("width", 0, "room width in cells (prompted for if omitted)")
	height := flag.Int("height", 0, "room height in cells (prompted for if omitted)")
	delay := flag.Duration("delay", app.DefaultFrameDelay, "delay between animation frames")
	printOnly := flag.Bool("print", false, "print the final tiling and exit instead of animating")
	flag.Parse()

	// Load .env file for local development
	// This makes HONEYCOMB_TILEROOM_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	ctx := context.Background()

	// Initialize telemetry. Exporter construction can fail transiently,
	// so give it a few tries before running without observability.
	shutdown, err := backoff.Retry(ctx, func() (func(context.Context) error, error) {
		return telemetry.Setup(ctx)
	}, backoff.WithBackOff(backoff.NewExponentialBackOff()), backoff.WithMaxTries(3))
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Tiling will run without observability")
		telemetry.Disable()
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	// Room dimensions come from flags or an interactive prompt.
	stdin := bufio.NewScanner(os.Stdin)
	if *width <= 0 {
		if *width, err = readDimension(stdin, "Enter room width (number of columns): "); err != nil {
			log.Fatalf("Invalid input: %v", err)
		}
	}
	if *height <= 0 {
		if *height, err = readDimension(stdin, "Enter room height (number of rows): "); err != nil {
			log.Fatalf("Invalid input: %v", err)
		}
	}

	steps, err := tiling.Tile(ctx, *height, *width)
	if err != nil {
		log.Fatalf("Tiling failed: %v", err)
	}

	if *printOnly {
		reg := palette.MustLoadRegistry()
		fmt.Print(ui.Sprint(steps[len(steps)-1], reg))
		fmt.Printf("%d placements for a %dx%d room\n", len(steps), *width, *height)
		return
	}

	a, err := app.New(app.Config{FrameDelay: *delay})
	if err != nil {
		log.Fatalf("Failed to initialize playback: %v", err)
	}

	if err := a.Run(ctx, steps); err != nil {
		log.Fatalf("Playback error: %v", err)
	}
}

// readDimension prompts for one room dimension and parses it. Anything
// that is not a positive integer is rejected before any tiling work.
func readDimension(stdin *bufio.Scanner, prompt string) (int, error) {
	fmt.Print(prompt)
	if !stdin.Scan() {
		return 0, fmt.Errorf("no input: %w", tiling.ErrInvalidDimension)
	}
	text := strings.TrimSpace(stdin.Text())
	n, err := strconv.Atoi(text)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%q: %w", text, tiling.ErrInvalidDimension)
	}
	return n, nil
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// Always set headers from our API key - the .env file may have an unexpanded
	// variable reference that doesn't work, so we construct it properly here
	apiKey := os.Getenv("HONEYCOMB_TILEROOM_API_KEY")
	dataset := os.Getenv("HONEYCOMB_TILEROOM_DATASET")
	if dataset == "" {
		dataset = "tileroom" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
