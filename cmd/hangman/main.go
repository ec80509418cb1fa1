package main

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ymanor/hangman/config"
	"github.com/ymanor/hangman/display"
	"github.com/ymanor/hangman/game"
	"github.com/ymanor/hangman/wordpool"
)

var (
	GitVersion string
)

//go:embed hangman.txt
var hangmanbanner string

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fullscreen := cfg.Display != "text"
	if !fullscreen {
		fmt.Println(hangmanbanner)
		if GitVersion != "" {
			fmt.Println(GitVersion)
		}
	}
	setUpLogging(cfg, fullscreen)

	renderer := buildRenderer(cfg)
	// The full-screen renderer owns the terminal until Close. Everything
	// after this point must restore it before printing a diagnostic.
	defer renderer.Close()

	secret := wordpool.New().PickWord()
	log.Debug().Str("word", secret).Msg("picked secret word")

	controller := game.NewController(secret, cfg.MaxTries, renderer)
	if err := controller.Play(); err != nil {
		renderer.Close()
		if errors.Is(err, io.EOF) {
			return
		}
		var tooSmall display.ErrScreenTooSmall
		if errors.As(err, &tooSmall) {
			fmt.Fprintln(os.Stderr, tooSmall.Error())
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// Renderer constructors, swappable in tests.
var (
	newScreenRenderer  = func() (game.Renderer, error) { return display.NewScreen() }
	newConsoleRenderer = func() (game.Renderer, error) { return display.NewConsole() }
)

// buildRenderer picks the presentation surface. Both screen and auto mode
// try the full-screen renderer first and degrade to the simple console one
// if the environment cannot support it.
func buildRenderer(cfg *config.Config) game.Renderer {
	if cfg.Display != "text" {
		renderer, err := newScreenRenderer()
		if err == nil {
			return renderer
		}
		setUpLogging(cfg, false)
		fmt.Println(hangmanbanner)
		log.Warn().Err(err).Msg("Failed to load advanced display, using fallback simplified display")
	}
	renderer, err := newConsoleRenderer()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return renderer
}

// setUpLogging configures the global zerolog logger the way the shell
// binary needs it: a console writer on stderr, or a file when the
// full-screen surface owns the terminal (discarded if no file was given).
func setUpLogging(cfg *config.Config, fullscreen bool) {
	var w io.Writer
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		w = f
	case fullscreen:
		w = io.Discard
	default:
		output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
		output.FormatLevel = func(i interface{}) string {
			return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
		}
		output.FormatMessage = func(i interface{}) string {
			return fmt.Sprintf("%s", i)
		}
		w = output
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(w).Level(level).With().Timestamp().Logger()
	log.Logger = logger
}
