package config

import "github.com/namsral/flag"

type Config struct {
	MaxTries int
	Display  string
	LogLevel string
	LogFile  string
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("hangman", flag.ContinueOnError)
	fs.IntVar(&c.MaxTries, "max-tries", 10, "number of incorrect guesses allowed before the game is lost")
	fs.StringVar(&c.Display, "display", "auto", "display mode: auto, screen or text")
	fs.StringVar(&c.LogLevel, "log-level", "info", "log level: debug, info, warn or error")
	fs.StringVar(&c.LogFile, "log-file", "", "write logs to this file instead of stderr")
	err := fs.Parse(args)
	return err
}
