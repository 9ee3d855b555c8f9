// Package cmd implements the CLI application to manage the ledger.
package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"

	"github.com/etnz/smartledger"
	"github.com/etnz/smartledger/parser"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Commands lists the subcommands of the application.
// A main package registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&addCmd{},
	&txCmd{},
	&summaryCmd{},
	&parseCmd{},
	&scanCmd{},
	&editCmd{},
	&exportCmd{},
	&importCmd{},
	&budgetCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var homeDir = flag.String("home", "", "Path to the ledger home directory (default $SMARTLEDGER_HOME or ~/.smartledger)")
var verbose = flag.Bool("v", false, "Enable debug logging")

// home resolves the ledger home directory from the flag, the environment, or
// the user home.
func home() string {
	if *homeDir != "" {
		return *homeDir
	}
	if env := os.Getenv("SMARTLEDGER_HOME"); env != "" {
		return env
	}
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".smartledger")
	}
	return ".smartledger"
}

// openStore returns the store of the application home directory.
func openStore() *smartledger.Store {
	return smartledger.NewStore(home())
}

// newLogger builds the console logger used by the parser client.
func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// newParser builds the extraction client from the environment. The key comes
// from GEMINI_API_KEY (or the .env file loaded at startup).
func newParser(ctx context.Context) (*parser.Client, error) {
	return parser.New(ctx, "",
		parser.WithModel(os.Getenv("SMARTLEDGER_MODEL")),
		parser.WithLogger(newLogger()))
}
