package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/standardbeagle/find/internal/config"
	"github.com/standardbeagle/find/internal/debug"
	"github.com/standardbeagle/find/internal/display"
	"github.com/standardbeagle/find/internal/errors"
	"github.com/standardbeagle/find/internal/search"
	"github.com/standardbeagle/find/internal/source"
	"github.com/standardbeagle/find/internal/version"

	"github.com/urfave/cli/v2"
)

const (
	// HelpMessage is printed to stderr when the positional arguments are missing
	HelpMessage = "HELP: program_name file_path haystack"

	// minArgs counts the program name, the file path and the search term
	minArgs = 3
)

// exitError carries the process exit status out of the cli action
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "find",
		Usage:     "Print the lines of a file that contain a search term",
		UsageText: "find <file_path> <search_term> [--ignore-case|-i]",
		Version:   version.Version,
		Writer:    stdout,
		ErrWriter: stderr,
		// Every token goes to the option parser untouched so that unknown
		// flags are ignored instead of rejected.
		SkipFlagParsing: true,
		HideHelp:        true,
		HideHelpCommand: true,
		HideVersion:     true,
		ExitErrHandler:  func(*cli.Context, error) {},
		Action: func(c *cli.Context) error {
			return findCommand(c, stdout, stderr)
		},
	}
}

// findCommand runs one search. Its error, if any, is an *exitError.
func findCommand(c *cli.Context, stdout, stderr io.Writer) error {
	args := append([]string{c.App.Name}, c.Args().Slice()...)
	if len(args) < minArgs {
		argErr := errors.NewArgumentError(HelpMessage, len(args), minArgs)
		fmt.Fprintln(stderr, argErr)
		return &exitError{code: 1, err: argErr}
	}

	filePath, term := args[1], args[2]
	cfg := config.FromArgs(args[minArgs:])

	src, err := source.Open(filePath)
	if err != nil {
		// Reported on stdout, not stderr.
		fmt.Fprintf(stdout, "Exit with error: %v\n", err)
		debug.CatastrophicError("open %s: %v\n", filePath, err)
		return &exitError{code: 1, err: err}
	}
	defer src.Close()

	matched, err := search.PrintMatches(src, search.NewMatcher(term, cfg), display.NewPrinter(stdout))
	if err != nil {
		fmt.Fprintf(stderr, "Exit with error: %v\n", err)
		debug.CatastrophicError("%v\n", err)
		return &exitError{code: 1, err: err}
	}

	debug.Printf("%s: %d matching lines in %s\n", version.FullInfo(), matched, filePath)
	return nil
}

// run executes the command with the given arguments and returns the exit status
func run(args []string, stdout, stderr io.Writer) int {
	if debug.IsDebugEnabled() {
		if _, err := debug.InitDebugLogFile(debug.DefaultLogConfig()); err == nil {
			defer debug.CloseDebugLog()
		}
	}

	err := newApp(stdout, stderr).RunContext(context.Background(), args)
	if err == nil {
		return 0
	}

	var exitErr *exitError
	if stderrors.As(err, &exitErr) {
		return exitErr.code
	}
	fmt.Fprintf(stderr, "Fatal error: %v\n", err)
	return 1
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}
