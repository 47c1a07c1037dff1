package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	logger "github.com/PolarWolf314/liteend/internal/logging"
	"github.com/PolarWolf314/liteend/internal/ui"
	"github.com/briandowns/spinner"
)

// startSpinner creates and starts a spinner with the given message when not in verbose or debug mode.
// Returns the spinner and a function that should be deferred to clean up.
//
// spinner.FinalMSG values do not need trailing newlines; the cleanup function adds one.
func startSpinner(l logger.Logger, message string) (*spinner.Spinner, func()) {
	quiet := !l.Verbose && !l.Debug
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		l.Debugf("Failed to set spinner color: %v", err)
	}

	if quiet {
		s.Start()
		log.SetOutput(io.Discard)
	} else {
		l.Infof("%s", message)
	}

	cleanup := func() {
		if quiet {
			log.SetOutput(os.Stdout)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Cleared so s.Stop() doesn't print it a second time.
			s.FinalMSG = ""
		}

		if quiet {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// printStatus writes a colored status line to w.
func printStatus(w io.Writer, kind ui.StatusKind, msg string) {
	ui.Status(w, kind, msg)
}

// printError writes a red status line for msg and, when present, the underlying error.
func printError(w io.Writer, msg string, err error) {
	if err != nil {
		msg = msg + ": " + err.Error()
	}
	ui.Status(w, ui.StatusError, msg)
}
