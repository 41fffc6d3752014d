package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/profile"
	"golang.org/x/term"
)

func stderrPrintLnf(message string, args ...interface{}) error {
	if !strings.HasSuffix(message, "\n") {
		message += "\n"
	}
	_, err := fmt.Fprintf(os.Stderr, message, args...)
	return err
}

// isTerminal reports whether the writer is an interactive terminal (and can be given color output).
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// withProfiling runs fn under the CPU or memory profiler when one is enabled in the dev options.
func withProfiling(fn func() error) error {
	switch {
	case appConfig == nil:
	case appConfig.Dev.ProfileCPU:
		defer profile.Start(profile.CPUProfile).Stop()
	case appConfig.Dev.ProfileMem:
		defer profile.Start(profile.MemProfile).Stop()
	}
	return fn()
}
