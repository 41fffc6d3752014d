package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/anchore/fmri/fmri"
	"github.com/anchore/fmri/internal"
	"github.com/anchore/fmri/internal/log"
)

var errNoInput = errors.New("no identifiers given: provide them as arguments, with --file, or on stdin")

var (
	stdin        io.Reader = os.Stdin
	isPipedInput           = internal.IsPipedInput
)

// readIdentifiers collects raw identifier lines from (in order of preference) the arguments, the configured input
// file, or piped stdin.
func readIdentifiers(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	if path := strings.TrimSpace(appConfig.File); path != "" {
		return readIdentifierFile(path)
	}

	piped, err := isPipedInput()
	if err != nil {
		return nil, err
	}
	if !piped {
		return nil, errNoInput
	}
	log.Debug("reading identifiers from stdin")
	return scanLines(stdin)
}

func readIdentifierFile(path string) ([]string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("unable to expand path %q: %w", path, err)
	}

	f, err := fs.Open(expanded)
	if err != nil {
		return nil, fmt.Errorf("unable to open identifier file: %w", err)
	}
	defer log.CloseAndLogError(f, expanded)

	log.Debugf("reading identifiers from %q", expanded)
	return scanLines(f)
}

func scanLines(reader io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("unable to read identifiers: %w", err)
	}
	return lines, nil
}

// parseIdentifiers parses every line, returning the successfully parsed identifiers along with any failures.
func parseIdentifiers(lines []string) (*fmri.List, error) {
	list, err := fmri.ParseList(lines)
	if appConfig.DefaultPublisher != nil {
		list = withDefaultPublisher(list, *appConfig.DefaultPublisher)
	}
	return list, err
}

func withDefaultPublisher(l *fmri.List, p fmri.Publisher) *fmri.List {
	result := fmri.NewList()
	for _, f := range l.FMRIs() {
		if !f.HasPublisher() {
			f.ChangePublisher(p)
		}
		result.Add(f)
	}
	return result
}
