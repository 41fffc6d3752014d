package internal

import (
	"fmt"
	"os"
)

// IsPipedInput reports whether stdin is a pipe or a redirected file rather than a terminal, meaning identifiers
// **may** be waiting to be read from it.
func IsPipedInput() (bool, error) {
	return isPiped(os.Stdin)
}

func isPiped(f *os.File) (bool, error) {
	fi, err := f.Stat()
	if err != nil {
		return false, fmt.Errorf("unable to determine if there is piped input on %s: %w", f.Name(), err)
	}

	return fi.Mode()&os.ModeCharDevice == 0, nil
}
