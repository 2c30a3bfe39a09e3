// Package cli implements the ksa operator commands: serving the API,
// applying migrations and working with reference and bearer tokens.
package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/kamrul-CSE-official/ksa-backend/internal/config"
)

var (
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
	failColor = color.New(color.FgRed)
)

// loadConfig is replaced in tests.
var loadConfig = config.Load

// PrintError writes err in red. main uses it for every command failure.
func PrintError(w io.Writer, err error) {
	failColor.Fprintf(w, "error: %v\n", err) //nolint:errcheck
}

func printf(w io.Writer, c *color.Color, format string, args ...any) {
	c.Fprintf(w, format, args...) //nolint:errcheck
}

func statusLabel(applied bool) string {
	if applied {
		return okColor.Sprint("applied")
	}
	return warnColor.Sprint("pending")
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
