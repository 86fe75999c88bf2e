// Package outwriter has output and writer logic.
package outwriter

import (
	"fmt"
	"io"
	"os"

	"github.com/hotdata/tagtrend/internal/contract"
	"golang.org/x/term"
)

// createFormatters returns the float formatter for the configured
// precision along with the integer format string.
func createFormatters(precision int) (func(float64) string, string) {
	fmtFloat := func(v float64) string {
		return fmt.Sprintf("%.*f", precision, v)
	}
	return fmtFloat, "%d"
}

// writeWithFile opens the output target, runs the writer callback and
// reports where the data went when it was not stdout.
func writeWithFile(path string, fn func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(path)
	if err != nil {
		return err
	}
	defer func() {
		if file != os.Stdout {
			_ = file.Close()
		}
	}()

	if err := fn(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, path)
	}
	return nil
}

// tableStatusWriter is where "wrote output" notices go, keeping stdout
// clean for the data itself.
func tableStatusWriter() io.Writer {
	return os.Stderr
}

// maxTableTagColumns caps how many tag columns fit in the terminal
// table; remaining tags are summarized. CSV/JSON/parquet outputs are
// never truncated.
func maxTableTagColumns(cfg *contract.Config) int {
	termWidth := cfg.Width
	if termWidth == 0 {
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Period column plus borders and padding, then ~12 chars per tag column
	available := (termWidth - 16) / 12
	if available < 1 {
		return 1
	}
	return available
}
