package contract

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Color variables for console output.
var (
	errorColor = color.New(color.FgRed, color.Bold)
	warnColor  = color.New(color.FgYellow)
)

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s %s: %v\n", errorColor.Sprint("❌"), msg, err)
	os.Exit(1)
}

// LogWarn logs a warning without aborting.
func LogWarn(msg string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %s: %v\n", warnColor.Sprint("⚠️"), msg, err)
		return
	}
	fmt.Fprintf(os.Stderr, "%s %s\n", warnColor.Sprint("⚠️"), msg)
}
