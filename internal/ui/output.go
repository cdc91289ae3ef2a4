package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen)
	failureColor = color.New(color.FgRed)
	warnColor    = color.New(color.FgYellow)
	accentColor  = color.New(color.FgBlue)
	boldColor    = color.New(color.Bold)
)

func Success(w io.Writer, message string) {
	successColor.Fprintln(w, "✔ "+message)
}

func Failure(w io.Writer, message string) {
	failureColor.Fprintln(w, "✖ "+message)
}

func Warn(w io.Writer, message string) {
	warnColor.Fprintln(w, message)
}

func Accent(w io.Writer, message string) {
	accentColor.Fprintln(w, message)
}

func Heading(w io.Writer, message string) {
	boldColor.Fprintln(w, message)
}

// Errorf prints a red "Error: ..." line.
func Errorf(w io.Writer, format string, args ...any) {
	failureColor.Fprintln(w, "Error: "+fmt.Sprintf(format, args...))
}
