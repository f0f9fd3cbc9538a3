package main

import (
	"errors"
	"os"

	"github.com/fatih/color"
)

// errSilent makes the process exit non-zero after the failure was already printed.
var errSilent = errors.New("")

type printer struct {
	success *color.Color
	err     *color.Color
}

func newPrinter() *printer {
	return &printer{
		success: color.New(color.FgGreen, color.Bold),
		err:     color.New(color.FgRed, color.Bold),
	}
}

func (p *printer) Success(format string, args ...any) {
	p.success.Fprintf(os.Stdout, "✔ "+format+"\n", args...)
}

func (p *printer) Error(format string, args ...any) {
	p.err.Fprintf(os.Stderr, "✘ "+format+"\n", args...)
}
