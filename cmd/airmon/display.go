package main

import (
	"context"
	"fmt"
)

// Display renders the frames produced by the monitor. Show and
// ShowError may be called from any goroutine, while Loop runs on the
// main goroutine until the user quits or ctx is done.
type Display interface {
	Show(f Frame)
	ShowError(err error)
	Loop(ctx context.Context) error
}

func NewDisplay(kind string) (Display, error) {
	switch kind {
	case "window":
		return newWindowDisplay(), nil
	case "terminal":
		return newTerminalDisplay(), nil
	case "log":
		return newLogDisplay(), nil
	}
	return nil, fmt.Errorf("unknown display '%s'", kind)
}
