package ui

import (
	"fmt"
	"io"
)

// StatusKind selects the marker and color of a status line.
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusWarning
	StatusError
)

func (k StatusKind) String() string {
	switch k {
	case StatusSuccess:
		return "success"
	case StatusWarning:
		return "warning"
	case StatusError:
		return "error"
	default:
		return "info"
	}
}

// marker returns the symbol printed before the message.
func (k StatusKind) marker() string {
	switch k {
	case StatusSuccess:
		return Success.Sprint("✓")
	case StatusWarning:
		return Warning.Sprint("⚠")
	case StatusError:
		return Error.Sprint("✗")
	default:
		return Info.Sprint("→")
	}
}

// StatusLine renders a single status line without a trailing newline.
func StatusLine(kind StatusKind, msg string) string {
	var body string
	switch kind {
	case StatusSuccess:
		body = Success.Sprint(msg)
	case StatusError:
		body = Error.Sprint(msg)
	case StatusWarning:
		body = Warning.Sprint(msg)
	default:
		body = Info.Sprint(msg)
	}
	return kind.marker() + " " + body
}

// Status writes a status line followed by a newline to w.
func Status(w io.Writer, kind StatusKind, msg string) {
	fmt.Fprintln(w, StatusLine(kind, msg))
}
