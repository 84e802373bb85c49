package output

import (
	"io"
	"strings"
)

// Process exit codes.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// Exit is the outcome of a command: the text to print and the code to exit
// with.
type Exit struct {
	Code int
	Text string
}

// WriteTo writes the exit text to w.
func (e Exit) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, e.Text)
	return int64(n), err
}

// Render builds the Exit for a command outcome. An error yields its message
// on a single line and ExitFailure; v is then ignored. Otherwise v is
// formatted, preceded by a heading when header is not empty, with
// ExitSuccess.
func Render(err error, v any, header string) Exit {
	if err != nil {
		msg := strings.ReplaceAll(err.Error(), "\n", " ")
		return Exit{Code: ExitFailure, Text: msg + "\n"}
	}

	var b strings.Builder
	if header != "" {
		_ = Heading(&b, header)
	}
	_ = Format(&b, v)
	return Exit{Code: ExitSuccess, Text: b.String()}
}
