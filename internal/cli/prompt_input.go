package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
)

func (a *App) promptYesNo(out io.Writer, message string) bool {
	in := a.In
	if in == nil {
		in = os.Stdin
	}
	return promptYesNoIO(in, out, message, false)
}

func promptYesNoIO(in io.Reader, out io.Writer, message string, defaultYes bool) bool {
	if out != nil {
		fmt.Fprint(out, message)
	}

	text, err := readPromptLine(in)
	if err != nil && text == "" {
		return false
	}

	text = strings.TrimSpace(strings.ToLower(text))
	if text == "" {
		return defaultYes
	}
	return text == "y" || text == "yes"
}

// readPromptLine reads until LF or CR so Enter works in cooked and raw
// terminal modes.
func readPromptLine(in io.Reader) (string, error) {
	if in == nil {
		return "", io.EOF
	}

	var buf []byte
	var one [1]byte
	for {
		n, err := in.Read(one[:])
		if n > 0 {
			if one[0] == '\n' || one[0] == '\r' {
				return string(buf), nil
			}
			buf = append(buf, one[0])
		}
		if err != nil {
			return string(buf), err
		}
	}
}
