package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword reads from the terminal without echo; tests replace it.
var readPassword = term.ReadPassword

var errEmptyPassword = errors.New("password must not be empty")

// promptLine writes "label: " to w and returns the next line of in with
// surrounding blanks removed. A final line without a newline is accepted.
func promptLine(in io.Reader, w io.Writer, label string) (string, error) {
	fmt.Fprintf(w, "%s: ", label)

	sc := bufio.NewScanner(in)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}

	line := strings.TrimSpace(sc.Text())
	if line == "" {
		return "", fmt.Errorf("%s must not be empty", strings.ToLower(label))
	}
	return line, nil
}

// promptPassword reads a password from stdin without echo. The caller
// wipes the returned slice.
func promptPassword(w io.Writer) ([]byte, error) {
	fmt.Fprint(w, "Password: ")
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, fmt.Errorf("read password: %w", err)
	}
	if len(pw) == 0 {
		return nil, errEmptyPassword
	}
	return pw, nil
}
