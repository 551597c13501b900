package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

const (
	userPrompt = "argon2> $ "
)

var (
	ErrEmptyInput = errors.New("prompt: no input received")
)

func PrintBanner(w io.Writer, version string) {
	color.New(color.FgGreen).Fprintf(w, "Argon2 v%s\n\n", version)
}

// Prints err in red
func PrintError(w io.Writer, err error) {
	color.New(color.FgRed).Fprintln(w, err)
}

// PasswordPrompt reads a password from stdin without echo when stdin
// is a terminal, or the first line of stdin otherwise.
func PasswordPrompt(message string) ([]byte, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return ReadLine(os.Stdin)
	}
	fmt.Fprintf(os.Stderr, "%s: \n", message)
	fmt.Fprint(os.Stderr, userPrompt)
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, err
	}
	if len(password) == 0 {
		return nil, ErrEmptyInput
	}
	return password, nil
}

func Password() ([]byte, error) {
	return PasswordPrompt("Password")
}

func Secret() ([]byte, error) {
	return PasswordPrompt("Secret")
}

// Reads a single line, without the line ending, from r
func ReadLine(r io.Reader) ([]byte, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return nil, ErrEmptyInput
	}
	return []byte(line), nil
}
