package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// session wraps the prompt/answer loop shared by all three menus.
// Every menu runs until the user picks 0 or input reaches EOF; structure
// errors are printed and control returns to the prompt.
type session struct {
	in  *bufio.Scanner
	out io.Writer
}

func newSession(in io.Reader, out io.Writer) *session {
	return &session{in: bufio.NewScanner(in), out: out}
}

func (s *session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// readInt prompts until it parses an integer. ok is false once input is
// exhausted.
func (s *session) readInt(prompt string) (n int, ok bool) {
	for {
		s.printf("%s", prompt)
		if !s.in.Scan() {
			return 0, false
		}
		v, err := strconv.Atoi(strings.TrimSpace(s.in.Text()))
		if err != nil {
			s.printf("Please enter a number\n")
			continue
		}

		return v, true
	}
}
