package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// prompter reads answers line by line. Every read returns io.EOF once the
// input is exhausted.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func (p *prompter) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}

func (p *prompter) title(t string) {
	p.printf("\n%s\n%s\n\n", t, strings.Repeat("-", len(t)))
}

func (p *prompter) line(prompt string) (string, error) {
	p.printf("%s", prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// required re-prompts until the answer is not blank.
func (p *prompter) required(prompt string) (string, error) {
	for {
		s, err := p.line(prompt)
		if err != nil || s != "" {
			return s, err
		}
		p.printf("A value is required.\n")
	}
}

// optionalInt accepts a blank answer (nil) or an integer in [min, max].
func (p *prompter) optionalInt(prompt string, min, max int) (*int, error) {
	for {
		s, err := p.line(prompt)
		if err != nil {
			return nil, err
		}
		if s == "" {
			return nil, nil
		}
		n, convErr := strconv.Atoi(s)
		if convErr == nil && n >= min && n <= max {
			return &n, nil
		}
		p.printf("Enter a number between %d and %d, or leave blank.\n", min, max)
	}
}

// menu prints numbered items and returns the index of the chosen one. An
// answer is either the item's number or its text, case-insensitively. When
// allowBlank is set a blank answer returns -1.
func (p *prompter) menu(prompt string, items []string, allowBlank bool) (int, error) {
	for {
		p.printf("%s\n", prompt)
		for i, item := range items {
			p.printf("%d. %s\n", i+1, item)
		}
		s, err := p.line("> ")
		if err != nil {
			return 0, err
		}
		if s == "" && allowBlank {
			return -1, nil
		}
		if n, convErr := strconv.Atoi(s); convErr == nil && n >= 1 && n <= len(items) {
			return n - 1, nil
		}
		for i, item := range items {
			if strings.EqualFold(s, item) {
				return i, nil
			}
		}
		p.printf("%q is not a valid option.\n", s)
	}
}
