package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Prompter reads interactive answers from a line-oriented input stream and
// renders questions to an output stream. In production the streams are
// os.Stdin and os.Stdout; tests drive it with scripted readers.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// New returns a Prompter reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

var question = color.New(color.Bold).SprintFunc()
var hint = color.New(color.Faint).SprintFunc()
var retry = color.New(color.FgHiMagenta).SprintFunc()

// readLine reads and trims the next input line.
// io.EOF is returned when the input stream is exhausted.
func (p *Prompter) readLine() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// Ask asks a free-text question. An empty answer (or EOF) yields def.
func (p *Prompter) Ask(label, def string) string {
	if def != "" {
		fmt.Fprintf(p.out, "%s %s ", question(label), hint("("+def+")"))
	} else {
		fmt.Fprintf(p.out, "%s ", question(label))
	}
	line, err := p.readLine()
	if err != nil || line == "" {
		return def
	}
	return line
}

// AskRequired asks a free-text question that must be answered.
// Empty answers are rejected and the question is asked again.
// The only error condition is EOF before a non-empty answer arrives.
func (p *Prompter) AskRequired(label string) (string, error) {
	for {
		fmt.Fprintf(p.out, "%s ", question(label))
		line, err := p.readLine()
		if err != nil {
			return "", fmt.Errorf("required input %q not provided: %w", label, err)
		}
		if line != "" {
			return line, nil
		}
		fmt.Fprintln(p.out, retry("This field is required."))
	}
}

// Select renders a numbered menu and returns the index of the chosen
// option. Answers that are not an integer, or fall outside 1..len(options),
// are rejected and the menu is offered again. An empty answer picks the
// first option. Returns an error only on EOF.
func (p *Prompter) Select(label string, options []string) (int, error) {
	for {
		fmt.Fprintf(p.out, "%s\n", question(label))
		for i, opt := range options {
			fmt.Fprintf(p.out, "  %d) %s\n", i+1, opt)
		}
		fmt.Fprintf(p.out, "%s ", hint(fmt.Sprintf("Choose [1-%d] (1):", len(options))))
		line, err := p.readLine()
		if err != nil {
			return 0, fmt.Errorf("selection %q not provided: %w", label, err)
		}
		if line == "" {
			return 0, nil
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > len(options) {
			fmt.Fprintln(p.out, retry(fmt.Sprintf("Please enter a number between 1 and %d.", len(options))))
			continue
		}
		return n - 1, nil
	}
}

// Confirm asks a yes/no question. Empty input and EOF yield def; anything
// other than a y/n answer is asked again.
func (p *Prompter) Confirm(label string, def bool) bool {
	marker := "[y/N]"
	if def {
		marker = "[Y/n]"
	}
	for {
		fmt.Fprintf(p.out, "%s %s ", question(label), hint(marker))
		line, err := p.readLine()
		if err != nil || line == "" {
			return def
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
		fmt.Fprintln(p.out, retry("Please answer y or n."))
	}
}
