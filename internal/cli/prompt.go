package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseError reports prompt input that does not parse as the expected type.
// Prompting is strictly one-shot: a ParseError ends the run, there is no
// retry loop.
type ParseError struct {
	Field string // which prompt failed, e.g. "blend weight"
	Input string // the raw line as entered
	Want  string // what would have parsed, e.g. "an integer"
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s %q: expected %s", e.Field, e.Input, e.Want)
}

// prompter reads sequential line-based prompts. It implements
// compose.Prompter for the transparency questions and adds the path and
// numeric prompts the driver needs.
type prompter struct {
	in     *bufio.Scanner
	out    io.Writer
	labels Prompts
}

func newPrompter(in io.Reader, out io.Writer, labels Prompts) *prompter {
	return &prompter{
		in:     bufio.NewScanner(in),
		out:    out,
		labels: labels,
	}
}

// readLine prints the label and reads one line. Running out of input is
// fatal like any other parse failure.
func (p *prompter) readLine(label, field string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read %s: %w", field, err)
		}
		return "", &ParseError{Field: field, Input: "", Want: "a line of input"}
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// readPath reads a filename. Only emptiness is rejected here; existence and
// decodability are the loader's concern.
func (p *prompter) readPath(label, field string) (string, error) {
	line, err := p.readLine(label, field)
	if err != nil {
		return "", err
	}
	if line == "" {
		return "", &ParseError{Field: field, Input: "", Want: "a filename"}
	}
	return line, nil
}

func (p *prompter) askYesNo(label, field string) (bool, error) {
	line, err := p.readLine(label, field)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, &ParseError{Field: field, Input: line, Want: "yes or no"}
	}
}

func (p *prompter) askInt(label, field string) (int, error) {
	line, err := p.readLine(label, field)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(line)
	if err != nil {
		return 0, &ParseError{Field: field, Input: line, Want: "an integer"}
	}
	return v, nil
}

// askInts reads exactly n space-separated integers from one line.
func (p *prompter) askInts(label, field string, n int) ([]int, error) {
	line, err := p.readLine(label, field)
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(line)
	if len(fields) != n {
		return nil, &ParseError{Field: field, Input: line, Want: fmt.Sprintf("%d space-separated integers", n)}
	}
	values := make([]int, n)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, &ParseError{Field: field, Input: line, Want: fmt.Sprintf("%d space-separated integers", n)}
		}
		values[i] = v
	}
	return values, nil
}

// ConfirmAlpha implements compose.Prompter.
func (p *prompter) ConfirmAlpha() (bool, error) {
	return p.askYesNo(p.labels.HonorAlpha, "transparency answer")
}

// ConfirmColorKey implements compose.Prompter.
func (p *prompter) ConfirmColorKey() (bool, error) {
	return p.askYesNo(p.labels.UseColorKey, "color key answer")
}

// ReadColorKey implements compose.Prompter.
func (p *prompter) ReadColorKey() (r, g, b int, err error) {
	values, err := p.askInts(p.labels.ColorKey, "transparency color", 3)
	if err != nil {
		return 0, 0, 0, err
	}
	return values[0], values[1], values[2], nil
}
