// Package validator asks the user for input until it satisfies a rule.
package validator

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/BuzzLyutic/task-planner/internal/model"
)

var (
	NonEmpty   = regexp.MustCompile(`^.+$`)
	Priority   = regexp.MustCompile(`^(high|medium|low)$`)
	DateShape  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	ID         = regexp.MustCompile(`^\d+$`)
	FieldName  = regexp.MustCompile(`^(title|description|priority|due_date|category)$`)
	MenuChoice = regexp.MustCompile(`^[1-6]$`)
)

const (
	invalidInput = "Invalid input. Please try again."
	invalidDate  = "Invalid date format. Please try again."
)

type line struct {
	text string
	err  error
}

// Prompter writes prompts to out and reads answers line by line from in.
// Lines have no length limit. They are read on a separate goroutine so a
// canceled context unblocks a pending prompt.
type Prompter struct {
	out   io.Writer
	lines <-chan line
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	ch := make(chan line)
	go func() {
		defer close(ch)
		br := bufio.NewReader(in)
		for {
			s, err := br.ReadString('\n')
			if s != "" {
				ch <- line{text: strings.TrimSuffix(strings.TrimSuffix(s, "\n"), "\r")}
			}
			if err != nil {
				ch <- line{err: err}
				return
			}
		}
	}()
	return &Prompter{out: out, lines: ch}
}

func (p *Prompter) read(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}

// Ask re-prompts until the answer matches pattern. There is no retry limit;
// only a canceled context or a read error ends the loop early.
func (p *Prompter) Ask(ctx context.Context, prompt string, pattern *regexp.Regexp) (string, error) {
	for {
		s, err := p.read(ctx, prompt)
		if err != nil {
			return "", err
		}
		if pattern.MatchString(s) {
			return s, nil
		}
		fmt.Fprintln(p.out, invalidInput)
	}
}

// AskOptional is Ask, except that an empty answer is accepted as is.
func (p *Prompter) AskOptional(ctx context.Context, prompt string, pattern *regexp.Regexp) (string, error) {
	for {
		s, err := p.read(ctx, prompt)
		if err != nil {
			return "", err
		}
		if s == "" || pattern.MatchString(s) {
			return s, nil
		}
		fmt.Fprintln(p.out, invalidInput)
	}
}

// AskDate asks for a YYYY-MM-DD date that also exists on the calendar. A
// well-shaped but impossible date repeats the whole question.
func (p *Prompter) AskDate(ctx context.Context, prompt string) (string, error) {
	for {
		s, err := p.Ask(ctx, prompt, DateShape)
		if err != nil {
			return "", err
		}
		if model.ValidDueDate(s) {
			return s, nil
		}
		fmt.Fprintln(p.out, invalidDate)
	}
}
