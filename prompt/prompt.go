package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/jamesbehr/symlinker/logging"
)

// Prompter asks the operator a yes/no question. Anything that is not an
// explicit yes counts as no.
type Prompter interface {
	Confirm(message string) (bool, error)
}

// New returns a survey prompter when both ends are terminals and a plain line
// reader otherwise.
func New(in *os.File, out *os.File) Prompter {
	if logging.IsTerminal(in) && logging.IsTerminal(out) {
		return &Survey{In: in, Out: out}
	}

	return NewLine(in, out)
}

// Survey renders an interactive prompt and applies the same rule as Line to
// whatever the operator types.
type Survey struct {
	In  terminal.FileReader
	Out terminal.FileWriter

	// ask defaults to survey.AskOne
	ask func(p survey.Prompt, response any, opts ...survey.AskOpt) error
}

func (s *Survey) Confirm(message string) (bool, error) {
	ask := s.ask
	if ask == nil {
		ask = survey.AskOne
	}

	answer := ""
	prompt := &survey.Input{
		Message: message + " [y/N]",
	}

	err := ask(prompt, &answer, survey.WithStdio(s.In, s.Out, os.Stderr))
	if errors.Is(err, terminal.InterruptErr) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return IsYes(answer), nil
}

// Line reads one line per question. Only "y" in any case approves.
type Line struct {
	r *bufio.Reader
	w io.Writer
}

func NewLine(r io.Reader, w io.Writer) *Line {
	return &Line{r: bufio.NewReader(r), w: w}
}

func (l *Line) Confirm(message string) (bool, error) {
	if _, err := fmt.Fprintf(l.w, "%s [y/N]\n", message); err != nil {
		return false, err
	}

	input, err := l.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("prompt: read answer: %w", err)
	}

	return IsYes(input), nil
}

func IsYes(input string) bool {
	return strings.ToLower(strings.TrimSpace(input)) == "y"
}

// Scripted answers from a fixed list, then no. Useful when the decisions are
// known in advance.
type Scripted struct {
	Answers []bool
	Asked   []string
}

func (s *Scripted) Confirm(message string) (bool, error) {
	s.Asked = append(s.Asked, message)

	if len(s.Answers) == 0 {
		return false, nil
	}

	answer := s.Answers[0]
	s.Answers = s.Answers[1:]
	return answer, nil
}
