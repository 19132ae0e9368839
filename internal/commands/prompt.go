package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/peterh/liner"
)

// ErrAborted is returned when the user cancels a prompt with ctrl+c.
var ErrAborted = errors.New("aborted")

// prompter reads one line of input. *liner.State satisfies it.
type prompter interface {
	Prompt(prompt string) (string, error)
	Close() error
}

// newPrompter is replaced in tests with a scripted prompter.
var newPrompter = func() prompter {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return line
}

func ask(p prompter, label, def string) (string, error) {
	text := label + ": "
	if def != "" {
		text = fmt.Sprintf("%s [%s]: ", label, def)
	}
	answer, err := p.Prompt(text)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", ErrAborted
		}
		return "", err
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// confirm asks a yes/no question. Anything but y/yes is a no.
func confirm(p prompter, question string) bool {
	answer, err := ask(p, question+" [y/N]", "")
	if err != nil {
		return false
	}
	switch strings.ToLower(answer) {
	case "y", "yes", "نعم":
		return true
	}
	return false
}

// choose lists options and returns the index picked, by number or by value.
func choose(p prompter, label string, options []string, values []string) (int, error) {
	for i, o := range options {
		fmt.Printf("  %d. %s\n", i+1, o)
	}
	for {
		answer, err := ask(p, label, "")
		if err != nil {
			return -1, err
		}
		if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(options) {
			return n - 1, nil
		}
		for i, v := range values {
			if strings.EqualFold(v, answer) {
				return i, nil
			}
		}
		fmt.Println(errorStyle.Render(fmt.Sprintf("Pick a number from 1 to %d", len(options))))
	}
}
