// Package agent implements an interactive assistant, backed by Gemini, that
// comments the averaging strategy of the user's assets.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent is the AI assistant that handles the chat session.
type Agent struct {
	w       io.Writer
	r       *bufio.Reader
	Advisor *Expert

	// Render transforms the markdown answers before printing them. Answers
	// are printed verbatim if nil.
	Render func(markdown string) string
}

// New creates a new Agent, reading the user's questions from r and writing
// the answers to w.
func New(w io.Writer, r io.Reader, advisor *Expert) *Agent {
	return &Agent{
		w:       w,
		r:       bufio.NewReader(r),
		Advisor: advisor,
	}
}

const prompt = "assist> "

// Run starts the interactive session. The 'prompts' are asked first, as if
// typed by the user. It returns on "bye" or at the end of the input.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.Advisor.chat == nil {
		if err := a.Advisor.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to dca assist. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask for the user.
		if len(prompts) > 0 {
			input, prompts = strings.TrimSpace(prompts[0]), prompts[1:]
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err == io.EOF && strings.TrimSpace(input) == "" {
				fmt.Fprintln(a.w)
				return nil // Ctrl+D
			}
			if err != nil && err != io.EOF {
				return err
			}
		}

		input = strings.TrimSpace(input)
		switch input {
		case "":
			continue
		case "bye":
			return nil
		}

		answer, err := a.Advisor.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		if a.Render != nil {
			answer = a.Render(answer)
		}
		fmt.Fprintln(a.w, answer)
	}
}
