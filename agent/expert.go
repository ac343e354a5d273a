package agent

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Chat is a conversation with a model that keeps the history of the
// previous messages.
type Chat interface {
	Send(ctx context.Context, parts ...*genai.Part) (*genai.GenerateContentResponse, error)
}

// maxCalls bounds the number of function calls made to answer one question.
const maxCalls = 8

// Expert represent a chat with a business expert.
type Expert struct {
	Name        string
	Description string
	ModelName   string
	Config      *genai.GenerateContentConfig
	Library     Library
	chat        Chat
}

// Start creates the expert's chat.
func (e *Expert) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, e.ModelName, e.Config, nil)
	if err != nil {
		return fmt.Errorf("could not start chat with %s: %w", e.Name, err)
	}
	e.chat = chat
	return nil
}

// Ask sends the parts to the expert and returns its text answer. Function
// calls requested by the expert are answered from its Library until it
// answers with text.
func (e *Expert) Ask(ctx context.Context, parts ...*genai.Part) (string, error) {
	for range maxCalls {
		resp, err := e.chat.Send(ctx, parts...)
		if err != nil {
			return "", err
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
			return "", fmt.Errorf("no response from expert %s", e.Name)
		}

		var calls []*genai.Part
		var text strings.Builder
		for _, p := range resp.Candidates[0].Content.Parts {
			switch {
			case p.FunctionCall != nil:
				if e.Library == nil {
					return "", fmt.Errorf("expert %s doesn't know how to make function calls", e.Name)
				}
				calls = append(calls, &genai.Part{FunctionResponse: e.Library(ctx, p.FunctionCall)})
			case p.Text != "" && !p.Thought:
				text.WriteString(p.Text)
			}
		}
		if len(calls) == 0 {
			return text.String(), nil
		}
		// Ask again the expert with the responses it asked for.
		parts = calls
	}
	return "", fmt.Errorf("expert %s made more than %d function calls", e.Name, maxCalls)
}
