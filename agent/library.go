package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Library answers the function calls made by a model.
type Library func(context.Context, *genai.FunctionCall) *genai.FunctionResponse

// Function is a function that can be called by a model.
type Function interface {
	// Declaration describes the function to the model.
	Declaration() *genai.FunctionDeclaration
	// Call runs the function.
	Call(ctx context.Context, args map[string]any) (string, error)
}

// NewLibrary dispatches the function calls to 'functions' by name.
func NewLibrary[T Function](functions []T) Library {
	return func(ctx context.Context, call *genai.FunctionCall) *genai.FunctionResponse {
		resp := &genai.FunctionResponse{ID: call.ID, Name: call.Name}
		for _, f := range functions {
			if f.Declaration().Name != call.Name {
				continue
			}
			out, err := f.Call(ctx, call.Args)
			if err != nil {
				resp.Response = map[string]any{"error": err.Error()}
			} else {
				resp.Response = map[string]any{"output": out}
			}
			return resp
		}
		resp.Response = map[string]any{"error": fmt.Sprintf("unknown function %s", call.Name)}
		return resp
	}
}

// NewDeclaration returns the declarations of all the functions.
func NewDeclaration[T Function](functions []T) []*genai.FunctionDeclaration {
	result := make([]*genai.FunctionDeclaration, 0, len(functions))
	for _, f := range functions {
		result = append(result, f.Declaration())
	}
	return result
}
