package repository

import (
	"context"
)

// AssistantModel defines the interface to the hosted language model backing
// the read-only assistant endpoint.
type AssistantModel interface {
	Generate(ctx context.Context, prompt string) (string, error)
	ModelName() string
}
