// Package assistant defines the boundary to the external AI service that
// produces DocBot replies, and its OpenAI-compatible implementation.
package assistant

import (
	"context"

	"github.com/docbotdev/docbot/internal/chatlog"
)

// Orchestrator turns the running conversation plus a new user prompt into
// the next assistant reply. Implementations perform a blocking remote call;
// failures are wrapped in common.ErrorExternalService.
type Orchestrator interface {
	Reply(ctx context.Context, history []chatlog.Message, prompt string) (string, error)
}
