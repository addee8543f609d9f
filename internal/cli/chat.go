package cli

import (
	"context"
	"errors"
	"time"

	"github.com/docbotdev/docbot/internal/chatlog"
	"github.com/docbotdev/docbot/internal/common"
)

// Chat sends prompt to DocBot and prints the reply. A failed assistant
// call keeps the question in the conversation; 'retry' re-asks it.
func (a *App) Chat(ctx context.Context, prompt string) error {
	printlnFn("DocBot is thinking...")
	reply, err := a.sessions.Ask(ctx, a.session, prompt)
	if err != nil {
		if errors.Is(err, common.ErrorExternalService) {
			printlnFn("DocBot is unavailable right now. Type 'retry' to ask again.")
		} else {
			printlnFn("Could not send your question:", err)
		}
		return err
	}
	printlnFn("🤖 DocBot:", reply)
	return nil
}

// Retry re-asks the last unanswered question.
func (a *App) Retry(ctx context.Context) error {
	reply, err := a.sessions.Retry(ctx, a.session)
	if err != nil {
		if errors.Is(err, common.ErrorNothingToRetry) {
			printlnFn("There is no unanswered question to retry.")
		} else if errors.Is(err, common.ErrorExternalService) {
			printlnFn("DocBot is still unavailable. Type 'retry' to try again.")
		} else {
			printlnFn("Could not retry:", err)
		}
		return err
	}
	printlnFn("🤖 DocBot:", reply)
	return nil
}

// NewConversation clears the chat history; identity is kept.
func (a *App) NewConversation(ctx context.Context) error {
	if err := a.sessions.ResetConversation(ctx, a.session); err != nil {
		printlnFn("Please login first.")
		return err
	}
	printlnFn("New conversation started! Chat history cleared.")
	return nil
}

// Save exports the current conversation to a timestamped chat log file.
func (a *App) Save(ctx context.Context) error {
	name, err := chatlog.Export(a.config.ChatLogDir, a.session.Conversation(), time.Now())
	if err != nil {
		if errors.Is(err, common.ErrorNothingToExport) {
			printlnFn("No chat history to save.")
			return nil
		}
		printlnFn("Failed to save chat history:", err)
		return err
	}
	a.log.Info(ctx, "chat history saved", "file", name)
	printlnFn("Chat history saved to " + a.config.ChatLogDir + "/" + name)
	return nil
}
