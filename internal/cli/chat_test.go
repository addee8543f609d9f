package cli

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docbotdev/docbot/internal/common"
)

func TestChat_PrintsReply(t *testing.T) {
	orch := &fakeOrchestrator{reply: "Drink plenty of fluids."}
	a := newTestApp(t, orch, "")
	out := captureOutput(t)
	loginAs(t, a, "alice", "secret1")

	require.NoError(t, a.Chat(context.Background(), "I have a cold"))
	assert.True(t, outputContains(*out, "DocBot is thinking..."))
	assert.True(t, outputContains(*out, "🤖 DocBot: Drink plenty of fluids."))
	assert.Equal(t, []string{"I have a cold"}, orch.prompts)
}

func TestChat_ExternalServiceSuggestsRetry(t *testing.T) {
	orch := &fakeOrchestrator{err: fmt.Errorf("%w: boom", common.ErrorExternalService)}
	a := newTestApp(t, orch, "")
	out := captureOutput(t)
	loginAs(t, a, "alice", "secret1")

	err := a.Chat(context.Background(), "hello?")
	require.ErrorIs(t, err, common.ErrorExternalService)
	assert.True(t, outputContains(*out, "Type 'retry' to ask again."))
}

func TestRetry_AfterFailure(t *testing.T) {
	orch := &fakeOrchestrator{err: fmt.Errorf("%w: boom", common.ErrorExternalService)}
	a := newTestApp(t, orch, "")
	out := captureOutput(t)
	loginAs(t, a, "alice", "secret1")
	ctx := context.Background()

	require.Error(t, a.Chat(ctx, "what is a migraine?"))

	orch.err = nil
	orch.reply = "A migraine is a recurring type of headache."
	require.NoError(t, a.Retry(ctx))
	assert.True(t, outputContains(*out, "🤖 DocBot: A migraine is a recurring type of headache."))
	// the question was asked twice but recorded once
	assert.Equal(t, []string{"what is a migraine?", "what is a migraine?"}, orch.prompts)
	assert.Equal(t, 2, a.session.Conversation().Len())
}

func TestRetry_NothingPending(t *testing.T) {
	a := newTestApp(t, &fakeOrchestrator{reply: "ok"}, "")
	out := captureOutput(t)
	loginAs(t, a, "alice", "secret1")

	err := a.Retry(context.Background())
	require.ErrorIs(t, err, common.ErrorNothingToRetry)
	assert.True(t, outputContains(*out, "no unanswered question"))
}

func TestNewConversation_ClearsHistoryKeepsIdentity(t *testing.T) {
	a := newTestApp(t, &fakeOrchestrator{reply: "ok"}, "")
	out := captureOutput(t)
	loginAs(t, a, "alice", "secret1")
	ctx := context.Background()

	require.NoError(t, a.Chat(ctx, "hi"))
	require.NoError(t, a.NewConversation(ctx))
	assert.True(t, outputContains(*out, "New conversation started!"))
	assert.Zero(t, a.session.Conversation().Len())
	assert.True(t, a.isLoggedIn())
}

func TestSave_EmptyConversation(t *testing.T) {
	a := newTestApp(t, &fakeOrchestrator{}, "")
	out := captureOutput(t)
	loginAs(t, a, "alice", "secret1")

	require.NoError(t, a.Save(context.Background()))
	assert.True(t, outputContains(*out, "No chat history to save."))
}

func TestSaveHistoryView_RoundTrip(t *testing.T) {
	a := newTestApp(t, &fakeOrchestrator{reply: "Get some rest."}, "")
	out := captureOutput(t)
	loginAs(t, a, "alice", "secret1")
	ctx := context.Background()

	require.NoError(t, a.Chat(ctx, "I feel tired"))
	require.NoError(t, a.Save(ctx))
	assert.True(t, outputContains(*out, "Chat history saved to"))

	*out = nil
	require.NoError(t, a.History(ctx))
	var saved string
	for _, l := range *out {
		name := strings.TrimSpace(l)
		if strings.HasPrefix(name, "chat_log_") {
			saved = name
		}
	}
	require.NotEmpty(t, saved)

	*out = nil
	require.NoError(t, a.View(ctx, saved))
	assert.True(t, outputContains(*out, "🧑 You: I feel tired"))
	assert.True(t, outputContains(*out, "🤖 DocBot: Get some rest."))
	assert.True(t, outputContains(*out, "--- End of Chat Log ---"))
}

func TestView_MissingFile(t *testing.T) {
	a := newTestApp(t, &fakeOrchestrator{}, "")
	out := captureOutput(t)
	loginAs(t, a, "alice", "secret1")

	err := a.View(context.Background(), "chat_log_19990101_000000.txt")
	require.ErrorIs(t, err, common.ErrorExportNotFound)
	assert.True(t, outputContains(*out, "Chat log not found:"))
}
