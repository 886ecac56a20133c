package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChat_SessionIDStableAcrossMessages(t *testing.T) {
	f := &fakeClient{chatReply: "xin chào"}
	c := NewChatSession(f)
	ctx := context.Background()

	_, err := c.Send(ctx, "hello")
	require.NoError(t, err)
	first := f.lastChatSession

	_, err = c.Send(ctx, "where should I go?")
	require.NoError(t, err)
	assert.Equal(t, first, f.lastChatSession)
}

func TestChat_ResetStartsNewConversation(t *testing.T) {
	f := &fakeClient{}
	c := NewChatSession(f)
	ctx := context.Background()

	_, err := c.Send(ctx, "hello")
	require.NoError(t, err)
	old := f.lastChatSession

	c.Reset()
	_, err = c.Send(ctx, "hello again")
	require.NoError(t, err)
	assert.NotEqual(t, old, f.lastChatSession)
}

func TestChat_EmptyMessageRejected(t *testing.T) {
	f := &fakeClient{}
	c := NewChatSession(f)

	_, err := c.Send(context.Background(), "")
	assert.ErrorIs(t, err, ErrFieldRequired)
	assert.Empty(t, f.calls)
}
