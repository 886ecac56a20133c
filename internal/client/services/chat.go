package services

import (
	"context"

	"github.com/dmitrijs2005/travelmate/internal/client/api"
	"github.com/google/uuid"
)

// ChatSession is one conversation with the travel assistant. The session id
// is generated client-side; the server keeps the conversation history keyed
// by it. Reset starts a fresh conversation.
type ChatSession struct {
	client api.Client
	id     string
}

func NewChatSession(client api.Client) *ChatSession {
	return &ChatSession{client: client, id: uuid.NewString()}
}

// ID returns the current conversation id.
func (c *ChatSession) ID() string { return c.id }

func (c *ChatSession) Send(ctx context.Context, message string) (string, error) {
	if message == "" {
		return "", ErrFieldRequired
	}
	return c.client.Chat(ctx, c.id, message)
}

// Reset abandons the conversation and starts a new one.
func (c *ChatSession) Reset() {
	c.id = uuid.NewString()
}
