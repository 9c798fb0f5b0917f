package core

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind discriminates how a message was addressed.
type Kind string

const (
	// KindRoom marks a message posted to a room queue.
	KindRoom Kind = "room"
	// KindPrivate marks a message addressed to a single user's queue.
	KindPrivate Kind = "private"
)

// Message is a queued chat message awaiting pickup.
//
// Text always carries the composed "sender: body" form. Room is set only
// for room messages, From only for private ones.
type Message struct {
	ID     string
	Kind   Kind
	Room   string
	From   string
	Text   string
	SentAt time.Time
}

func newRoomMessage(room, sender, body string) Message {
	return Message{
		ID:     uuid.NewString(),
		Kind:   KindRoom,
		Room:   room,
		Text:   fmt.Sprintf("%s: %s", sender, body),
		SentAt: time.Now(),
	}
}

func newPrivateMessage(sender, body string) Message {
	return Message{
		ID:     uuid.NewString(),
		Kind:   KindPrivate,
		From:   sender,
		Text:   fmt.Sprintf("%s: %s", sender, body),
		SentAt: time.Now(),
	}
}
