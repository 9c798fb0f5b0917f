package store

import (
	"context"
	"time"
)

// Entry is one archived message send. The archive is a write-only transcript:
// the routing engine records what it accepted and never reads it back, so all
// routing state stays in memory.
type Entry struct {
	ID     string
	Kind   string // "room" or "private"
	Target string // room name or recipient identity
	Text   string
	SentAt time.Time
}

// Archive persists accepted messages for later inspection outside the server.
type Archive interface {
	Record(ctx context.Context, e Entry) error
	Close() error
}
