package http

import "github.com/classchat/classchat-server/internal/core"

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse carries a human-readable outcome for mutating operations.
type StatusResponse struct {
	Status string `json:"status"`
}

// MessageItem renders one queued message on the wire.
type MessageItem struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Room string `json:"room,omitempty"`
	From string `json:"from,omitempty"`
	Text string `json:"message"`
	TS   int64  `json:"ts"`
}

// MessagesResponse carries a drained inbox or room backlog.
type MessagesResponse struct {
	Messages []MessageItem `json:"messages"`
}

// RoomsResponse carries a list of room names.
type RoomsResponse struct {
	Rooms []string `json:"rooms"`
}

// PrivacyResponse reports the global privacy flag, optionally with a status
// line when the flag was just toggled.
type PrivacyResponse struct {
	Status  string `json:"status,omitempty"`
	Enabled bool   `json:"enabled"`
}

// TeacherResponse answers the "is this user the teacher" probe.
type TeacherResponse struct {
	Teacher bool `json:"teacher"`
}

func toMessageItems(msgs []core.Message) []MessageItem {
	items := make([]MessageItem, 0, len(msgs))
	for _, m := range msgs {
		items = append(items, MessageItem{
			ID:   m.ID,
			Type: string(m.Kind),
			Room: m.Room,
			From: m.From,
			Text: m.Text,
			TS:   m.SentAt.Unix(),
		})
	}
	return items
}
