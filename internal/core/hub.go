package core

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/classchat/classchat-server/internal/store"
)

// Hub is the message routing and room-membership engine. It owns all mutable
// state (rooms, queues, privacy flag) behind a single mutex so that every
// operation is atomic with respect to every other: a drain never observes a
// partial enqueue, and membership changes never race room closure.
type Hub struct {
	mu sync.Mutex

	teacher string
	dir     *Directory
	queues  *Queues

	// privateEnabled gates private sends globally. Starts on.
	privateEnabled bool

	archive store.Archive
	log     *zerolog.Logger
}

// NewHub constructs the engine. The archive may be nil, in which case accepted
// messages are not transcribed anywhere.
func NewHub(teacher, defaultRoom string, archive store.Archive, logger *zerolog.Logger) *Hub {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Hub{
		teacher:        teacher,
		dir:            NewDirectory(defaultRoom),
		queues:         NewQueues(),
		privateEnabled: true,
		archive:        archive,
		log:            logger,
	}
}

// IsTeacher reports whether the identity is the configured privileged one.
func (h *Hub) IsTeacher(identity string) bool {
	return identity == h.teacher
}

// DefaultRoom returns the name of the always-present room.
func (h *Hub) DefaultRoom() string {
	return h.dir.DefaultRoom()
}

// SendToAllRooms posts the message to every existing room. Broadcast bypasses
// per-room membership checks.
func (h *Hub) SendToAllRooms(ctx context.Context, sender, body string) error {
	if sender == "" || body == "" {
		return coreError(ErrCodeMissingFields, "Missing required fields")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.dir.EnsureDefaultMembership(sender)
	for _, room := range h.dir.Rooms() {
		msg := newRoomMessage(room, sender, body)
		h.queues.EnqueueRoom(room, msg)
		h.record(ctx, msg, room)
	}

	h.log.Debug().Str("sender", sender).Msg("message broadcast to all rooms")
	return nil
}

// SendToRoom posts the message to a single room the sender belongs to.
func (h *Hub) SendToRoom(ctx context.Context, sender, room, body string) error {
	if sender == "" || room == "" || body == "" {
		return coreError(ErrCodeMissingFields, "Missing required fields")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.dir.EnsureDefaultMembership(sender)
	if !h.dir.IsMember(room, sender) {
		return coreError(ErrCodeNotAMember, fmt.Sprintf("%s is not a member of %s", sender, room))
	}

	msg := newRoomMessage(room, sender, body)
	h.queues.EnqueueRoom(room, msg)
	h.record(ctx, msg, room)

	h.log.Debug().Str("sender", sender).Str("room", room).Msg("message sent to room")
	return nil
}

// SendPrivate queues the message on the recipient's private queue, subject to
// the global privacy flag.
func (h *Hub) SendPrivate(ctx context.Context, sender, recipient, body string) error {
	if sender == "" || recipient == "" || body == "" {
		return coreError(ErrCodeMissingFields, "Missing required fields")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.dir.EnsureDefaultMembership(sender)
	if !h.privateEnabled {
		return coreError(ErrCodePrivateDisabled, "Private communication is disabled")
	}

	msg := newPrivateMessage(sender, body)
	h.queues.EnqueuePrivate(recipient, msg)
	h.record(ctx, msg, recipient)

	h.log.Debug().Str("sender", sender).Str("recipient", recipient).Msg("private message sent")
	return nil
}

// FetchForUser drains the merged inbox for the identity: every room queue the
// identity currently belongs to, in directory order, followed by the private
// queue. The drain is atomic; whichever poller arrives first takes the backlog.
func (h *Hub) FetchForUser(identity string) ([]Message, error) {
	if identity == "" {
		return nil, coreError(ErrCodeMissingFields, "User not specified")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.dir.EnsureDefaultMembership(identity)

	var inbox []Message
	for _, room := range h.dir.RoomsOf(identity) {
		inbox = append(inbox, h.queues.DrainRoom(room)...)
	}
	inbox = append(inbox, h.queues.DrainPrivate(identity)...)
	return inbox, nil
}

// FetchForRoom drains a single room's queue directly. An unknown room yields
// an empty result and is not created as a side effect.
func (h *Hub) FetchForRoom(room string) ([]Message, error) {
	if room == "" {
		return nil, coreError(ErrCodeMissingFields, "Room not specified")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	return h.queues.DrainRoom(room), nil
}

// RoomsFor lists the rooms the identity belongs to.
func (h *Hub) RoomsFor(identity string) ([]string, error) {
	if identity == "" {
		return nil, coreError(ErrCodeMissingFields, "User not specified")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.dir.EnsureDefaultMembership(identity)
	return h.dir.RoomsOf(identity), nil
}

// ListRooms lists every existing room, default room included.
func (h *Hub) ListRooms() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.dir.Rooms()
}

// RegisterUser makes the identity known to the system by placing it in the
// default room. Registration is otherwise implicit on first contact.
func (h *Hub) RegisterUser(identity string) error {
	if identity == "" {
		return coreError(ErrCodeMissingFields, "Missing username")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.dir.EnsureDefaultMembership(identity)
	h.log.Info().Str("user", identity).Msg("user registered")
	return nil
}

// CreateRoom creates a new empty room. Teacher only.
func (h *Hub) CreateRoom(caller, name string) error {
	if !h.IsTeacher(caller) {
		return coreError(ErrCodeUnauthorized, "Unauthorized access")
	}
	if name == "" {
		return coreError(ErrCodeMissingFields, "Missing room name")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.dir.Has(name) {
		return coreError(ErrCodeRoomExists, fmt.Sprintf("Room %s already exists", name))
	}
	h.dir.ensureRoom(name)
	h.log.Info().Str("room", name).Msg("room created")
	return nil
}

// AddMember places a user in a room, creating the room if it does not exist
// yet. Teacher only.
func (h *Hub) AddMember(caller, user, room string) error {
	if !h.IsTeacher(caller) {
		return coreError(ErrCodeUnauthorized, "Unauthorized access")
	}
	if user == "" || room == "" {
		return coreError(ErrCodeMissingFields, "Missing required fields")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.dir.EnsureDefaultMembership(user)
	h.dir.AddMember(room, user)
	h.log.Info().Str("user", user).Str("room", room).Msg("member added to room")
	return nil
}

// RemoveMember takes a user out of a room and moves them back to the default
// room in the same operation, so nobody is ever roomless. Teacher only.
func (h *Hub) RemoveMember(caller, user, room string) error {
	if !h.IsTeacher(caller) {
		return coreError(ErrCodeUnauthorized, "Unauthorized access")
	}
	if user == "" || room == "" {
		return coreError(ErrCodeMissingFields, "Missing required fields")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.dir.EnsureDefaultMembership(user)
	if !h.dir.RemoveMember(room, user) {
		return coreError(ErrCodeNotAMember, fmt.Sprintf("%s is not in room %s", user, room))
	}
	h.dir.EnsureDefaultMembership(user)
	h.log.Info().Str("user", user).Str("room", room).Msg("member removed from room")
	return nil
}

// CloseRoom deletes a room, discards its pending queue and migrates every
// member into the default room. The default room cannot be closed. Teacher only.
func (h *Hub) CloseRoom(caller, room string) error {
	if !h.IsTeacher(caller) {
		return coreError(ErrCodeUnauthorized, "Unauthorized access")
	}
	if room == "" {
		return coreError(ErrCodeMissingFields, "Room not specified")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if room == h.dir.DefaultRoom() {
		return coreError(ErrCodeDefaultRoom, fmt.Sprintf("Room %s cannot be closed", room))
	}
	members, ok := h.dir.Delete(room)
	if !ok {
		return coreError(ErrCodeRoomNotFound, fmt.Sprintf("Room %s does not exist", room))
	}
	for _, m := range members {
		h.dir.EnsureDefaultMembership(m)
	}
	h.queues.DropRoom(room)

	h.log.Info().Str("room", room).Int("members_moved", len(members)).Msg("room closed")
	return nil
}

// TogglePrivacy flips the global privacy flag and returns the new state.
// Teacher only.
func (h *Hub) TogglePrivacy(caller string) (bool, error) {
	if !h.IsTeacher(caller) {
		return false, coreError(ErrCodeUnauthorized, "Unauthorized access")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.privateEnabled = !h.privateEnabled
	h.log.Info().Bool("enabled", h.privateEnabled).Msg("private communication toggled")
	return h.privateEnabled, nil
}

// PrivacyEnabled reports the current privacy flag state. Unprivileged.
func (h *Hub) PrivacyEnabled() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.privateEnabled
}

// record transcribes an accepted message. Best effort: archive failures are
// logged and never fail the send.
func (h *Hub) record(ctx context.Context, m Message, target string) {
	if h.archive == nil {
		return
	}
	entry := store.Entry{
		ID:     m.ID,
		Kind:   string(m.Kind),
		Target: target,
		Text:   m.Text,
		SentAt: m.SentAt,
	}
	if err := h.archive.Record(ctx, entry); err != nil {
		h.log.Warn().Err(err).Str("target", target).Msg("failed to archive message")
	}
}
