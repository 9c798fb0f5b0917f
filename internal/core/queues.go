package core

// Queues owns the two FIFO queue families: one queue per room and one
// private queue per identity. Queues are created lazily on first enqueue
// and drained destructively on read. No locking here; the hub serializes.
type Queues struct {
	room    map[string][]Message
	private map[string][]Message
}

// NewQueues constructs empty queue families.
func NewQueues() *Queues {
	return &Queues{
		room:    make(map[string][]Message),
		private: make(map[string][]Message),
	}
}

// EnqueueRoom appends the message to the room's queue.
func (q *Queues) EnqueueRoom(room string, m Message) {
	q.room[room] = append(q.room[room], m)
}

// EnqueuePrivate appends the message to the identity's private queue.
func (q *Queues) EnqueuePrivate(identity string, m Message) {
	q.private[identity] = append(q.private[identity], m)
}

// DrainRoom returns the room's full backlog and empties the queue.
// Whoever drains first takes everything; that at-most-once contract is
// load-bearing for the polling model.
func (q *Queues) DrainRoom(room string) []Message {
	msgs := q.room[room]
	if len(msgs) == 0 {
		return nil
	}
	delete(q.room, room)
	return msgs
}

// DrainPrivate returns the identity's private backlog and empties the queue.
func (q *Queues) DrainPrivate(identity string) []Message {
	msgs := q.private[identity]
	if len(msgs) == 0 {
		return nil
	}
	delete(q.private, identity)
	return msgs
}

// DropRoom discards a room's pending queue, if any. Used when a room closes.
func (q *Queues) DropRoom(room string) {
	delete(q.room, room)
}

// RoomBacklog reports how many messages are waiting in a room's queue.
func (q *Queues) RoomBacklog(room string) int {
	return len(q.room[room])
}
