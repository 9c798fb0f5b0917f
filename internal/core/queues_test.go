package core

import "testing"

func TestQueuesDrainRoomIsDestructiveAndFIFO(t *testing.T) {
	q := NewQueues()
	q.EnqueueRoom("math", newRoomMessage("math", "alice", "first"))
	q.EnqueueRoom("math", newRoomMessage("math", "bob", "second"))

	msgs := q.DrainRoom("math")
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Text != "alice: first" || msgs[1].Text != "bob: second" {
		t.Fatalf("unexpected order: %q then %q", msgs[0].Text, msgs[1].Text)
	}

	if again := q.DrainRoom("math"); len(again) != 0 {
		t.Fatalf("second drain should be empty, got %d messages", len(again))
	}
}

func TestQueuesDrainPrivateIsDestructive(t *testing.T) {
	q := NewQueues()
	q.EnqueuePrivate("alice", newPrivateMessage("bob", "psst"))

	msgs := q.DrainPrivate("alice")
	if len(msgs) != 1 || msgs[0].Text != "bob: psst" {
		t.Fatalf("unexpected drain result: %v", msgs)
	}
	if again := q.DrainPrivate("alice"); len(again) != 0 {
		t.Fatalf("second drain should be empty, got %d messages", len(again))
	}
}

func TestQueuesDropRoomDiscardsBacklog(t *testing.T) {
	q := NewQueues()
	q.EnqueueRoom("math", newRoomMessage("math", "alice", "hi"))

	q.DropRoom("math")
	if got := q.RoomBacklog("math"); got != 0 {
		t.Fatalf("backlog after drop = %d, want 0", got)
	}
}
