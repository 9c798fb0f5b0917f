package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/classchat/classchat-server/internal/store"
)

func TestArchiveRecordAndRecent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "transcript.db")

	archive, err := New(dbPath)
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	defer archive.Close()

	ctx := context.Background()
	base := time.Now().Truncate(time.Second)

	entries := []store.Entry{
		{ID: "m1", Kind: "room", Target: "general", Text: "alice: hi", SentAt: base},
		{ID: "m2", Kind: "private", Target: "bob", Text: "alice: psst", SentAt: base.Add(time.Second)},
	}
	for _, e := range entries {
		if err := archive.Record(ctx, e); err != nil {
			t.Fatalf("record %s: %v", e.ID, err)
		}
	}

	got, err := archive.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}

	// Newest first.
	if got[0].ID != "m2" || got[1].ID != "m1" {
		t.Fatalf("unexpected order: %s then %s", got[0].ID, got[1].ID)
	}
	if got[0].Kind != "private" || got[0].Target != "bob" || got[0].Text != "alice: psst" {
		t.Fatalf("unexpected entry: %+v", got[0])
	}
}

func TestArchiveRejectsDuplicateID(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "transcript.db")

	archive, err := New(dbPath)
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	defer archive.Close()

	ctx := context.Background()
	entry := store.Entry{ID: "m1", Kind: "room", Target: "general", Text: "alice: hi", SentAt: time.Now()}

	if err := archive.Record(ctx, entry); err != nil {
		t.Fatalf("first record: %v", err)
	}
	if err := archive.Record(ctx, entry); err == nil {
		t.Fatal("expected primary key violation on duplicate ID")
	}
}
