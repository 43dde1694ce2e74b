package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(MemoryPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndForSession(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	base := time.Now()

	store.Record(ctx, Activity{SessionID: "sess-1", Username: "alice", Kind: KindSignIn, CreatedAt: base})
	store.Record(ctx, Activity{
		SessionID: "sess-1",
		Kind:      KindAction,
		Action:    "discover",
		FromState: "not-discovered",
		ToState:   "discovered-not-installed",
		Applied:   true,
		CreatedAt: base.Add(time.Second),
	})
	store.Record(ctx, Activity{SessionID: "sess-2", Kind: KindSignIn, CreatedAt: base})

	got, err := store.ForSession(ctx, "sess-1", 0)
	if err != nil {
		t.Fatalf("ForSession: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("got %d rows, want 2", len(got))
	}
	if got[0].Kind != KindAction {
		t.Errorf("got[0].Kind = %q, want %q (newest first)", got[0].Kind, KindAction)
	}
	if !got[0].Applied {
		t.Error("got[0] should be applied")
	}
	if got[0].ToState != "discovered-not-installed" {
		t.Errorf("got[0].ToState = %q", got[0].ToState)
	}
	if got[1].Username != "alice" {
		t.Errorf("got[1].Username = %q, want %q", got[1].Username, "alice")
	}
	if got[0].ID == "" || got[0].ID == got[1].ID {
		t.Errorf("ids should be generated and distinct: %q %q", got[0].ID, got[1].ID)
	}
}

func TestForSessionLimit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	base := time.Now()

	for i := 0; i < 5; i++ {
		err := store.Record(ctx, Activity{
			SessionID: "sess-1",
			Kind:      KindAction,
			Detail:    string(rune('a' + i)),
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
		if err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	got, err := store.ForSession(ctx, "sess-1", 3)
	if err != nil {
		t.Fatalf("ForSession: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d rows, want 3", len(got))
	}
	if got[0].Detail != "e" {
		t.Errorf("got[0].Detail = %q, want %q", got[0].Detail, "e")
	}
}

func TestForSessionEmpty(t *testing.T) {
	store := openTestStore(t)

	got, err := store.ForSession(context.Background(), "nonexistent", 10)
	if err != nil {
		t.Fatalf("ForSession: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d rows, want 0", len(got))
	}
}

func TestCount(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	store.Record(ctx, Activity{SessionID: "sess-1", Kind: KindSignIn})
	store.Record(ctx, Activity{SessionID: "sess-1", Kind: KindSignOut})

	n, err := store.Count(ctx, "sess-1")
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 2 {
		t.Errorf("count = %d, want 2", n)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activity.sqlite")
	ctx := context.Background()

	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := store.Record(ctx, Activity{SessionID: "sess-1", Kind: KindSignIn}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	store.Close()

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	n, err := reopened.Count(ctx, "sess-1")
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 1 {
		t.Errorf("count = %d, want 1", n)
	}
}

func TestTimeRoundTrip(t *testing.T) {
	now := time.Unix(1700000000, 250_000_000)
	got := timeFromUnix(unixFromTime(now))
	if d := got.Sub(now); d > time.Millisecond || d < -time.Millisecond {
		t.Errorf("round trip drift %v", d)
	}
}
