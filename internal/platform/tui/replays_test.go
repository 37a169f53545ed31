package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/sleigh-flight/internal/config"
	"github.com/vovakirdan/sleigh-flight/internal/replay"
	"github.com/vovakirdan/sleigh-flight/internal/storage"
)

func saveFreeFall(t *testing.T, store *storage.Store, score int) int64 {
	t.Helper()
	entry, err := replay.ToEntry(replay.Replay{
		Seed:    1,
		Config:  config.DefaultSleighConfig(),
		Presses: []int{0},
		Ticks:   34,
		Score:   score,
	})
	if err != nil {
		t.Fatalf("ToEntry() error = %v", err)
	}
	id, err := store.SaveReplay(entry)
	if err != nil {
		t.Fatalf("SaveReplay() error = %v", err)
	}
	return id
}

func TestVerifyEntry(t *testing.T) {
	store := openTestStore(t)
	good := saveFreeFall(t, store, 0)
	bad := saveFreeFall(t, store, 9)

	e, _ := store.Replay(good)
	if got := VerifyEntry(*e); !strings.Contains(got, "verified") {
		t.Errorf("VerifyEntry(good) = %q", got)
	}
	e, _ = store.Replay(bad)
	if got := VerifyEntry(*e); !strings.Contains(got, "diverged") {
		t.Errorf("VerifyEntry(bad) = %q", got)
	}
}

func TestReplaysModel(t *testing.T) {
	store := openTestStore(t)
	saveFreeFall(t, store, 0)
	saveFreeFall(t, store, 0)

	m := NewReplaysModel(store, 80, 24)
	if len(m.entries) != 2 {
		t.Fatalf("loaded %d replays", len(m.entries))
	}

	next, _ := m.Update(runeKey('d'))
	m = next.(ReplaysModel)
	if len(m.entries) != 1 || !strings.Contains(m.status, "deleted") {
		t.Errorf("after delete: %d entries, status %q", len(m.entries), m.status)
	}

	next, _ = m.Update(runeKey(' '))
	m = next.(ReplaysModel)
	if !strings.Contains(m.status, "verified") {
		t.Errorf("status = %q", m.status)
	}
	if !strings.Contains(m.View(), "REPLAYS") {
		t.Error("view should have a title")
	}
}

func TestReplaysModelEmpty(t *testing.T) {
	m := NewReplaysModel(nil, 80, 24)
	if !strings.Contains(m.View(), "No replays") {
		t.Error("empty browser should say so")
	}
	next, _ := m.Update(runeKey('d'))
	if next.(ReplaysModel).status != "" {
		t.Error("delete with nothing selected should do nothing")
	}
}
