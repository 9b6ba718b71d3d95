package session

import (
	"testing"
	"time"

	"github.com/ysqsimon/Remotely/internal/config"
	"github.com/ysqsimon/Remotely/pkg/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	cfg, err := config.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	return NewStore(cfg)
}

func TestCreateAndTranscript(t *testing.T) {
	store := newTestStore(t)

	id := store.Create()
	if id == "" {
		t.Fatal("Create returned an empty ID")
	}

	messages, ok := store.Transcript(id)
	if !ok {
		t.Fatal("fresh session should exist")
	}
	if len(messages) != 0 {
		t.Errorf("fresh transcript has %d messages, want 0", len(messages))
	}

	if _, ok := store.Transcript("nope"); ok {
		t.Error("unknown session should report not found")
	}
}

func TestAppendTurn(t *testing.T) {
	store := newTestStore(t)
	id := store.Create()

	user := models.ChatMessage{ID: "m1", Role: models.ChatRoleUser, Text: "react jobs"}
	ai := models.ChatMessage{ID: "m2", Role: models.ChatRoleAI, Text: "found some"}
	if err := store.AppendTurn(id, user, ai); err != nil {
		t.Fatalf("AppendTurn failed: %v", err)
	}

	messages, _ := store.Transcript(id)
	if len(messages) != 2 {
		t.Fatalf("transcript has %d messages, want 2", len(messages))
	}
	if messages[0].Role != models.ChatRoleUser || messages[1].Role != models.ChatRoleAI {
		t.Error("turn order should be user then ai")
	}

	if err := store.AppendTurn("nope", user, ai); err == nil {
		t.Error("appending to an unknown session should fail")
	}
}

func TestTranscriptIsSnapshot(t *testing.T) {
	store := newTestStore(t)
	id := store.Create()

	user := models.ChatMessage{ID: "m1", Role: models.ChatRoleUser, Text: "hi"}
	ai := models.ChatMessage{ID: "m2", Role: models.ChatRoleAI, Text: "hello"}
	if err := store.AppendTurn(id, user, ai); err != nil {
		t.Fatalf("AppendTurn failed: %v", err)
	}

	snapshot, _ := store.Transcript(id)
	snapshot[0].Text = "mutated"

	fresh, _ := store.Transcript(id)
	if fresh[0].Text != "hi" {
		t.Error("mutating a snapshot should not affect the stored transcript")
	}
}

func TestEvictExpired(t *testing.T) {
	store := newTestStore(t)
	store.ttl = 10 * time.Millisecond

	stale := store.Create()
	store.mu.Lock()
	store.sessions[stale].LastSeen = time.Now().Add(-time.Minute)
	store.mu.Unlock()

	fresh := store.Create()

	store.evictExpired()

	if _, ok := store.Transcript(stale); ok {
		t.Error("stale session should have been evicted")
	}
	if _, ok := store.Transcript(fresh); !ok {
		t.Error("fresh session should survive eviction")
	}
	if store.Count() != 1 {
		t.Errorf("Count = %d, want 1", store.Count())
	}
}
