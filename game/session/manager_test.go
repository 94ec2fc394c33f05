package session

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/mtmal/snake-server/game/engine"
)

func testConfig() *engine.GameConfig {
	return &engine.GameConfig{Name: "test", Description: "Test board", Width: 10, Height: 10}
}

func TestCreateGeneratesUUID(t *testing.T) {
	manager := NewManager()

	sess, err := manager.Create("", testConfig())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if len(sess.ID) != 36 || strings.Count(sess.ID, "-") != 4 {
		t.Errorf("Expected a UUID session id, got %q", sess.ID)
	}
	if sess.Engine == nil {
		t.Fatal("Session should have an engine")
	}
	if sess.Engine.IsGameOver() {
		t.Error("New session's game should not be over")
	}
}

func TestCreateWithExplicitID(t *testing.T) {
	manager := NewManager()

	sess, err := manager.Create("my-game", testConfig())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if sess.ID != "my-game" {
		t.Errorf("Expected id 'my-game', got %q", sess.ID)
	}

	if _, err := manager.Create("my-game", testConfig()); !errors.Is(err, ErrSessionAlreadyExists) {
		t.Errorf("Expected ErrSessionAlreadyExists, got %v", err)
	}

	// IDs are case-insensitive, so a different casing still collides.
	if _, err := manager.Create("MY-GAME", testConfig()); !errors.Is(err, ErrSessionAlreadyExists) {
		t.Errorf("Expected ErrSessionAlreadyExists for different casing, got %v", err)
	}
}

func TestCreateRejectsInvalidConfig(t *testing.T) {
	manager := NewManager()

	_, err := manager.Create("", &engine.GameConfig{Name: "bad", Width: 0, Height: 0})
	if err == nil {
		t.Fatal("Create with invalid dimensions should fail")
	}
	if !errors.Is(err, engine.ErrInvalidDimensions) {
		t.Errorf("Expected ErrInvalidDimensions, got %v", err)
	}
}

func TestGetCaseInsensitive(t *testing.T) {
	manager := NewManager()

	created, err := manager.Create("AbCd", testConfig())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := manager.Get("abcd")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != created {
		t.Error("Get should return the same session instance")
	}

	if _, err := manager.Get("unknown"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestGetOrCreate(t *testing.T) {
	manager := NewManager()

	first, err := manager.GetOrCreate("game1", testConfig())
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}

	second, err := manager.GetOrCreate("game1", testConfig())
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}
	if first != second {
		t.Error("GetOrCreate should return the existing session")
	}
}

func TestListAndDelete(t *testing.T) {
	manager := NewManager()

	if _, err := manager.Create("a", testConfig()); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := manager.Create("b", testConfig()); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if got := len(manager.List()); got != 2 {
		t.Fatalf("Expected 2 sessions, got %d", got)
	}

	if err := manager.Delete("A"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if got := len(manager.List()); got != 1 {
		t.Fatalf("Expected 1 session after delete, got %d", got)
	}

	if err := manager.Delete("a"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestUpdateLastAccessed(t *testing.T) {
	manager := NewManager()

	sess, err := manager.Create("tracked", testConfig())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	before := sess.LastAccessedAt

	if err := manager.UpdateLastAccessed("tracked"); err != nil {
		t.Fatalf("UpdateLastAccessed failed: %v", err)
	}
	if !sess.LastAccessedAt.After(before) && !sess.LastAccessedAt.Equal(before) {
		t.Error("LastAccessedAt should not move backwards")
	}

	if err := manager.UpdateLastAccessed("unknown"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestCleanupExpired(t *testing.T) {
	manager := NewManager()

	if _, err := manager.Create("stale", testConfig()); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := manager.Create("fresh", testConfig()); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Both sessions were just created; nothing should expire.
	if removed := manager.CleanupExpired(time.Hour); removed != 0 {
		t.Errorf("Expected 0 removed, got %d", removed)
	}

	time.Sleep(10 * time.Millisecond)
	if err := manager.UpdateLastAccessed("fresh"); err != nil {
		t.Fatalf("UpdateLastAccessed failed: %v", err)
	}

	if removed := manager.CleanupExpired(5 * time.Millisecond); removed != 1 {
		t.Errorf("Expected 1 removed, got %d", removed)
	}
	if _, err := manager.Get("stale"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected stale session to be gone, got %v", err)
	}
	if _, err := manager.Get("fresh"); err != nil {
		t.Errorf("Expected fresh session to survive, got %v", err)
	}
}

func TestConcurrentSessionsAreIndependent(t *testing.T) {
	manager := NewManager()

	ids := []string{"g1", "g2", "g3", "g4"}
	for _, id := range ids {
		if _, err := manager.Create(id, testConfig()); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	// Tick every session from several goroutines at once; per-session locks
	// keep each game consistent.
	var wg sync.WaitGroup
	for _, id := range ids {
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func(id string) {
				defer wg.Done()
				sess, err := manager.Get(id)
				if err != nil {
					t.Errorf("Get failed: %v", err)
					return
				}
				for j := 0; j < 5; j++ {
					sess.Do(func(eng *engine.GameEngine) error {
						eng.SetDirection(eng.AIDirection())
						return eng.Tick()
					})
				}
			}(id)
		}
	}
	wg.Wait()

	for _, id := range ids {
		sess, err := manager.Get(id)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		state := sess.Engine.GetState()
		seen := make(map[engine.Point]bool)
		for _, seg := range state.Snake {
			if seen[seg] {
				t.Fatalf("Session %s has a duplicate segment after concurrent ticks", id)
			}
			seen[seg] = true
		}
	}
}
