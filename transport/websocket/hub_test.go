package websocket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/mtmal/snake-server/game/engine"
)

func TestNewHub(t *testing.T) {
	hub := NewHub()

	if hub == nil {
		t.Fatal("NewHub() returned nil")
	}
	if hub.sessions == nil {
		t.Error("Hub sessions map is nil")
	}
	if hub.broadcast == nil {
		t.Error("Hub broadcast channel is nil")
	}
	if hub.register == nil {
		t.Error("Hub register channel is nil")
	}
	if hub.unregister == nil {
		t.Error("Hub unregister channel is nil")
	}
}

func testState() *engine.GameState {
	return &engine.GameState{
		Snake:     []engine.Point{{X: 2, Y: 2}},
		Food:      engine.Point{X: 4, Y: 4},
		Direction: engine.Right,
		Width:     5,
		Height:    5,
	}
}

// dialTestClient connects a real websocket client to a hub-backed test server.
func dialTestClient(t *testing.T, hub *Hub, sessionID string) *websocket.Conn {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.ServeWS(w, r, sessionID)
	}))
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestBroadcastToSession(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	conn := dialTestClient(t, hub, "game1")

	// Registration races the broadcast; give the hub loop a moment.
	time.Sleep(50 * time.Millisecond)

	hub.BroadcastToSession("game1", testState())

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage failed: %v", err)
	}

	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if msg.SessionID != "game1" {
		t.Errorf("Expected session_id 'game1', got %q", msg.SessionID)
	}
	if msg.Event != "state_update" {
		t.Errorf("Expected event 'state_update', got %q", msg.Event)
	}
	if msg.GameState == nil {
		t.Fatal("Expected game state in message")
	}
	if len(msg.GameState.Snake) != 1 || msg.GameState.Snake[0] != (engine.Point{X: 2, Y: 2}) {
		t.Errorf("Unexpected snake in broadcast: %v", msg.GameState.Snake)
	}
}

func TestBroadcastIsScopedToSession(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	other := dialTestClient(t, hub, "other-game")
	time.Sleep(50 * time.Millisecond)

	hub.BroadcastToSession("game1", testState())

	other.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	if _, _, err := other.ReadMessage(); err == nil {
		t.Error("Client of another session should not receive the broadcast")
	}
}

func TestBroadcastEvent(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	conn := dialTestClient(t, hub, "game1")
	time.Sleep(50 * time.Millisecond)

	hub.BroadcastEvent("game1", "game_over", map[string]int{"score": 5})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage failed: %v", err)
	}

	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if msg.Event != "game_over" {
		t.Errorf("Expected event 'game_over', got %q", msg.Event)
	}
}
