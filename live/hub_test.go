// Copyright (c) 2026 Hinolugi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package live

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dialTestHub(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestBroadcastReachesWatcher(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	conn := dialTestHub(t, hub)

	payload := []byte(`{"players":[{"name":"Ada","score":1}]}`)
	hub.Broadcast(payload)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, got, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("watcher got %s, want %s", got, payload)
	}
}

func TestNewWatcherReceivesLatestState(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	payload := []byte(`{"players":[]}`)
	hub.Broadcast(payload)

	// Wait for the hub to absorb the broadcast before connecting.
	deadline := time.Now().Add(2 * time.Second)
	for {
		hub.mu.Lock()
		ready := hub.latest != nil
		hub.mu.Unlock()
		if ready {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("hub never stored the broadcast")
		}
		time.Sleep(5 * time.Millisecond)
	}

	conn := dialTestHub(t, hub)
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, got, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("late watcher got %s, want %s", got, payload)
	}
}
