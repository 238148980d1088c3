package room

import (
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/railbound/gameserver/game"
	"github.com/railbound/gameserver/network"
	"github.com/railbound/gameserver/session"
	"github.com/railbound/gameserver/timer"
)

// MockBroadcaster is a test double for the Broadcaster interface.
type MockBroadcaster struct{}

func (m *MockBroadcaster) BroadcastToRoom(roomID string, msgID uint16, data []byte) error {
	return nil
}

// MockConnection is a test double for the network.Connection interface.
type MockConnection struct{}

func (m *MockConnection) Send(msgID uint16, data []byte) error { return nil }
func (m *MockConnection) SendJSON(msgID uint16, v interface{}) error {
	_, err := json.Marshal(v)
	return err
}
func (m *MockConnection) Close() error                         { return nil }
func (m *MockConnection) RemoteAddr() net.Addr                 { return &net.TCPAddr{} }
func (m *MockConnection) SetHeartbeat(interval time.Duration)  {}
func (m *MockConnection) ReadPacket() (*network.Packet, error) { return nil, nil }

// newTestSession creates a dummy session for testing purposes.
func newTestSession(id string) *session.Session {
	return session.NewSession(id, &MockConnection{})
}

func testOptions(maxPlayers int) Options {
	return Options{
		MinPlayers:  2,
		MaxPlayers:  maxPlayers,
		Engine:      game.NewEngine(game.NewMemoryStore()),
		Board:       game.DefaultBoard(),
		Broadcaster: &MockBroadcaster{},
		Timers:      timer.NewTimerManager(),
		Seed:        42,
	}
}

func TestRoomManager_CreateAndGetRoom(t *testing.T) {
	manager := NewRoomManager()

	roomID := "test_room_1"
	room := manager.CreateRoom(roomID, "Test Room", testOptions(4))
	if room == nil {
		t.Fatal("CreateRoom should not return nil")
	}
	defer room.Close()

	if room.ID != roomID {
		t.Errorf("Expected room ID %s, got %s", roomID, room.ID)
	}

	retrievedRoom, exists := manager.GetRoom(roomID)
	if !exists {
		t.Fatal("GetRoom should find the created room")
	}

	if retrievedRoom != room {
		t.Error("GetRoom should return the same room instance")
	}
}

func TestRoom_AddPlayer(t *testing.T) {
	room := NewRoom("test_room_2", "Add Player Test", testOptions(2))
	defer room.Close()

	player1 := newTestSession("player1")

	added := room.AddPlayer(player1)
	if !added {
		t.Fatal("Failed to add first player")
	}

	if len(room.Players) != 1 {
		t.Errorf("Expected player count to be 1, got %d", len(room.Players))
	}

	if _, exists := room.Players[player1.GetID()]; !exists {
		t.Error("Player was not correctly added to the room's player map")
	}
}

func TestRoom_AddPlayer_Full(t *testing.T) {
	room := NewRoom("test_room_3", "Full Room Test", testOptions(1))
	defer room.Close()

	player1 := newTestSession("player1")
	player2 := newTestSession("player2")

	// Add first player, should succeed
	if !room.AddPlayer(player1) {
		t.Fatal("Failed to add the first player")
	}

	// Add second player, should fail
	if room.AddPlayer(player2) {
		t.Fatal("Should not be able to add a player to a full room")
	}

	if len(room.Players) != 1 {
		t.Errorf("Expected player count to be 1 after trying to add to a full room, got %d", len(room.Players))
	}
}

func TestRoom_RemovePlayer(t *testing.T) {
	room := NewRoom("test_room_4", "Remove Player Test", testOptions(2))
	defer room.Close()

	player1 := newTestSession("player1")
	room.AddPlayer(player1)

	if len(room.Players) != 1 {
		t.Fatalf("Setup failed: player not added correctly. Count: %d", len(room.Players))
	}

	room.RemovePlayer(player1.GetID())

	if len(room.Players) != 0 {
		t.Errorf("Expected player count to be 0 after removing player, got %d", len(room.Players))
	}

	if _, exists := room.Players[player1.GetID()]; exists {
		t.Error("Player was not correctly removed from the room's player map")
	}
}

func TestRoom_StartMatchSeatsInJoinOrder(t *testing.T) {
	opts := testOptions(4)
	room := NewRoom("test_room_5", "Start Match Test", opts)
	defer room.Close()

	alice := newTestSession("alice")
	alice.SetName("Alice")
	bob := newTestSession("bob")
	bob.SetName("Bob")
	room.AddPlayer(alice)
	room.AddPlayer(bob)

	if err := room.StartMatch(); err != nil {
		t.Fatalf("StartMatch failed: %v", err)
	}

	sess, err := opts.Engine.Session(room.GameID())
	if err != nil {
		t.Fatalf("engine session not created: %v", err)
	}
	if len(sess.Players) != 2 {
		t.Fatalf("Expected 2 seated players, got %d", len(sess.Players))
	}
	if sess.Players[0].ID != "alice" || sess.Players[1].ID != "bob" {
		t.Errorf("Seats not in join order: %s, %s", sess.Players[0].ID, sess.Players[1].ID)
	}
	if sess.Players[0].Name != "Alice" {
		t.Errorf("Expected seat name Alice, got %s", sess.Players[0].Name)
	}
}

func TestRoom_AddPlayerRejectedAfterStart(t *testing.T) {
	room := NewRoom("test_room_6", "Late Join Test", testOptions(4))
	defer room.Close()

	room.AddPlayer(newTestSession("p1"))
	room.AddPlayer(newTestSession("p2"))
	if err := room.StartMatch(); err != nil {
		t.Fatalf("StartMatch failed: %v", err)
	}

	if room.AddPlayer(newTestSession("p3")) {
		t.Error("Players must not join once the match has started")
	}
}
