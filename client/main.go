package main

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"log"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

const (
	MsgTypeJoinRoom     = 101
	MsgTypeCreateRoom   = 103
	MsgTypePlayerAction = 201
)

// send formats and sends a message to the WebSocket server.
func send(c *websocket.Conn, msgID uint16, data []byte) error {
	packet := make([]byte, 4+len(data))
	binary.BigEndian.PutUint16(packet[0:2], msgID)
	binary.BigEndian.PutUint16(packet[2:4], uint16(len(data)))
	copy(packet[4:], data)

	return c.WriteMessage(websocket.BinaryMessage, packet)
}

func sendAction(c *websocket.Conn, action map[string]interface{}) {
	data, _ := json.Marshal(action)
	if err := send(c, MsgTypePlayerAction, data); err != nil {
		log.Println("Write error:", err)
		return
	}
	log.Printf("-> SENT: %s", data)
}

func main() {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	u := url.URL{Scheme: "ws", Host: "localhost:8080", Path: "/ws"}
	log.Printf("Connecting to %s", u.String())

	c, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		log.Fatalf("Dial failed: %v", err)
	}
	defer c.Close()

	done := make(chan struct{})

	// Read loop
	go func() {
		defer close(done)
		for {
			_, message, err := c.ReadMessage()
			if err != nil {
				log.Println("Read error:", err)
				return
			}
			if len(message) < 4 {
				log.Printf("Received invalid packet of size %d", len(message))
				continue
			}
			msgID := binary.BigEndian.Uint16(message[0:2])
			data := message[4:]
			log.Printf("<- RECV (ID: %d): %s", msgID, string(data))
		}
	}()

	name := "tester"
	if len(os.Args) > 1 {
		name = os.Args[1]
	}

	if len(os.Args) > 2 {
		// Second argument is a room id to join.
		roomID := os.Args[2]
		log.Printf("Joining room %s...", roomID)
		req, _ := json.Marshal(map[string]string{"room_id": roomID, "name": name})
		if err := send(c, MsgTypeJoinRoom, req); err != nil {
			log.Println("Write error:", err)
			return
		}
	} else {
		log.Println("Sending Create Room request...")
		req, _ := json.Marshal(map[string]string{"name": name})
		if err := send(c, MsgTypeCreateRoom, req); err != nil {
			log.Println("Write error:", err)
			return
		}
	}

	log.Println("Commands:")
	log.Println("  draw              draw a face-down card")
	log.Println("  open <i>          take display card i (0-4)")
	log.Println("  claim <route> <color> [color...]")
	log.Println("  tickets           request a ticket offer")
	log.Println("  keep <id> [id...] confirm kept tickets")

	// Write loop
	reader := bufio.NewReader(os.Stdin)
	for {
		select {
		case <-done:
			return
		case <-interrupt:
			log.Println("Interrupt received, closing connection.")
			err := c.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			if err != nil {
				log.Println("Write close error:", err)
			}
			select {
			case <-done:
			case <-time.After(time.Second):
			}
			return
		default:
			text, _ := reader.ReadString('\n')
			fields := strings.Fields(strings.TrimSpace(text))
			if len(fields) == 0 {
				continue
			}

			switch fields[0] {
			case "draw":
				sendAction(c, map[string]interface{}{"type": "draw_closed"})
			case "open":
				if len(fields) < 2 {
					log.Println("Usage: open <index>")
					continue
				}
				idx, err := strconv.Atoi(fields[1])
				if err != nil {
					log.Println("Invalid index:", fields[1])
					continue
				}
				sendAction(c, map[string]interface{}{"type": "draw_open", "display_index": idx})
			case "claim":
				if len(fields) < 3 {
					log.Println("Usage: claim <route> <color> [color...]")
					continue
				}
				sendAction(c, map[string]interface{}{
					"type":     "claim_route",
					"route_id": fields[1],
					"cards":    fields[2:],
				})
			case "tickets":
				sendAction(c, map[string]interface{}{"type": "offer_tickets"})
			case "keep":
				sendAction(c, map[string]interface{}{
					"type":       "confirm_tickets",
					"ticket_ids": fields[1:],
				})
			default:
				log.Println("Unknown command:", fields[0])
			}
		}
	}
}
