package ws

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"

	"live-chess/internal/game"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
	sendBuffer = 32
)

// envelope is the wire shape of every event: a name plus a payload.
type envelope struct {
	Action string      `json:"action"`
	Data   interface{} `json:"data"`
}

type inbound struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

// Client is one live websocket connection. The write pump goroutine owns all
// writes; everyone else hands it messages through the send channel.
type Client struct {
	ID   string
	hub  *Hub
	conn *websocket.Conn
	send chan envelope
}

// enqueue hands a message to the write pump without blocking. A client whose
// buffer is full is too far behind to care; the message is dropped, matching
// the fire-and-forget delivery contract.
func (c *Client) enqueue(msg envelope) {
	select {
	case c.send <- msg:
	default:
		log.Printf("client %s: send buffer full, dropping %s", c.ID, msg.Action)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()
	for {
		select {
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readLoop decodes envelopes off the connection and dispatches them until
// the peer goes away. It returns once the connection is unusable; the hub
// handles deregistration.
func (c *Client) readLoop() {
	defer c.conn.Close()
	for {
		var msg inbound
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("client %s: read: %v", c.ID, err)
			}
			return
		}

		switch msg.Action {
		case "move":
			// A payload that does not decode still goes through OnMove:
			// the zero candidate fails validation there and the submitter
			// gets the invalidMove notice it would get for any garbage.
			var cand game.Candidate
			if err := json.Unmarshal(msg.Data, &cand); err != nil {
				log.Printf("client %s: bad move payload: %v", c.ID, err)
			}
			c.hub.coord.OnMove(c.ID, cand)
		default:
			log.Printf("client %s: unknown action %q", c.ID, msg.Action)
		}
	}
}
