package session

import (
	"log"
	"sync"

	"live-chess/internal/game"
)

// Oracle is the rules engine the coordinator defers to for everything about
// the position: whose turn it is, whether a candidate is playable, and the
// serialized board after each accepted move.
type Oracle interface {
	ApplyMove(game.Candidate) (game.Record, error)
	Turn() game.Side
	FEN() string
	Result() (game.Result, bool)
}

// Emitter delivers events to connections. Both calls are fire-and-forget:
// a connection that is mid-disconnect simply misses the message.
type Emitter interface {
	Unicast(connID, action string, data interface{})
	Broadcast(action string, data interface{})
}

// Coordinator is the authority over the single game session: it seats
// connections, admits moves and keeps every connected client's view of the
// position in sync. All three handlers run under one mutex, so the seat
// registry and the oracle only ever see one event at a time regardless of
// how many connection goroutines the transport runs.
type Coordinator struct {
	mu     sync.Mutex
	seats  *SeatRegistry
	oracle Oracle
	emit   Emitter
}

func New(oracle Oracle) *Coordinator {
	return &Coordinator{
		seats:  NewSeatRegistry(),
		oracle: oracle,
	}
}

// SetEmitter wires the transport in after construction; the hub and the
// coordinator reference each other, so one side has to be attached late.
func (c *Coordinator) SetEmitter(e Emitter) {
	c.emit = e
}

// OnConnect seats the new connection, tells it its role, and sends it the
// current position so late joiners render the live board instead of waiting
// for the next accepted move.
func (c *Coordinator) OnConnect(connID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	role := c.seats.Assign(connID)
	log.Printf("client %s joined as %s", connID, role)

	c.emit.Unicast(connID, "roleAssigned", string(role))
	c.emit.Unicast(connID, "boardState", c.oracle.FEN())
}

// OnMove admits a candidate move. The turn gate runs first: unless the
// submitter occupies the seat whose turn it is, the candidate is dropped
// without a reply, which also covers observers. A candidate the oracle
// rejects earns the submitter an invalidMove notice carrying the original
// payload; an accepted one is broadcast to every connection.
func (c *Coordinator) OnMove(connID string, cand game.Candidate) {
	c.mu.Lock()
	defer c.mu.Unlock()

	occupant, ok := c.seats.Occupant(c.oracle.Turn())
	if !ok || occupant != connID {
		log.Printf("client %s: move %s-%s dropped, not the mover", connID, cand.From, cand.To)
		return
	}

	rec, err := c.oracle.ApplyMove(cand)
	if err != nil {
		log.Printf("client %s: invalid move: %v", connID, err)
		c.emit.Unicast(connID, "invalidMove", cand)
		return
	}

	c.emit.Broadcast("move", rec)
	c.emit.Broadcast("boardState", c.oracle.FEN())

	if res, over := c.oracle.Result(); over {
		log.Printf("game over: %s by %s", res.Outcome, res.Method)
		c.emit.Broadcast("gameOver", res)
	}
}

// OnDisconnect frees the departing connection's seat, making it assignable
// to the next arrival. Observers leave no trace.
func (c *Coordinator) OnDisconnect(connID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seats.Release(connID)
	log.Printf("client %s disconnected", connID)
}
