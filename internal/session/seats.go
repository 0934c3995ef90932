package session

import "live-chess/internal/game"

// Role is what a connection was assigned at join time.
type Role string

const (
	RoleWhite    Role = "white"
	RoleBlack    Role = "black"
	RoleObserver Role = "observer"
)

// SeatRegistry maps the two playing seats to connection IDs. Everything else
// is an observer. It carries no locking of its own; the coordinator serializes
// every mutation.
type SeatRegistry struct {
	white string
	black string
}

func NewSeatRegistry() *SeatRegistry {
	return &SeatRegistry{}
}

// Assign hands out the first vacant seat, white before black, and records the
// occupancy. A connection arriving with both seats taken becomes an observer.
func (s *SeatRegistry) Assign(connID string) Role {
	switch {
	case s.white == "":
		s.white = connID
		return RoleWhite
	case s.black == "":
		s.black = connID
		return RoleBlack
	default:
		return RoleObserver
	}
}

// Release vacates whichever seat connID holds. Releasing an observer or an
// already-released ID is a no-op, and the other seat is never touched.
func (s *SeatRegistry) Release(connID string) {
	if s.white == connID {
		s.white = ""
	} else if s.black == connID {
		s.black = ""
	}
}

// Occupant returns the connection holding the seat for side, if any.
func (s *SeatRegistry) Occupant(side game.Side) (string, bool) {
	var id string
	if side == game.SideWhite {
		id = s.white
	} else {
		id = s.black
	}
	return id, id != ""
}
