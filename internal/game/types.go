package game

// Side is the color to move.
type Side string

const (
	SideWhite Side = "white"
	SideBlack Side = "black"
)

// Candidate is an unvalidated move request as submitted by a client.
// It has no identity beyond the single admission check it is used for.
type Candidate struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion,omitempty"`
}

// Record is the normalized form of an accepted move.
type Record struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion,omitempty"`
	SAN       string `json:"san"`
}

// Result describes a finished game.
type Result struct {
	Outcome string `json:"outcome"` // "1-0", "0-1" or "1/2-1/2"
	Method  string `json:"method"`  // e.g. "Checkmate", "Stalemate"
}
