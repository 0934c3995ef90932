package game

import (
	"fmt"
	"strings"

	"github.com/notnil/chess"
)

// Engine owns the authoritative position and is the only code that mutates
// it. Callers are expected to serialize access; see the session coordinator.
type Engine struct {
	game *chess.Game
}

func NewEngine() *Engine {
	return &Engine{game: chess.NewGame()}
}

// ApplyMove validates a candidate against the current position and, if legal,
// plays it. The returned record carries the normalized move. Any candidate
// the engine cannot decode or that breaks the rules of chess comes back as an
// error with the position untouched.
func (e *Engine) ApplyMove(c Candidate) (Record, error) {
	if e.game.Outcome() != chess.NoOutcome {
		return Record{}, fmt.Errorf("game is over: %s", e.game.Outcome())
	}

	from := strings.ToLower(strings.TrimSpace(c.From))
	to := strings.ToLower(strings.TrimSpace(c.To))
	if !validSquare(from) || !validSquare(to) {
		return Record{}, fmt.Errorf("malformed move %q-%q", c.From, c.To)
	}

	promo := strings.ToLower(strings.TrimSpace(c.Promotion))
	switch promo {
	case "", "q", "r", "b", "n":
	default:
		return Record{}, fmt.Errorf("unknown promotion piece %q", c.Promotion)
	}

	pos := e.game.Position()
	if promo == "" && e.promotes(pos, from, to) {
		// Clients that do not disambiguate get the strongest piece.
		promo = "q"
	}

	mv, err := chess.UCINotation{}.Decode(pos, from+to+promo)
	if err != nil {
		return Record{}, fmt.Errorf("decode %s%s%s: %w", from, to, promo, err)
	}
	valid := e.findValid(mv)
	if valid == nil {
		return Record{}, fmt.Errorf("illegal move %s%s", from, to)
	}
	// Encode from the ValidMoves entry: it carries the check tag, so the
	// SAN keeps its + / # suffix.
	san := chess.AlgebraicNotation{}.Encode(pos, valid)
	if err := e.game.Move(valid); err != nil {
		return Record{}, fmt.Errorf("illegal move %s%s: %w", from, to, err)
	}

	return Record{From: from, To: to, Promotion: promo, SAN: san}, nil
}

// Turn reports the side to move.
func (e *Engine) Turn() Side {
	if e.game.Position().Turn() == chess.White {
		return SideWhite
	}
	return SideBlack
}

// FEN serializes the current position.
func (e *Engine) FEN() string {
	return e.game.Position().String()
}

// LoadFEN replaces the current position with the one encoded in fen.
func (e *Engine) LoadFEN(fen string) error {
	opt, err := chess.FEN(fen)
	if err != nil {
		return fmt.Errorf("parse fen: %w", err)
	}
	e.game = chess.NewGame(opt)
	return nil
}

// Result reports the outcome of a finished game. ok is false while the game
// is still in progress.
func (e *Engine) Result() (Result, bool) {
	if e.game.Outcome() == chess.NoOutcome {
		return Result{}, false
	}
	return Result{
		Outcome: string(e.game.Outcome()),
		Method:  e.game.Method().String(),
	}, true
}

func (e *Engine) findValid(mv *chess.Move) *chess.Move {
	for _, vm := range e.game.ValidMoves() {
		if vm.S1() == mv.S1() && vm.S2() == mv.S2() && vm.Promo() == mv.Promo() {
			return vm
		}
	}
	return nil
}

func (e *Engine) promotes(pos *chess.Position, from, to string) bool {
	if pos.Board().Piece(squareOf(from)).Type() != chess.Pawn {
		return false
	}
	return to[1] == '1' || to[1] == '8'
}

func validSquare(s string) bool {
	return len(s) == 2 && s[0] >= 'a' && s[0] <= 'h' && s[1] >= '1' && s[1] <= '8'
}

// squareOf maps algebraic coordinates onto the engine's A1..H8 ordering.
func squareOf(s string) chess.Square {
	return chess.Square(int(s[1]-'1')*8 + int(s[0]-'a'))
}
