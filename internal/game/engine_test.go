package game

import (
	"strings"
	"testing"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func TestNewEngineStartsAtInitialPosition(t *testing.T) {
	e := NewEngine()
	if got := e.FEN(); got != startFEN {
		t.Fatalf("initial fen: %s", got)
	}
	if e.Turn() != SideWhite {
		t.Fatalf("initial turn: %s", e.Turn())
	}
}

func TestApplyMoveAccepted(t *testing.T) {
	e := NewEngine()

	rec, err := e.ApplyMove(Candidate{From: "e2", To: "e4"})
	if err != nil {
		t.Fatalf("e2-e4: %v", err)
	}
	if rec.SAN != "e4" {
		t.Errorf("san: got %q, want e4", rec.SAN)
	}
	if rec.From != "e2" || rec.To != "e4" || rec.Promotion != "" {
		t.Errorf("record: %+v", rec)
	}
	if e.Turn() != SideBlack {
		t.Errorf("turn after white's move: %s", e.Turn())
	}
	if fen := e.FEN(); !strings.HasPrefix(fen, "rnbqkbnr/pppppppp/8/8/4P3/") {
		t.Errorf("pawn not advanced: %s", fen)
	}
}

func TestApplyMoveRejections(t *testing.T) {
	tests := []struct {
		name string
		cand Candidate
	}{
		{"illegal pawn jump", Candidate{From: "e2", To: "e5"}},
		{"empty origin", Candidate{From: "", To: "e4"}},
		{"garbled squares", Candidate{From: "zz", To: "99"}},
		{"unknown promotion piece", Candidate{From: "e2", To: "e4", Promotion: "x"}},
		{"wrong side's piece", Candidate{From: "e7", To: "e5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine()
			if _, err := e.ApplyMove(tt.cand); err == nil {
				t.Fatalf("candidate %+v accepted", tt.cand)
			}
			if e.FEN() != startFEN {
				t.Error("position mutated by rejected candidate")
			}
			if e.Turn() != SideWhite {
				t.Error("turn changed by rejected candidate")
			}
		})
	}
}

func TestApplyMoveCaseAndSpaceInsensitive(t *testing.T) {
	e := NewEngine()
	if _, err := e.ApplyMove(Candidate{From: " E2 ", To: "E4"}); err != nil {
		t.Fatalf("normalized candidate rejected: %v", err)
	}
}

func TestPromotionDefaultsToQueen(t *testing.T) {
	e := NewEngine()
	if err := e.LoadFEN("8/P3k3/8/8/8/8/8/4K3 w - - 0 1"); err != nil {
		t.Fatal(err)
	}

	rec, err := e.ApplyMove(Candidate{From: "a7", To: "a8"})
	if err != nil {
		t.Fatalf("promotion without hint rejected: %v", err)
	}
	if rec.Promotion != "q" {
		t.Errorf("promotion: got %q, want q", rec.Promotion)
	}
	if rec.SAN != "a8=Q" {
		t.Errorf("san: got %q, want a8=Q", rec.SAN)
	}
}

func TestExplicitUnderpromotion(t *testing.T) {
	e := NewEngine()
	if err := e.LoadFEN("8/P3k3/8/8/8/8/8/4K3 w - - 0 1"); err != nil {
		t.Fatal(err)
	}

	rec, err := e.ApplyMove(Candidate{From: "a7", To: "a8", Promotion: "n"})
	if err != nil {
		t.Fatalf("knight promotion rejected: %v", err)
	}
	if rec.Promotion != "n" {
		t.Errorf("promotion: got %q, want n", rec.Promotion)
	}
}

func TestFENRoundTrip(t *testing.T) {
	e := NewEngine()
	if _, err := e.ApplyMove(Candidate{From: "e2", To: "e4"}); err != nil {
		t.Fatal(err)
	}
	fen := e.FEN()

	restored := NewEngine()
	if err := restored.LoadFEN(fen); err != nil {
		t.Fatalf("load fen: %v", err)
	}
	if restored.FEN() != fen {
		t.Errorf("fen changed across round trip: %s vs %s", restored.FEN(), fen)
	}
	if restored.Turn() != SideBlack {
		t.Errorf("turn after round trip: %s", restored.Turn())
	}
	// The restored position admits the same continuation.
	if _, err := restored.ApplyMove(Candidate{From: "e7", To: "e5"}); err != nil {
		t.Errorf("legal continuation rejected after round trip: %v", err)
	}
}

func TestLoadFENRejectsGarbage(t *testing.T) {
	e := NewEngine()
	if err := e.LoadFEN("not a position"); err == nil {
		t.Fatal("garbage fen accepted")
	}
}

func TestResultReportsCheckmate(t *testing.T) {
	e := NewEngine()
	if _, ok := e.Result(); ok {
		t.Fatal("fresh game reported as finished")
	}

	// Fool's mate.
	var last Record
	for _, mv := range []Candidate{
		{From: "f2", To: "f3"},
		{From: "e7", To: "e5"},
		{From: "g2", To: "g4"},
		{From: "d8", To: "h4"},
	} {
		rec, err := e.ApplyMove(mv)
		if err != nil {
			t.Fatalf("%+v: %v", mv, err)
		}
		last = rec
	}

	if last.SAN != "Qh4#" {
		t.Errorf("mating san: got %q, want Qh4#", last.SAN)
	}

	res, ok := e.Result()
	if !ok {
		t.Fatal("checkmated game reported as in progress")
	}
	if res.Outcome != "0-1" || res.Method != "Checkmate" {
		t.Fatalf("result: %+v", res)
	}
}

func TestSANCarriesCheckSuffix(t *testing.T) {
	e := NewEngine()
	if err := e.LoadFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1"); err != nil {
		t.Fatal(err)
	}

	rec, err := e.ApplyMove(Candidate{From: "a1", To: "a8"})
	if err != nil {
		t.Fatalf("a1-a8: %v", err)
	}
	if rec.SAN != "Ra8+" {
		t.Errorf("checking san: got %q, want Ra8+", rec.SAN)
	}
}

func TestNoMovesAdmissibleAfterAutoDraw(t *testing.T) {
	e := NewEngine()
	if err := e.LoadFEN("8/8/8/8/8/4p3/4K3/7k w - - 0 1"); err != nil {
		t.Fatal(err)
	}

	// Capturing the last pawn leaves king versus king, which draws the
	// game on the spot even though both kings still have legal squares.
	if _, err := e.ApplyMove(Candidate{From: "e2", To: "e3"}); err != nil {
		t.Fatalf("capture into bare kings: %v", err)
	}
	res, ok := e.Result()
	if !ok || res.Outcome != "1/2-1/2" || res.Method != "InsufficientMaterial" {
		t.Fatalf("result: %+v, %v", res, ok)
	}

	fen := e.FEN()
	if _, err := e.ApplyMove(Candidate{From: "h1", To: "h2"}); err == nil {
		t.Fatal("candidate accepted after the game ended")
	}
	if e.FEN() != fen {
		t.Error("position mutated after the game ended")
	}
}
