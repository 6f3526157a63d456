package board

import (
	"errors"
	"strings"
	"testing"

	"chessrules/internal/core"
)

func TestNewSquareBounds(t *testing.T) {
	tests := []struct {
		row, col int
		valid    bool
	}{
		{0, 0, true},
		{7, 7, true},
		{3, 5, true},
		{-1, 0, false},
		{0, -1, false},
		{8, 0, false},
		{0, 8, false},
	}

	for _, tt := range tests {
		sq, err := NewSquare(tt.row, tt.col)
		if tt.valid {
			if err != nil {
				t.Fatalf("NewSquare(%d,%d) expected no error but got %v", tt.row, tt.col, err)
			}
			if sq.Row() != tt.row || sq.Col() != tt.col {
				t.Fatalf("NewSquare(%d,%d) expected same coordinates but got (%d,%d)", tt.row, tt.col, sq.Row(), sq.Col())
			}
			continue
		}
		if !errors.Is(err, ErrInvalidSquare) {
			t.Fatalf("NewSquare(%d,%d) expected ErrInvalidSquare but got %v", tt.row, tt.col, err)
		}
	}
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in       string
		row, col int
	}{
		{"a8", 0, 0},
		{"h8", 0, 7},
		{"a1", 7, 0},
		{"e2", 6, 4},
		{"d5", 3, 3},
	}
	for _, tt := range tests {
		sq, err := ParseSquare(tt.in)
		if err != nil {
			t.Fatalf("ParseSquare(%q) returned error: %v", tt.in, err)
		}
		if sq.Row() != tt.row || sq.Col() != tt.col {
			t.Fatalf("ParseSquare(%q) expected (%d,%d) but got (%d,%d)", tt.in, tt.row, tt.col, sq.Row(), sq.Col())
		}
		if sq.String() != tt.in {
			t.Fatalf("String() expected %s but got %s", tt.in, sq.String())
		}
	}

	for _, bad := range []string{"", "e", "i1", "a9", "a0", "e22", "E2"} {
		if _, err := ParseSquare(bad); !errors.Is(err, ErrInvalidSquare) {
			t.Fatalf("ParseSquare(%q) expected ErrInvalidSquare but got %v", bad, err)
		}
	}
}

func TestSquareOffset(t *testing.T) {
	sq := MustSquare(0, 0)
	if _, ok := sq.Offset(-1, 0); ok {
		t.Fatalf("expected offset off the top edge to fail")
	}
	next, ok := sq.Offset(2, 1)
	if !ok || next != MustSquare(2, 1) {
		t.Fatalf("expected (2,1) but got %v ok=%t", next, ok)
	}
}

func TestInitialLayout(t *testing.T) {
	b := Initial()

	for c := 0; c < Size; c++ {
		p, ok := b.Occupant(MustSquare(6, c))
		if !ok || p != NewPiece(core.ColorWhite, Pawn) {
			t.Fatalf("expected white pawn on (6,%d) but got %v", c, p)
		}
		p, ok = b.Occupant(MustSquare(1, c))
		if !ok || p != NewPiece(core.ColorBlack, Pawn) {
			t.Fatalf("expected black pawn on (1,%d) but got %v", c, p)
		}
		for r := 2; r < 6; r++ {
			if !b.IsEmpty(MustSquare(r, c)) {
				t.Fatalf("expected (%d,%d) empty", r, c)
			}
		}
	}

	if p, _ := b.Occupant(MustSquare(0, 4)); p != NewPiece(core.ColorBlack, King) {
		t.Fatalf("expected black king on e8 but got %v", p)
	}
	if p, _ := b.Occupant(MustSquare(7, 3)); p != NewPiece(core.ColorWhite, Queen) {
		t.Fatalf("expected white queen on d1 but got %v", p)
	}

	if len(b.Pieces(core.ColorWhite)) != 16 || len(b.Pieces(core.ColorBlack)) != 16 {
		t.Fatalf("expected 16 pieces per side")
	}

	if Initial() != b {
		t.Fatalf("expected Initial to be deterministic")
	}
}

func TestWithDoesNotAliasOriginal(t *testing.T) {
	b := Empty()
	sq := MustSquare(4, 4)
	changed := b.With(sq, NewPiece(core.ColorWhite, Knight))

	if !b.IsEmpty(sq) {
		t.Fatalf("expected original board untouched")
	}
	if changed.IsEmpty(sq) {
		t.Fatalf("expected knight on copy")
	}
	cleared := changed.Without(sq)
	if !cleared.IsEmpty(sq) {
		t.Fatalf("expected Without to clear the square")
	}
}

func TestPlacementRoundTrip(t *testing.T) {
	b, err := ParsePlacement(StartingPlacement)
	if err != nil {
		t.Fatalf("ParsePlacement: %v", err)
	}
	if b != Initial() {
		t.Fatalf("expected starting placement to match Initial()")
	}
	if got := b.Placement(); got != StartingPlacement {
		t.Fatalf("expected %s but got %s", StartingPlacement, got)
	}

	custom := "4k3/8/3p4/8/2N5/8/8/R3K3"
	b, err = ParsePlacement(custom)
	if err != nil {
		t.Fatalf("ParsePlacement: %v", err)
	}
	if got := b.Placement(); got != custom {
		t.Fatalf("expected %s but got %s", custom, got)
	}
}

func TestParsePlacementErrors(t *testing.T) {
	for _, bad := range []string{
		"8/8/8/8/8/8/8",
		"9/8/8/8/8/8/8/8",
		"rnbqkbnrr/8/8/8/8/8/8/8",
		"7/8/8/8/8/8/8/8",
		"x7/8/8/8/8/8/8/8",
		"Ő7/8/8/8/8/8/8/8",
		"ő7/8/8/8/8/8/8/8",
	} {
		if _, err := ParsePlacement(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestToASCII(t *testing.T) {
	b := Initial()
	lines := strings.Split(b.ToASCII(), "\n")
	if len(lines) != 10 {
		t.Fatalf("expected 10 lines but got %d", len(lines))
	}
	if lines[1] != "8 r n b q k b n r  8" {
		t.Fatalf("unexpected rank 8 line: %q", lines[1])
	}
	if lines[4] != "5 . . . . . . . .  5" {
		t.Fatalf("unexpected rank 5 line: %q", lines[4])
	}
}

func TestPieceSymbols(t *testing.T) {
	if NewPiece(core.ColorWhite, Knight).Symbol() != 'N' {
		t.Fatalf("expected N for white knight")
	}
	if NewPiece(core.ColorBlack, Queen).Symbol() != 'q' {
		t.Fatalf("expected q for black queen")
	}
	p, err := PieceFromSymbol('k')
	if err != nil || p != NewPiece(core.ColorBlack, King) {
		t.Fatalf("expected black king but got %v (%v)", p, err)
	}
	if _, err := PieceFromSymbol('z'); err == nil {
		t.Fatalf("expected error for unknown symbol")
	}
}
