package notation

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lgbarn/chessai-go/internal/chess"
	"github.com/lgbarn/chessai-go/internal/errors"
	"github.com/lgbarn/chessai-go/internal/testutil"
)

func TestBoardFromFEN(t *testing.T) {
	tests := []struct {
		name       string
		fen        string
		wantPieces int
		wantToMove chess.Colour
		wantErr    bool
	}{
		{"initial position", InitialFEN, 32, chess.White, false},
		{"castling rights ignored", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", 32, chess.White, false},
		{"en passant field ignored", "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3", 32, chess.White, false},
		{"placement and side only", "4k3/8/8/8/8/8/8/4K3 b", 2, chess.Black, false},
		{"placement only", "4k3/8/8/8/8/8/8/4K3", 2, chess.White, false},
		{"empty", "", 0, chess.White, true},
		{"garbage", "not a fen", 0, chess.White, true},
		{"too many fields", InitialFEN + " extra", 0, chess.White, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, toMove, err := BoardFromFEN(tt.fen)
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
				return
			}
			if err != nil {
				t.Fatalf("BoardFromFEN(%q) error: %v", tt.fen, err)
			}
			if b.Len() != tt.wantPieces {
				t.Errorf("Len() = %d; want %d", b.Len(), tt.wantPieces)
			}
			if toMove != tt.wantToMove {
				t.Errorf("toMove = %v; want %v", toMove, tt.wantToMove)
			}
		})
	}
}

func TestBoardFromFEN_PawnMovedFlag(t *testing.T) {
	b, _, err := BoardFromFEN("4k3/p7/8/3p4/4P3/8/1P6/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		square string
		moved  bool
	}{
		{"a7", false},
		{"d5", true},
		{"e4", true},
		{"b2", false},
	}
	for _, tt := range tests {
		p := b.PieceAt(testutil.MustSquare(t, tt.square))
		if p == nil {
			t.Fatalf("no piece on %s", tt.square)
		}
		if p.Moved != tt.moved {
			t.Errorf("%s Moved = %v; want %v", tt.square, p.Moved, tt.moved)
		}
	}
}

func TestBoardToFEN(t *testing.T) {
	if got := BoardToFEN(chess.NewInitialBoard(), chess.White); got != InitialFEN {
		t.Errorf("BoardToFEN(initial) = %q; want %q", got, InitialFEN)
	}

	b := testutil.MustBoard(t, `
		......k.
		.....ppp
		........
		........
		........
		........
		........
		R.....K.
	`)
	want := "6k1/5ppp/8/8/8/8/8/R5K1 b - - 0 1"
	if got := BoardToFEN(b, chess.Black); got != want {
		t.Errorf("BoardToFEN() = %q; want %q", got, want)
	}
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 b - - 0 1",
	}
	for _, fen := range fens {
		b, toMove, err := BoardFromFEN(fen)
		if err != nil {
			t.Fatalf("BoardFromFEN(%q) error: %v", fen, err)
		}
		if got := BoardToFEN(b, toMove); got != fen {
			t.Errorf("round trip = %q; want %q", got, fen)
		}
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	b := testutil.MustBoard(t, `
		....k...
		..P.....
		........
		...q....
		........
		........
		....p...
		Q...K...
	`)

	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, b, chess.Black); err != nil {
		t.Fatalf("EncodeSnapshot() error: %v", err)
	}
	testutil.AssertTrue(t, strings.Contains(buf.String(), `"kind": "queen"`), "snapshot names kinds")

	got, toMove, err := DecodeSnapshot(&buf)
	if err != nil {
		t.Fatalf("DecodeSnapshot() error: %v", err)
	}
	testutil.AssertEqual(t, toMove, chess.Black)
	testutil.AssertSameBoard(t, b, got)

	if p := got.PieceAt(testutil.MustSquare(t, "a1")); p == nil || p.Kind != chess.Queen || p.Colour != chess.White {
		t.Errorf("a1 = %v; want white queen", p)
	}
}

func TestDecodeSnapshot_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"not json", "{", errors.ErrInvalidSnapshot},
		{"bad kind", `{"pieces":[{"kind":"dragon","color":"white","square":"a1"}]}`, errors.ErrInvalidSnapshot},
		{"bad colour", `{"pieces":[{"kind":"king","color":"red","square":"a1"}]}`, errors.ErrInvalidSnapshot},
		{"bad square", `{"pieces":[{"kind":"king","color":"white","square":"z9"}]}`, errors.ErrInvalidSquare},
		{"bad side", `{"toMove":"green","pieces":[]}`, errors.ErrInvalidSnapshot},
		{"duplicate square", `{"pieces":[{"kind":"king","color":"white","square":"a1"},{"kind":"king","color":"black","square":"a1"}]}`, errors.ErrInvalidSnapshot},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeSnapshot(strings.NewReader(tt.input))
			testutil.AssertErrorIs(t, err, tt.want)
		})
	}
}
