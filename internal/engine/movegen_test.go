package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chessai-go/internal/chess"
	"github.com/lgbarn/chessai-go/internal/testutil"
)

func squares(t *testing.T, names ...string) []chess.Square {
	t.Helper()
	out := make([]chess.Square, 0, len(names))
	for _, n := range names {
		out = append(out, testutil.MustSquare(t, n))
	}
	return out
}

func TestCandidates(t *testing.T) {
	tests := []struct {
		name    string
		diagram string
		from    string
		want    []string
	}{
		{
			name: "rook on open board in direction order",
			diagram: `
				........
				........
				........
				........
				...R....
				........
				........
				........`,
			from: "d4",
			want: []string{"d3", "d2", "d1", "d5", "d6", "d7", "d8", "c4", "b4", "a4", "e4", "f4", "g4", "h4"},
		},
		{
			name: "rook stops at capture and friendly piece",
			diagram: `
				........
				........
				........
				........
				........
				p.......
				........
				RP......`,
			from: "a1",
			want: []string{"a2", "a3"},
		},
		{
			name: "bishop blocked on one diagonal",
			diagram: `
				........
				........
				........
				........
				........
				........
				.P......
				..B.....`,
			from: "c1",
			want: []string{"d2", "e3", "f4", "g5", "h6"},
		},
		{
			name: "knight in the corner",
			diagram: `
				........
				........
				........
				........
				........
				........
				........
				N.......`,
			from: "a1",
			want: []string{"c2", "b3"},
		},
		{
			name: "knight in the centre",
			diagram: `
				........
				........
				........
				........
				...N....
				........
				........
				........`,
			from: "d4",
			want: []string{"e2", "f3", "f5", "e6", "c6", "b5", "b3", "c2"},
		},
		{
			name: "queen hemmed in by own pieces",
			diagram: `
				........
				........
				........
				........
				........
				........
				PP......
				QN......`,
			from: "a1",
			want: nil,
		},
		{
			name: "king steps once",
			diagram: `
				........
				........
				........
				........
				........
				........
				........
				....K...`,
			from: "e1",
			want: []string{"d2", "f2", "f1", "e2", "d1"},
		},
		{
			name: "unmoved white pawn",
			diagram: `
				........
				........
				........
				........
				........
				........
				....P...
				........`,
			from: "e2",
			want: []string{"e3", "e4"},
		},
		{
			name: "pawn double step blocked on far square",
			diagram: `
				........
				........
				........
				........
				....n...
				........
				....P...
				........`,
			from: "e2",
			want: []string{"e3"},
		},
		{
			name: "pawn blocked directly ahead",
			diagram: `
				........
				........
				........
				........
				........
				....n...
				....P...
				........`,
			from: "e2",
			want: nil,
		},
		{
			name: "pawn captures diagonally only onto opponents",
			diagram: `
				........
				........
				........
				........
				........
				...n.N..
				....P...
				........`,
			from: "e2",
			want: []string{"e3", "e4", "d3"},
		},
		{
			name: "moved pawn steps once",
			diagram: `
				........
				........
				........
				........
				........
				....P...
				........
				........`,
			from: "e3",
			want: []string{"e4"},
		},
		{
			name: "black pawn moves down the board",
			diagram: `
				........
				...p....
				..B.....
				........
				........
				........
				........
				........`,
			from: "d7",
			want: []string{"d6", "d5", "c6"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.MustBoard(t, tt.diagram)
			p := b.PieceAt(testutil.MustSquare(t, tt.from))
			if p == nil {
				t.Fatalf("no piece on %s", tt.from)
			}
			got := Candidates(b, p)
			want := squares(t, tt.want...)
			if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Candidates(%s) mismatch (-want +got):\n%s", tt.from, diff)
			}
		})
	}
}

func TestCandidates_QueenCapture(t *testing.T) {
	b := testutil.MustBoard(t, `
		........
		........
		........
		........
		........
		........
		.p......
		Q.......`)
	p := b.PieceAt(testutil.MustSquare(t, "a1"))
	got := Candidates(b, p)
	want := squares(t, "b2", "b1", "c1", "d1", "e1", "f1", "g1", "h1", "a2", "a3", "a4", "a5", "a6", "a7", "a8")
	testutil.AssertEqual(t, got, want)
}

func TestAttacksMatchesCandidates(t *testing.T) {
	boards := map[string]*chess.Board{
		"initial": chess.NewInitialBoard(),
		"midgame": testutil.MustBoard(t, `
			r.bqkb.r
			pppp.ppp
			..n..n..
			....p...
			..B.P...
			.....N..
			PPPP.PPP
			RNBQK..R`),
		"open": testutil.MustBoard(t, `
			........
			..p.....
			...p....
			KP.....r
			.R...p.k
			........
			....P.P.
			..Q.....`),
	}

	for name, b := range boards {
		t.Run(name, func(t *testing.T) {
			for _, p := range b.Pieces() {
				cands := make(map[chess.Square]bool)
				for _, sq := range Candidates(b, p) {
					cands[sq] = true
				}
				for row := -1; row <= chess.BoardSize; row++ {
					for col := -1; col <= chess.BoardSize; col++ {
						sq := chess.Sq(row, col)
						if got := Attacks(b, p, sq); got != cands[sq] {
							t.Errorf("Attacks(%v, %v) = %v; candidates say %v", p, sq, got, cands[sq])
						}
					}
				}
			}
		})
	}
}

func TestAppendCandidates_ReusesBuffer(t *testing.T) {
	b := chess.NewInitialBoard()
	knight := b.PieceAt(testutil.MustSquare(t, "g1"))
	buf := make([]chess.Square, 0, 8)
	buf = AppendCandidates(buf, b, knight)
	testutil.AssertEqual(t, buf, squares(t, "h3", "f3"))
}
