package eval

import (
	"testing"

	"github.com/lgbarn/chessai-go/internal/chess"
	"github.com/lgbarn/chessai-go/internal/testutil"
)

func TestEvaluate_InitialPositionIsBalanced(t *testing.T) {
	b := chess.NewInitialBoard()
	testutil.AssertEqual(t, Evaluate(b), 0)
	testutil.AssertEqual(t, Material(b), 0)
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name    string
		diagram string
		want    int
	}{
		{
			name: "kings on home squares cancel",
			diagram: `
				....k...
				........
				........
				........
				........
				........
				........
				....K...`,
			want: 0,
		},
		{
			name: "extra white queen in the centre",
			diagram: `
				....k...
				........
				........
				........
				...Q....
				........
				........
				....K...`,
			want: 900 + 5,
		},
		{
			name: "extra black knight on the rim",
			diagram: `
				....k...
				........
				........
				n.......
				........
				........
				........
				....K...`,
			want: -(320 - 30),
		},
		{
			name: "pawns one step from promotion",
			diagram: `
				....k...
				P.......
				........
				........
				........
				........
				.......p
				....K...`,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.MustBoard(t, tt.diagram)
			if got := Evaluate(b); got != tt.want {
				t.Errorf("Evaluate() = %d; want %d", got, tt.want)
			}
		})
	}
}

func TestEvaluate_SignConvention(t *testing.T) {
	b := chess.NewInitialBoard()
	b.Remove(testutil.MustSquare(t, "d8"))
	if got := Evaluate(b); got <= 0 {
		t.Errorf("Evaluate() with black queen missing = %d; want positive", got)
	}

	b = chess.NewInitialBoard()
	b.Remove(testutil.MustSquare(t, "d1"))
	if got := Evaluate(b); got >= 0 {
		t.Errorf("Evaluate() with white queen missing = %d; want negative", got)
	}
}

func TestPositional_MirrorsForBlack(t *testing.T) {
	for k := chess.Pawn; k < chess.NumKinds; k++ {
		for row := 0; row < chess.BoardSize; row++ {
			for col := 0; col < chess.BoardSize; col++ {
				white := Positional(k, chess.White, chess.Sq(row, col))
				black := Positional(k, chess.Black, chess.Sq(chess.BoardSize-1-row, col))
				if white != black {
					t.Fatalf("%v at (%d,%d): white %d, mirrored black %d", k, row, col, white, black)
				}
			}
		}
	}
}

func TestPositional(t *testing.T) {
	tests := []struct {
		name   string
		kind   chess.Kind
		colour chess.Colour
		square string
		want   int
	}{
		{"white pawn on seventh", chess.Pawn, chess.White, "e7", 50},
		{"black pawn on second", chess.Pawn, chess.Black, "e2", 50},
		{"white pawn on e2", chess.Pawn, chess.White, "e2", -20},
		{"white knight on b1", chess.Knight, chess.White, "b1", -40},
		{"black knight on f6", chess.Knight, chess.Black, "f6", 10},
		{"white king on g1", chess.King, chess.White, "g1", 30},
		{"black king on g8", chess.King, chess.Black, "g8", 30},
		{"white rook on seventh", chess.Rook, chess.White, "d7", 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Positional(tt.kind, tt.colour, testutil.MustSquare(t, tt.square))
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestPieceValue(t *testing.T) {
	want := map[chess.Kind]int{
		chess.Pawn:   100,
		chess.Knight: 320,
		chess.Bishop: 330,
		chess.Rook:   500,
		chess.Queen:  900,
		chess.King:   20000,
	}
	for k, v := range want {
		testutil.AssertEqual(t, PieceValue(k), v, "%v", k)
	}
	testutil.AssertEqual(t, PieceValue(chess.NumKinds), 0)
}

func TestMaterial(t *testing.T) {
	b := testutil.MustBoard(t, `
		....k...
		........
		........
		........
		...rR...
		........
		........
		....KNB.`)
	testutil.AssertEqual(t, Material(b), 320+330)
}
