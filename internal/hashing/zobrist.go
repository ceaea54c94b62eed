// Package hashing fingerprints boards. Search uses the fingerprints to prove
// that simulated moves were fully undone, and game sessions use them to count
// repeated positions.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chessai-go/internal/chess"
)

// zobristSeed is fixed so the same position hashes the same in every run.
const zobristSeed = 0x1234567890ABCDEF

const orderFactor = 31

var (
	pieceKeys  [chess.NumColours][chess.NumKinds][chess.NumSquares]uint64
	movedKeys  [chess.NumSquares]uint64
	sideToMove uint64
)

func init() {
	rng := rand.New(rand.NewSource(zobristSeed))
	for c := range pieceKeys {
		for k := range pieceKeys[c] {
			for sq := range pieceKeys[c][k] {
				pieceKeys[c][k][sq] = rng.Uint64()
			}
		}
	}
	for sq := range movedKeys {
		movedKeys[sq] = rng.Uint64()
	}
	sideToMove = rng.Uint64()
}

// Zobrist hashes the set of pieces on b: kind, colour, square and the moved
// flag. It does not depend on the order of the piece list.
func Zobrist(b *chess.Board) uint64 {
	var h uint64
	for _, p := range b.Pieces() {
		idx := p.Square.Index()
		h ^= pieceKeys[p.Colour][p.Kind][idx]
		if p.Moved {
			h ^= movedKeys[idx]
		}
	}
	return h
}

// PositionKey identifies a position for repetition counting: placement and
// side to move. Only a pawn's moved flag changes what can be played, so the
// flag is ignored for every other kind.
func PositionKey(b *chess.Board, toMove chess.Colour) uint64 {
	var h uint64
	for _, p := range b.Pieces() {
		idx := p.Square.Index()
		h ^= pieceKeys[p.Colour][p.Kind][idx]
		if p.Moved && p.Kind == chess.Pawn {
			h ^= movedKeys[idx]
		}
	}
	if toMove == chess.Black {
		h ^= sideToMove
	}
	return h
}

// OrderHash hashes the piece list as a sequence, so two boards holding the
// same pieces in a different enumeration order hash differently.
func OrderHash(b *chess.Board) uint64 {
	var h uint64
	for _, p := range b.Pieces() {
		h = h*orderFactor + uint64(p.Square.Index())
		h = h*orderFactor + uint64(p.Kind)
		h = h*orderFactor + uint64(p.Colour)
	}
	return h
}

// Fingerprint captures both the contents and the enumeration order of a
// board. Two boards with equal fingerprints generate moves identically.
type Fingerprint struct {
	Zobrist uint64
	Order   uint64
	Pieces  int
}

// Take returns the fingerprint of b.
func Take(b *chess.Board) Fingerprint {
	return Fingerprint{Zobrist: Zobrist(b), Order: OrderHash(b), Pieces: b.Len()}
}
