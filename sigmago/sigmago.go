// Package sigmago is a demonstration game for the searcher: two players
// alternately place stones on empty cells of a fixed square grid until it
// is full, and the player holding more cells wins. It exists to exercise
// the game.State contract; the engine never depends on it.
package sigmago

import (
	"fmt"

	"github.com/DBuild-23/mcts-algorithm-structure-SigmaGo/game"
)

const (
	Black = "black"
	White = "white"
)

// Point is a board coordinate used as the move value.
type Point struct {
	X, Y int
}

// Board is an immutable position: Play returns a fresh board and never
// touches the receiver.
type Board struct {
	size   int
	cells  []string // owner per cell, row-major; "" means empty
	player string
}

func NewBoard(size int) *Board {
	if size < 1 {
		panic(fmt.Sprintf("sigmago: board size %d is not positive", size))
	}
	return &Board{
		size:   size,
		cells:  make([]string, size*size),
		player: Black,
	}
}

func (b *Board) Size() int { return b.size }

// At returns the owner of the cell at p, or "" when empty.
func (b *Board) At(p Point) string {
	return b.cells[b.index(p)]
}

func (b *Board) Player() string { return b.player }

func (b *Board) LegalMoves() []game.Move {
	moves := make([]game.Move, 0, len(b.cells))
	for i, owner := range b.cells {
		if owner == "" {
			moves = append(moves, Point{X: i % b.size, Y: i / b.size})
		}
	}
	return moves
}

func (b *Board) Play(move game.Move) game.State {
	p, ok := move.(Point)
	if !ok {
		panic(fmt.Sprintf("sigmago: move %v is not a Point", move))
	}
	i := b.index(p)
	if b.cells[i] != "" {
		panic(fmt.Sprintf("sigmago: cell %v is already occupied by %s", p, b.cells[i]))
	}

	next := b.copy()
	next.cells[i] = b.player
	next.player = opponent(b.player)
	return next
}

func (b *Board) IsTerminal() bool {
	for _, owner := range b.cells {
		if owner == "" {
			return false
		}
	}
	return true
}

// Result resolves a full board: the player holding more cells wins, an
// equal split is a draw.
func (b *Board) Result() game.Outcome {
	var black, white int
	for _, owner := range b.cells {
		switch owner {
		case Black:
			black++
		case White:
			white++
		}
	}

	switch {
	case black > white:
		return game.Outcome{Winner: Black}
	case white > black:
		return game.Outcome{Winner: White}
	default:
		return game.Outcome{}
	}
}

func (b *Board) index(p Point) int {
	if p.X < 0 || p.X >= b.size || p.Y < 0 || p.Y >= b.size {
		panic(fmt.Sprintf("sigmago: point %v is off the %dx%d board", p, b.size, b.size))
	}
	return p.Y*b.size + p.X
}

func (b *Board) copy() *Board {
	cells := make([]string, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		size:   b.size,
		cells:  cells,
		player: b.player,
	}
}

func opponent(player string) string {
	if player == Black {
		return White
	}
	return Black
}
