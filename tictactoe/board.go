// Package tictactoe is a 3x3 board game wired to the search contracts.
// It is small enough to search exhaustively, which makes it the reference
// collaborator for the engine's end-to-end tests and the bundled drivers.
package tictactoe

import (
	"strings"

	"github.com/Amelia10007/minimax-strategy/game"
)

// Size is the board edge length.
const Size = 3

// Cell is the content of one square.
type Cell int

const (
	Empty Cell = iota
	Cross      // First's mark
	Nought     // Second's mark
)

func (c Cell) String() string {
	switch c {
	case Cross:
		return "X"
	case Nought:
		return "O"
	default:
		return "."
	}
}

// Mark returns the cell content belonging to actor.
func Mark(actor game.Actor) Cell {
	if actor == game.First {
		return Cross
	}
	return Nought
}

// Board is a 3x3 grid. Board is a value type: placing a mark returns a
// fresh board and never mutates the receiver.
type Board [Size][Size]Cell

// At returns the content of square (x, y).
func (b Board) At(x, y int) Cell {
	return b[y][x]
}

func (b Board) place(x, y int, c Cell) Board {
	b[y][x] = c
	return b
}

// Outcome is the result of a finished game.
type Outcome int

const (
	FirstWin Outcome = iota
	SecondWin
	Draw
)

func (o Outcome) String() string {
	switch o {
	case FirstWin:
		return "First wins"
	case SecondWin:
		return "Second wins"
	default:
		return "draw"
	}
}

// Result reports the game result. ok == false while the game is still
// undecided.
func (b Board) Result() (Outcome, bool) {
	lines := [][3][2]int{
		// Rows and columns.
		{{0, 0}, {1, 0}, {2, 0}},
		{{0, 1}, {1, 1}, {2, 1}},
		{{0, 2}, {1, 2}, {2, 2}},
		{{0, 0}, {0, 1}, {0, 2}},
		{{1, 0}, {1, 1}, {1, 2}},
		{{2, 0}, {2, 1}, {2, 2}},
		// Diagonals.
		{{0, 0}, {1, 1}, {2, 2}},
		{{2, 0}, {1, 1}, {0, 2}},
	}
	for _, line := range lines {
		first := b.At(line[0][0], line[0][1])
		if first == Empty {
			continue
		}
		if b.At(line[1][0], line[1][1]) == first && b.At(line[2][0], line[2][1]) == first {
			if first == Cross {
				return FirstWin, true
			}
			return SecondWin, true
		}
	}
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if b.At(x, y) == Empty {
				return 0, false
			}
		}
	}
	return Draw, true
}

func (b Board) String() string {
	var sb strings.Builder
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			sb.WriteString(b.At(x, y).String())
			if x < Size-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
