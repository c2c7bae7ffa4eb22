package game

import "fmt"

// Actor identifies one of the two players in a turn-based adversarial game.
type Actor int

const (
	// First moves first.
	First Actor = iota
	// Second moves second.
	Second
)

// Opponent returns the other side. Opponent is an involution:
// a.Opponent().Opponent() == a for both actors.
func (a Actor) Opponent() Actor {
	switch a {
	case First:
		return Second
	case Second:
		return First
	default:
		panic(fmt.Sprintf("unknown actor %d", int(a)))
	}
}

func (a Actor) String() string {
	switch a {
	case First:
		return "First"
	case Second:
		return "Second"
	default:
		return fmt.Sprintf("Actor(%d)", int(a))
	}
}

// Actors returns both players in turn order.
func Actors() [2]Actor {
	return [2]Actor{First, Second}
}
