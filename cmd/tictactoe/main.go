// Interactive tic-tac-toe against the alpha-beta engine. The human plays
// First (X); the engine answers each placement immediately.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Amelia10007/minimax-strategy/game"
	"github.com/Amelia10007/minimax-strategy/meta"
	"github.com/Amelia10007/minimax-strategy/searcher"
	"github.com/Amelia10007/minimax-strategy/tictactoe"
)

type model struct {
	rule     tictactoe.Rule
	engine   game.Strategy[tictactoe.Board, tictactoe.Placement]
	depth    int
	board    tictactoe.Board
	cursorX  int
	cursorY  int
	status   string
	finished bool
}

func initialModel(depth int) model {
	return model{
		engine: searcher.NewAlphaBeta[tictactoe.Board, tictactoe.Placement, tictactoe.Verdict](
			tictactoe.Rule{}, tictactoe.Evaluator{}, depth),
		depth:   depth,
		cursorX: 1,
		cursorY: 1,
		status:  "your move",
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r":
		return initialModel(m.depth), nil
	case "up", "k":
		if m.cursorY > 0 {
			m.cursorY--
		}
	case "down", "j":
		if m.cursorY < tictactoe.Size-1 {
			m.cursorY++
		}
	case "left", "h":
		if m.cursorX > 0 {
			m.cursorX--
		}
	case "right", "l":
		if m.cursorX < tictactoe.Size-1 {
			m.cursorX++
		}
	case "enter", " ":
		m = m.play()
	}
	return m, nil
}

func (m model) play() model {
	if m.finished || m.board.At(m.cursorX, m.cursorY) != tictactoe.Empty {
		return m
	}

	m.board = m.rule.Apply(m.board, tictactoe.Placement{X: m.cursorX, Y: m.cursorY, By: game.First})
	if m.settle() {
		return m
	}

	reply, ok, err := m.engine.SelectAction(context.Background(), m.board, game.Second)
	if err != nil {
		m.status = fmt.Sprintf("engine error: %v", err)
		m.finished = true
		return m
	}
	if !ok {
		m.status = "engine has no move"
		m.finished = true
		return m
	}
	m.board = m.rule.Apply(m.board, reply)
	if m.settle() {
		return m
	}
	m.status = fmt.Sprintf("engine played (%d, %d), your move", reply.X, reply.Y)
	return m
}

// settle updates the status when the game has ended.
func (m *model) settle() bool {
	outcome, over := m.board.Result()
	if !over {
		return false
	}
	m.status = fmt.Sprintf("game over: %v (r to restart)", outcome)
	m.finished = true
	return true
}

func (m model) View() string {
	s := "tic-tac-toe: you are X\n\n"
	for y := 0; y < tictactoe.Size; y++ {
		for x := 0; x < tictactoe.Size; x++ {
			cell := m.board.At(x, y).String()
			if x == m.cursorX && y == m.cursorY && !m.finished {
				s += fmt.Sprintf("[%s]", cell)
			} else {
				s += fmt.Sprintf(" %s ", cell)
			}
		}
		s += "\n"
	}
	s += "\n" + m.status + "\n"
	s += "\narrows/hjkl move, enter places, r restarts, q quits\n"
	return s
}

func main() {
	depth := flag.Int("depth", meta.SEARCH_DEPTH, "Engine search depth")
	flag.Parse()

	if _, err := tea.NewProgram(initialModel(*depth)).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
