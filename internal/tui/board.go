package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AnushkaSingh7722/study-planner/internal/engine"
)

func RunBoard(ctx context.Context, planner *engine.Planner, out io.Writer) error {
	m := newBoardModel(ctx, planner)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
