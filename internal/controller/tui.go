package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "github.com/mouse-blink/tracecity/internal/model"
)

// TUI implements UI using Bubble Tea for interactive exploration. Reports
// are printed the same way SimpleUI prints them.
type TUI struct {
	*SimpleUI
	output io.Writer
	input  io.Reader
}

// NewTUI creates a new TUI writing to the command's output.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{
		SimpleUI: NewSimpleUI(cmd),
		output:   cmd.OutOrStdout(),
		input:    cmd.InOrStdin(),
	}
}

// DisplayExport prints the export summary with a title.
func (t *TUI) DisplayExport(summary m.ExportSummary) error {
	_, _ = fmt.Fprintln(t.output, titleStyle.Render("Scene exported"))

	return t.SimpleUI.DisplayExport(summary)
}

// Explore runs the interactive explorer.
func (t *TUI) Explore(ctx context.Context, open SessionFactory, reloads <-chan struct{}) error {
	sched := newTeaScheduler()

	session, err := open(sched)
	if err != nil {
		return err
	}

	model := newExploreModel(session, open, sched, reloads)

	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model = model.resize(width, height)
		}
	}

	program := tea.NewProgram(model,
		tea.WithOutput(t.output),
		tea.WithInput(t.input),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	sched.bind(program.Send)

	final, err := program.Run()

	if em, ok := final.(exploreModel); ok && em.session != nil {
		em.session.Close()
	} else {
		session.Close()
	}

	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}

	return err
}
