package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/tracecity/internal/model"
)

// SimpleUI implements UI with plain tables on the command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayLayout prints one building table per report.
func (s *SimpleUI) DisplayLayout(reports []m.CityReport) error {
	for _, report := range reports {
		var tableBuffer bytes.Buffer

		table := tablewriter.NewWriter(&tableBuffer)
		table.SetHeader([]string{"Slot", "Key", "Kind", "Label", "X", "Y", "Z", "Steps", "View"})
		table.SetBorder(false)
		table.SetCenterSeparator("")
		table.SetColumnAlignment([]int{
			tablewriter.ALIGN_RIGHT,
			tablewriter.ALIGN_LEFT,
			tablewriter.ALIGN_LEFT,
			tablewriter.ALIGN_LEFT,
			tablewriter.ALIGN_RIGHT,
			tablewriter.ALIGN_RIGHT,
			tablewriter.ALIGN_RIGHT,
			tablewriter.ALIGN_RIGHT,
			tablewriter.ALIGN_CENTER,
		})

		for _, b := range report.Buildings {
			table.Append([]string{
				strconv.Itoa(b.Slot),
				b.Key,
				string(b.Group),
				b.Label,
				formatCoord(b.Position.X),
				formatCoord(b.Position.Y),
				formatCoord(b.Position.Z),
				strconv.Itoa(len(b.StepIndices)),
				viewName(b.View),
			})
		}

		table.SetFooter([]string{
			"", fmt.Sprintf("Buildings %d", len(report.Buildings)), "", "", "", "", "",
			fmt.Sprintf("Events %d", report.Events), "",
		})

		table.Render()
		s.printf("\n%s\n%s", report.Source, tableBuffer.String())
	}

	return nil
}

// DisplayMemory prints one address table per report.
func (s *SimpleUI) DisplayMemory(reports []m.CityReport, convergentOnly bool) error {
	for _, report := range reports {
		nodes := report.Addresses
		if convergentOnly {
			nodes = report.Convergences()
		}

		var tableBuffer bytes.Buffer

		table := tablewriter.NewWriter(&tableBuffer)
		table.SetHeader([]string{"Address", "X", "Z", "Variables", "Convergent", "Color"})
		table.SetBorder(false)
		table.SetCenterSeparator("")
		table.SetColumnAlignment([]int{
			tablewriter.ALIGN_LEFT,
			tablewriter.ALIGN_RIGHT,
			tablewriter.ALIGN_RIGHT,
			tablewriter.ALIGN_CENTER,
			tablewriter.ALIGN_CENTER,
			tablewriter.ALIGN_LEFT,
		})

		for _, n := range nodes {
			convergent := ""
			if n.Convergent() {
				convergent = "yes"
			}

			table.Append([]string{
				n.Address,
				formatCoord(n.Position.X),
				formatCoord(n.Position.Z),
				strconv.Itoa(n.Count),
				convergent,
				n.Color.Hex(),
			})
		}

		table.SetFooter([]string{
			fmt.Sprintf("Addresses %d", len(nodes)), "", "",
			fmt.Sprintf("Fountains %d", report.Fountains),
			fmt.Sprintf("Convergences %d", len(report.Convergences())), "",
		})

		table.Render()
		s.printf("\n%s\n%s", report.Source, tableBuffer.String())
	}

	return nil
}

// DisplayExport prints where a scene was written.
func (s *SimpleUI) DisplayExport(summary m.ExportSummary) error {
	s.printf("scene %s: %d nodes from %s written to %s\n", summary.ID, summary.Nodes, summary.Source, summary.Output)

	if summary.OpenView != "" {
		s.printf("open view: %s (%s)\n", summary.OpenView, summary.ViewKind)
	}

	return nil
}

// Explore prints the top-level addressables once. Plain output cannot
// take input, so nothing is debounced.
func (s *SimpleUI) Explore(_ context.Context, open SessionFactory, _ <-chan struct{}) error {
	session, err := open(nil)
	if err != nil {
		return err
	}
	defer session.Close()

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Slot", "Key", "Type", "Label", "Line", "View"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	items := session.Addressables()
	for _, a := range items {
		table.Append([]string{
			strconv.Itoa(a.Slot),
			a.Key,
			string(a.Type),
			a.Label,
			formatLine(a.Line),
			viewName(a.View),
		})
	}

	table.Render()
	s.printf("\n%s\n%s", session.Title(), tableBuffer.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func formatCoord(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', 2, 32)
}

func formatLine(line int) string {
	if line <= 0 {
		return "-"
	}

	return strconv.Itoa(line)
}

func viewName(kind m.ViewKind) string {
	if kind == m.ViewNone {
		return "-"
	}

	return string(kind)
}
