package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/tracecity/internal/domain"
	m "github.com/mouse-blink/tracecity/internal/model"
)

// layoutCmd represents the layout command.
var layoutCmd = newLayoutCmd()

func newLayoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout <trace>...",
		Short: "Print the buildings of one or more traces",
		Long: `Lay out every trace and print one table per trace: the slot, key,
kind and spiral position of each building and the nested view it opens.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Layout(cmd.Context(), domain.LayoutArgs{
				Paths:  parsePaths(args),
				Config: m.Path(configFlag),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(layoutCmd)
}
