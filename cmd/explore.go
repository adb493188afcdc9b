package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/tracecity/internal/domain"
	m "github.com/mouse-blink/tracecity/internal/model"
)

var exploreWatchFlag bool

// exploreCmd represents the explore command.
var exploreCmd = newExploreCmd()

func newExploreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explore <trace>",
		Short: "Walk a trace city interactively",
		Long: `Open an interactive explorer on a trace. Arrows move through the active
context, enter inspects the selection and a second enter within the
double-click window opens its nested view; esc closes it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Explore(cmd.Context(), domain.ExploreArgs{
				Path:   m.Path(args[0]),
				Config: m.Path(configFlag),
				Watch:  exploreWatchFlag,
			})
		},
	}
	cmd.Flags().BoolVarP(&exploreWatchFlag, "watch", "w", false, "reload when the trace file changes")

	return cmd
}

func init() {
	rootCmd.AddCommand(exploreCmd)
}
