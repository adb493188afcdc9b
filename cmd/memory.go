package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/tracecity/internal/domain"
	m "github.com/mouse-blink/tracecity/internal/model"
)

var memoryConvergentFlag bool

// memoryCmd represents the memory command.
var memoryCmd = newMemoryCmd()

func newMemoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "memory <trace>...",
		Short: "Print the address layer of one or more traces",
		Long: `Print the address nodes under each city: where each node sits on the
memory plane, how many variables feed it, and which addresses converge.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Memory(cmd.Context(), domain.MemoryArgs{
				LayoutArgs: domain.LayoutArgs{
					Paths:  parsePaths(args),
					Config: m.Path(configFlag),
				},
				ConvergentOnly: memoryConvergentFlag,
			})
		},
	}
	cmd.Flags().BoolVar(&memoryConvergentFlag, "convergent", false, "only show addresses shared by two or more variables")

	return cmd
}

func init() {
	rootCmd.AddCommand(memoryCmd)
}
