package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/tracecity/internal/domain"
	m "github.com/mouse-blink/tracecity/internal/model"
)

var sceneOutputFlag string
var sceneOpenFlag string
var sceneKindFlag string

// sceneCmd represents the scene command.
var sceneCmd = newSceneCmd()

func newSceneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scene <trace>",
		Short: "Export the scene of a trace as YAML",
		Long: `Build the scene of a trace and write every primitive and curve, with its
position and material, to a YAML document. With --open the nested view of
that group key is open in the export.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseViewKind(sceneKindFlag)
			if err != nil {
				return err
			}

			return workflow.Scene(cmd.Context(), domain.SceneArgs{
				Path:   m.Path(args[0]),
				Config: m.Path(configFlag),
				Output: m.Path(sceneOutputFlag),
				Open:   sceneOpenFlag,
				Kind:   kind,
			})
		},
	}
	cmd.Flags().StringVarP(&sceneOutputFlag, "output", "o", "scene.yaml", "scene file to write")
	cmd.Flags().StringVar(&sceneOpenFlag, "open", "", "group key whose nested view is open in the export")
	cmd.Flags().StringVar(&sceneKindFlag, "kind", "", "nested view kind for --open: galaxy, bubble or tree")

	return cmd
}

func parseViewKind(kind string) (m.ViewKind, error) {
	switch m.ViewKind(kind) {
	case m.ViewNone, m.ViewGalaxy, m.ViewBubble, m.ViewTree:
		return m.ViewKind(kind), nil
	}

	return m.ViewNone, fmt.Errorf("invalid view kind %q: want galaxy, bubble or tree", kind)
}

func init() {
	rootCmd.AddCommand(sceneCmd)
}
