package cli

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/savbell/xcproj/internal/ui"
	"github.com/spf13/cobra"
)

func configsCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "configs [workspace]",
		Short: "List build configurations per project",
		Long: `Parse each project's object graph and list its build configuration
names. Projects whose object graph cannot be read are skipped.`,
		Example: `  xcproj configs
  xcproj configs MyApp.xcworkspace --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(args)
			if err != nil {
				return err
			}

			projects, err := ws.Projects()
			if err != nil {
				return err
			}

			out := make(map[string][]string)
			order := make([]string, 0, len(projects))
			for _, p := range projects {
				configs, err := p.Configurations()
				if err != nil {
					slog.Warn("cannot read project configurations", "project", p.Path, "error", err)
					continue
				}
				out[p.Name()] = configs
				order = append(order, p.Name())
			}

			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			renderer := ui.NewRenderer()
			if len(order) == 0 {
				renderer.Info("No configurations found")
				return nil
			}
			for _, name := range order {
				renderer.Success("%s", name)
				for _, c := range out[name] {
					renderer.Info("• %s", c)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")

	return cmd
}
