package cli

import (
	"encoding/json"
	"os"

	"github.com/savbell/xcproj/internal/ui"
	"github.com/spf13/cobra"
)

func schemesCmd() *cobra.Command {
	var (
		projectName string
		jsonOut     bool
	)

	cmd := &cobra.Command{
		Use:   "schemes [workspace]",
		Short: "List schemes per project",
		Long: `Discover each project's shared and per-user schemes. A project with no
scheme files gets a single default scheme named after the project.`,
		Example: `  xcproj schemes
  xcproj schemes --project MyApp
  xcproj schemes --json`,
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

			type schemeJSON struct {
				Name    string `json:"name"`
				Path    string `json:"path,omitempty"`
				Project string `json:"project"`
			}

			var out []schemeJSON
			for _, p := range projects {
				if projectName != "" && p.Name() != projectName {
					continue
				}
				for _, s := range p.Schemes() {
					out = append(out, schemeJSON{Name: s.Name, Path: s.Path, Project: s.Project.Name()})
				}
			}

			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			renderer := ui.NewRenderer()
			if len(out) == 0 {
				renderer.Info("No schemes found")
				return nil
			}
			current := ""
			for _, s := range out {
				if s.Project != current {
					current = s.Project
					renderer.Success("%s", current)
				}
				if s.Path != "" {
					renderer.Info("• %s", s.Name)
				} else {
					renderer.Dim("• %s (default)", s.Name)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectName, "project", "p", "", "Only show schemes for this project")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")

	return cmd
}
