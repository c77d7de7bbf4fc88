package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/savbell/xcproj/internal/project"
	"github.com/savbell/xcproj/internal/ui"
	"github.com/savbell/xcproj/internal/watcher"
	"github.com/savbell/xcproj/internal/xcworkspace"
	"github.com/spf13/cobra"
)

// openWorkspace resolves the workspace argument, falling back to discovery
// in the current directory.
func openWorkspace(args []string) (*xcworkspace.Workspace, error) {
	path := ""
	if len(args) > 0 {
		path = args[0]
	} else {
		found, err := xcworkspace.Find(".")
		if err != nil {
			return nil, err
		}
		path = found
	}
	return xcworkspace.Open(path, slog.Default()), nil
}

func projectsCmd() *cobra.Command {
	var (
		jsonOut bool
		watch   bool
	)

	cmd := &cobra.Command{
		Use:   "projects [workspace]",
		Short: "List the projects a workspace references",
		Long:  `Resolve the workspace document into its flat, deduplicated project list.`,
		Example: `  xcproj projects
  xcproj projects MyApp.xcworkspace
  xcproj projects --json
  xcproj projects --watch`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(args)
			if err != nil {
				return err
			}

			if err := renderProjects(ws, jsonOut); err != nil {
				return err
			}
			if !watch {
				return nil
			}

			ctx := cmd.Context()
			w, err := watcher.New(500 * time.Millisecond)
			if err != nil {
				return fmt.Errorf("watch: %w", err)
			}
			defer w.Close()

			if err := w.AddRecursive(ws.Root()); err != nil {
				return fmt.Errorf("watch %s: %w", ws.Root(), err)
			}

			renderer := ui.NewRenderer()
			renderer.Dim("Watching for workspace changes...")

			events := w.Watch(ctx)
			for {
				select {
				case <-ctx.Done():
					return nil
				case ev, ok := <-events:
					if !ok {
						return nil
					}
					renderer.Dim("Changed: %s", ev.Path)
					ws.Invalidate()
					if err := renderProjects(ws, jsonOut); err != nil {
						renderer.Error("%v", err)
					}
				}
			}
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-resolve when workspace metadata changes")

	return cmd
}

type projectJSON struct {
	Name           string   `json:"name"`
	Path           string   `json:"path"`
	Configurations []string `json:"configurations,omitempty"`
	Schemes        []string `json:"schemes"`
}

func renderProjects(ws *xcworkspace.Workspace, jsonOut bool) error {
	projects, err := ws.Projects()
	if err != nil {
		return err
	}

	summaries := summarize(projects)

	if jsonOut {
		out := make([]projectJSON, len(summaries))
		for i, s := range summaries {
			out[i] = projectJSON{Name: s.Name, Path: s.Path, Configurations: s.Configurations, Schemes: s.Schemes}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	renderer := ui.NewRenderer()
	renderer.Success("Workspace: %s", ws.Name())
	renderer.RenderProjectList(summaries)
	return nil
}

// summarize forces each project's lazy fields. A project whose object graph
// cannot be parsed stays in the list without configurations; the failure is
// logged, not surfaced.
func summarize(projects []*project.Project) []ui.ProjectSummary {
	summaries := make([]ui.ProjectSummary, 0, len(projects))
	for _, p := range projects {
		s := ui.ProjectSummary{Name: p.Name(), Path: p.Path}

		configs, err := p.Configurations()
		if err != nil {
			slog.Warn("cannot read project configurations", "project", p.Path, "error", err)
		} else {
			s.Configurations = configs
		}

		for _, scheme := range p.Schemes() {
			s.Schemes = append(s.Schemes, scheme.Name)
		}

		summaries = append(summaries, s)
	}
	return summaries
}
