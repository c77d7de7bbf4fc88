package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/savbell/xcproj/internal/device"
	"github.com/savbell/xcproj/internal/ui"
	"github.com/spf13/cobra"
)

func devicesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "devices",
		Short: "Show simulator destinations",
		Long:  `List the simulators and runtimes build tasks can target.`,
	}

	cmd.AddCommand(devicesListCmd())
	cmd.AddCommand(devicesRuntimesCmd())

	return cmd
}

func devicesListCmd() *cobra.Command {
	var (
		platform string
		booted   bool
		jsonOut  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available simulators",
		Example: `  xcproj devices list
  xcproj devices list --platform ios
  xcproj devices list --booted
  xcproj devices list --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			mgr := device.NewManager()

			devices, err := mgr.List(ctx, device.Platform(platform), booted)
			if err != nil {
				return fmt.Errorf("failed to list devices: %w", err)
			}

			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(devices)
			}

			displayDevices := make([]ui.DeviceInfo, len(devices))
			for i, d := range devices {
				displayDevices[i] = ui.DeviceInfo{
					Name:      d.Name,
					UDID:      d.UDID,
					State:     string(d.State),
					OSVersion: d.OSVersion,
					Platform:  string(d.Platform),
				}
			}

			renderer := ui.NewRenderer()
			renderer.RenderDeviceList(displayDevices)
			return nil
		},
	}

	cmd.Flags().StringVarP(&platform, "platform", "p", "", "Filter by platform (ios, macos, watchos, tvos, visionos)")
	cmd.Flags().BoolVar(&booted, "booted", false, "Show only booted devices")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")

	return cmd
}

func devicesRuntimesCmd() *cobra.Command {
	var platform string

	cmd := &cobra.Command{
		Use:   "runtimes",
		Short: "List available runtimes",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			mgr := device.NewManager()

			runtimes, err := mgr.ListRuntimes(ctx)
			if err != nil {
				return err
			}

			for _, r := range runtimes {
				if platform != "" && string(r.Platform) != platform {
					continue
				}
				status := ""
				if !r.IsAvailable {
					status = " (unavailable)"
				}
				fmt.Printf("%-20s %s%s\n", r.Name, r.Identifier, status)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&platform, "platform", "p", "", "Filter by platform (ios, watchos, tvos, visionos)")

	return cmd
}
