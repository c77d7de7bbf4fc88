// Package device lists simulator destinations via simctl so build-task
// construction has something to target. Listing only; nothing here boots,
// installs, or launches.
package device

import (
	"context"
	"fmt"
	"strings"

	"github.com/savbell/xcproj/internal/process"
	"github.com/tidwall/gjson"
)

type Manager struct {
	runner *process.Runner
}

func NewManager() *Manager {
	return &Manager{
		runner: process.NewRunner(),
	}
}

// List returns available simulators, optionally filtered by platform and
// booted state.
func (m *Manager) List(ctx context.Context, platform Platform, onlyBooted bool) ([]*Device, error) {
	output, err := m.runner.RunSilent(ctx, "xcrun", []string{"simctl", "list", "devices", "-j"})
	if err != nil {
		return nil, fmt.Errorf("simctl list: %w", err)
	}

	var devices []*Device

	gjson.ParseBytes(output).Get("devices").ForEach(func(runtime, devicesArray gjson.Result) bool {
		plat, version := parseRuntime(runtime.String())
		if platform != "" && plat != platform {
			return true
		}

		devicesArray.ForEach(func(_, dev gjson.Result) bool {
			if !dev.Get("isAvailable").Bool() {
				return true
			}

			state := DeviceState(dev.Get("state").String())
			if onlyBooted && state != StateBooted {
				return true
			}

			devices = append(devices, &Device{
				UDID:        dev.Get("udid").String(),
				Name:        dev.Get("name").String(),
				Platform:    plat,
				OSVersion:   version,
				State:       state,
				IsAvailable: true,
			})
			return true
		})
		return true
	})

	return devices, nil
}

type RuntimeInfo struct {
	Identifier  string
	Name        string
	Version     string
	Platform    Platform
	IsAvailable bool
}

func (m *Manager) ListRuntimes(ctx context.Context) ([]RuntimeInfo, error) {
	output, err := m.runner.RunSilent(ctx, "xcrun", []string{"simctl", "list", "runtimes", "-j"})
	if err != nil {
		return nil, err
	}

	var runtimes []RuntimeInfo
	gjson.ParseBytes(output).Get("runtimes").ForEach(func(_, rt gjson.Result) bool {
		id := rt.Get("identifier").String()
		plat, version := parseRuntime(id)
		runtimes = append(runtimes, RuntimeInfo{
			Identifier:  id,
			Name:        rt.Get("name").String(),
			Version:     version,
			Platform:    plat,
			IsAvailable: rt.Get("isAvailable").Bool(),
		})
		return true
	})
	return runtimes, nil
}

func parseRuntime(runtime string) (Platform, string) {
	runtime = strings.ToLower(runtime)

	var platform Platform
	switch {
	case strings.Contains(runtime, "ios"):
		platform = PlatformIOS
	case strings.Contains(runtime, "macos"):
		platform = PlatformMacOS
	case strings.Contains(runtime, "watchos"):
		platform = PlatformWatchOS
	case strings.Contains(runtime, "tvos"):
		platform = PlatformTVOS
	case strings.Contains(runtime, "xros"), strings.Contains(runtime, "visionos"):
		platform = PlatformVisionOS
	default:
		platform = Platform("unknown")
	}

	version := ""
	parts := strings.Split(runtime, "-")
	if len(parts) >= 2 {
		for i := len(parts) - 1; i >= 0; i-- {
			if parts[i][0] >= '0' && parts[i][0] <= '9' {
				if version == "" {
					version = parts[i]
				} else {
					version = parts[i] + "." + version
				}
			} else {
				break
			}
		}
	}

	return platform, version
}
