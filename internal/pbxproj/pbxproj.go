// Package pbxproj extracts build configuration names from a project's
// project.pbxproj object graph. A schema-aware plist reader is tried first;
// when it fails on malformed or future-format files, a tolerant scanner
// walks the same text by brute force. Both strategies satisfy the same
// ConfigurationReader contract so callers never know which one ran.
package pbxproj

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// FileName is the object-graph file inside every project root.
const FileName = "project.pbxproj"

// buildConfigType is the type discriminator of a build configuration record.
const buildConfigType = "XCBuildConfiguration"

// ErrNotPBXProject reports input with no recognizable object records at all.
var ErrNotPBXProject = errors.New("not a pbxproj object graph")

// ConfigurationReader is the common contract over the parsing strategies.
type ConfigurationReader interface {
	// Configurations returns build configuration names, deduplicated, in
	// first-seen order.
	Configurations() []string
}

// Parse loads a project's object graph and returns a reader for it, trying
// the structured strategy first and falling back to the tolerant one. Only
// when both fail does it return an error, which is fatal to this project
// alone.
func Parse(projectPath string, logger *slog.Logger) (ConfigurationReader, error) {
	if logger == nil {
		logger = slog.Default()
	}

	data, err := os.ReadFile(filepath.Join(projectPath, FileName))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", FileName, err)
	}

	reader, structErr := parseStructured(data)
	if structErr == nil {
		return reader, nil
	}
	logger.Debug("structured pbxproj parse failed, using tolerant parser",
		"project", projectPath, "error", structErr)

	reader, tolErr := parseTolerant(data)
	if tolErr != nil {
		return nil, fmt.Errorf("parsing %s: structured: %v; tolerant: %w", FileName, structErr, tolErr)
	}
	return reader, nil
}

// configList is the shared reader over an already-extracted name sequence.
type configList struct {
	names []string
}

func (l *configList) Configurations() []string {
	return l.names
}

// dedupe filters names to ordered-unique, dropping empties.
func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
