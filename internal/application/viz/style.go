package viz

import (
	"fmt"

	"github.com/penwyp/go-release-viz/internal/presentation/formatter"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// LoadStyle reads a YAML style file over the default style. Keys missing from
// the file keep their default value. An empty path returns the default style.
func LoadStyle(fs afero.Fs, path string) (formatter.Style, error) {
	style := formatter.DefaultStyle()
	if path == "" {
		return style, nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return style, fmt.Errorf("failed to read style file: %w", err)
	}
	if err := yaml.Unmarshal(data, &style); err != nil {
		return formatter.DefaultStyle(), fmt.Errorf("failed to parse style file %s: %w", path, err)
	}
	if style.Font.Size <= 0 {
		return formatter.DefaultStyle(), fmt.Errorf("style file %s: font size must be positive", path)
	}
	return style, nil
}
