package viz

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, cfg *Config, files map[string]string) (*App, afero.Fs, *bytes.Buffer) {
	t.Helper()
	fs := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "UTC"
	}
	if cfg.Now.IsZero() {
		cfg.Now = fixedNow
	}

	var stdout bytes.Buffer
	app, err := NewApp(cfg, fs, &stdout)
	require.NoError(t, err)
	app.termSize = func() (int, int) { return 100, 30 }
	return app, fs, &stdout
}

func TestNewAppErrors(t *testing.T) {
	fs := afero.NewMemMapFs()

	tests := []struct {
		name    string
		config  *Config
		wantErr string
	}{
		{name: "invalid config", config: &Config{PaddingMonths: -2}, wantErr: "invalid config"},
		{name: "invalid timezone", config: &Config{Timezone: "Mars/Olympus"}, wantErr: "invalid timezone"},
		{name: "missing style", config: &Config{StyleFile: "/nope.yaml"}, wantErr: "failed to read style file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewApp(tt.config, fs, &bytes.Buffer{})
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestAppNowIsPinned(t *testing.T) {
	app, _, _ := newTestApp(t, &Config{PaddingMonths: 3}, nil)
	assert.True(t, app.Now().Equal(fixedNow))
}

func TestAppRenderSVGToStdout(t *testing.T) {
	app, _, stdout := newTestApp(t, &Config{Input: "/releases.txt", PaddingMonths: 3}, map[string]string{
		"/releases.txt": releaseTable,
	})

	require.NoError(t, app.Render())

	svg := stdout.String()
	assert.True(t, strings.HasPrefix(svg, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, svg, `width="460" height="350"`)
	assert.Contains(t, svg, "^15.0.0")
	assert.Contains(t, svg, "^14.0.0")
	assert.Contains(t, svg, "2023-2-1")
	assert.True(t, strings.HasSuffix(svg, "</svg>\n"))
}

func TestAppRenderSVGToFile(t *testing.T) {
	app, fs, stdout := newTestApp(t, &Config{
		Input:         "/releases.md",
		Output:        "/out/chart.svg",
		PaddingMonths: 3,
		Width:         800,
		Height:        500,
		StyleFile:     "/style.yaml",
	}, map[string]string{
		"/releases.md": releaseMarkdown,
		"/style.yaml":  "colors:\n  active: \"#123456\"\n",
	})

	require.NoError(t, app.Render())
	assert.Empty(t, stdout.String())

	data, err := afero.ReadFile(fs, "/out/chart.svg")
	require.NoError(t, err)
	assert.Contains(t, string(data), `width="800" height="500"`)
	assert.Contains(t, string(data), "#123456")
}

func TestAppRenderJSON(t *testing.T) {
	app, _, stdout := newTestApp(t, &Config{Input: "/releases.txt", Format: FormatJSON, PaddingMonths: 3}, map[string]string{
		"/releases.txt": releaseTable,
	})

	require.NoError(t, app.Render())

	var doc map[string]interface{}
	require.NoError(t, sonic.Unmarshal(stdout.Bytes(), &doc))
	assert.Equal(t, 460.0, doc["width"])
	assert.Equal(t, 330.0, doc["computedWidth"])

	releases, ok := doc["releases"].([]interface{})
	require.True(t, ok)
	assert.Len(t, releases, 2)
}

func TestAppRenderTableAndCSV(t *testing.T) {
	tests := []struct {
		name   string
		format string
		want   []string
	}{
		{
			name:   "table",
			format: FormatTable,
			want:   []string{"Version", "Active ends", "^15.0.0", "active", "^14.0.0", "lts", "┌", "┘"},
		},
		{
			name:   "csv",
			format: FormatCSV,
			want: []string{
				"Version,Status,Released,Active ends,LTS ends,State",
				"^15.0.0,Active,2022-11-18,2023-05-18,2024-05-18,active",
				"^14.0.0,LTS,2022-06-02,2022-11-18,2023-11-18,lts",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, stdout := newTestApp(t, &Config{Input: "/releases.txt", Format: tt.format, PaddingMonths: 3}, map[string]string{
				"/releases.txt": releaseTable,
			})

			require.NoError(t, app.Render())
			for _, want := range tt.want {
				assert.Contains(t, stdout.String(), want)
			}
		})
	}
}

func TestAppRenderErrors(t *testing.T) {
	app, fs, stdout := newTestApp(t, &Config{Input: "/releases.txt", Output: "/chart.svg", PaddingMonths: 3}, map[string]string{
		"/releases.txt": brokenTable,
	})

	err := app.Render()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "^15.0.0")
	assert.Empty(t, stdout.String())

	exists, err := afero.Exists(fs, "/chart.svg")
	require.NoError(t, err)
	assert.False(t, exists)
}
