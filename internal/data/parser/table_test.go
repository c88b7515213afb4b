package parser

import (
	"errors"
	"testing"

	"github.com/penwyp/go-release-viz/internal/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const releaseTable = `
| Version | Status | Released   | Active ends | LTS ends   |
|:---     |:---    |:---        |:---         |:---        |
| ^15.0.0 | Active | 2022-11-18 | 2023-05-18  | 2024-05-18 |
| ^14.0.0 | LTS    | 2022-06-02 | 2022-11-18  | 2023-11-18 |
| ^13.0.0 | LTS    | 2021-11-04 | 2022-06-02  | 2023-05-04 |
`

func TestParseTable(t *testing.T) {
	releases, err := ParseTable(releaseTable)
	require.NoError(t, err)
	require.Len(t, releases, 3)

	assert.Equal(t, "^15.0.0", releases[0].Version)
	assert.Equal(t, "Active", releases[0].Status)
	assert.Equal(t, "2022-11-18", releases[0].Released)
	assert.Equal(t, "2023-05-18", releases[0].ActiveEnds)
	assert.Equal(t, "2024-05-18", releases[0].LTSEnds)
	assert.Equal(t, "^13.0.0", releases[2].Version)
}

func TestParseTableColumnOrder(t *testing.T) {
	raw := `<aio-release-viz>
| LTS ends | Version | Notes | released | ACTIVE ENDS | Status |
|---|---|---|---|---|---|
| 2024-05-18 | ^15.0.0 | big one | 2022-11-18 | 2023-05-18 | Active |
</aio-release-viz>`

	releases, err := ParseTable(raw)
	require.NoError(t, err)
	require.Len(t, releases, 1)

	assert.Equal(t, model.Release{
		Version:    "^15.0.0",
		Status:     "Active",
		Released:   "2022-11-18",
		ActiveEnds: "2023-05-18",
		LTSEnds:    "2024-05-18",
	}, releases[0])
}

func TestParseTableSeparatorNotInspected(t *testing.T) {
	raw := "\n| Version | Status | Released | Active ends | LTS ends |\nanything at all\n| ^15.0.0 | Active | 2022-11-18 | 2023-05-18 | 2024-05-18 |\n"

	releases, err := ParseTable(raw)
	require.NoError(t, err)
	assert.Len(t, releases, 1)
}

func TestParseTableKeepsEmptyInteriorCells(t *testing.T) {
	raw := "\n| Version | Status | Released | Active ends | LTS ends |\n|---|---|---|---|---|\n| ^17.0.0 | Future |  | 2030-05-18 | 2031-05-18 |\n"

	releases, err := ParseTable(raw)
	require.NoError(t, err)
	require.Len(t, releases, 1)
	assert.Equal(t, "", releases[0].Released)
	assert.Equal(t, "2030-05-18", releases[0].ActiveEnds)
}

func TestParseTableErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		line int
	}{
		{name: "too short", raw: "\n| Version |\n", line: 0},
		{name: "unknown header", raw: "\n| A | B |\n|---|---|\n| 1 | 2 |\n", line: 2},
		{name: "no body rows", raw: "\n| Version | Status |\n|---|---|\n\n", line: 0},
		{
			name: "short row",
			raw:  "\n| Version | Status | Released | Active ends | LTS ends |\n|---|---|---|---|---|\n| ^15.0.0 | Active | 2022-11-18 | 2023-05-18 | 2024-05-18 |\n| ^14.0.0 | LTS |\n",
			line: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			releases, err := ParseTable(tt.raw)
			require.Error(t, err)
			assert.Nil(t, releases)
			assert.ErrorIs(t, err, model.ErrParse)

			var parseErr *model.ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, tt.line, parseErr.Line)
		})
	}
}

func TestParseTableSkipsBlankRows(t *testing.T) {
	raw := "\n| Version | Status | Released | Active ends | LTS ends |\n|---|---|---|---|---|\n| ^15.0.0 | Active | 2022-11-18 | 2023-05-18 | 2024-05-18 |\n   \n| ^14.0.0 | LTS | 2022-06-02 | 2022-11-18 | 2023-11-18 |\n"

	releases, err := ParseTable(raw)
	require.NoError(t, err)
	assert.Len(t, releases, 2)
}

func TestParseTableCRLF(t *testing.T) {
	raw := "\r\n| Version | Status | Released | Active ends | LTS ends |\r\n|---|---|---|---|---|\r\n| ^15.0.0 | Active | 2022-11-18 | 2023-05-18 | 2024-05-18 |\r\n"

	releases, err := ParseTable(raw)
	require.NoError(t, err)
	require.Len(t, releases, 1)
	assert.Equal(t, "2024-05-18", releases[0].LTSEnds)
}

func TestSplitRow(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{name: "framed", line: "| a | b |", want: []string{"a", "b"}},
		{name: "unframed", line: "a | b", want: []string{"a", "b"}},
		{name: "padded", line: "   |  a  |b|   ", want: []string{"a", "b"}},
		{name: "empty interior", line: "| a |  | c |", want: []string{"a", "", "c"}},
		{name: "blank", line: "   ", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitRow(tt.line))
		})
	}
}

func TestFormatTableRoundTrip(t *testing.T) {
	original, err := ParseTable(releaseTable)
	require.NoError(t, err)

	again, err := ParseTable(FormatTable(original))
	require.NoError(t, err)
	assert.Equal(t, original, again)
}
