package formatter

import (
	"time"

	"github.com/penwyp/go-release-viz/internal/core/release"
)

// Style holds the colors and font used when drawing the chart
type Style struct {
	Colors StyleColors `yaml:"colors" json:"colors"`
	Font   StyleFont   `yaml:"font" json:"font"`
}

type StyleColors struct {
	Active      string `yaml:"active" json:"active"`
	LTS         string `yaml:"lts" json:"lts"`
	Unsupported string `yaml:"unsupported" json:"unsupported"`
	Future      string `yaml:"future" json:"future"`
	MonthLine   string `yaml:"month_line" json:"monthLine"`
	TodayLine   string `yaml:"today_line" json:"todayLine"`
	TodayText   string `yaml:"today_text" json:"todayText"`
	Text        string `yaml:"text" json:"text"`
	Background  string `yaml:"background" json:"background"`
}

type StyleFont struct {
	Family string `yaml:"family" json:"family"`
	Size   int    `yaml:"size" json:"size"`
}

// DefaultStyle returns the stock release chart palette
func DefaultStyle() Style {
	return Style{
		Colors: StyleColors{
			Active:      "#07ba60",
			LTS:         "#f3d354",
			Unsupported: "#ff3333",
			Future:      "#cc6ce5",
			MonthLine:   "#bbb9b9",
			TodayLine:   "black",
			TodayText:   "gray",
			Text:        "black",
		},
		Font: StyleFont{
			Family: "sans-serif",
			Size:   12,
		},
	}
}

// Row is one release as shown in tabular output
type Row struct {
	Version    string
	Status     string
	Released   string
	ActiveEnds string
	LTSEnds    string
	State      string
}

var rowHeaders = []string{"Version", "Status", "Released", "Active ends", "LTS ends", "State"}

func (r Row) values() []string {
	return []string{r.Version, r.Status, r.Released, r.ActiveEnds, r.LTSEnds, r.State}
}

// Rows flattens a collection into table rows in display order
func Rows(collection *release.Collection, now time.Time) []Row {
	rows := make([]Row, 0, collection.Len())
	for i := range collection.Releases {
		r := &collection.Releases[i]
		rows = append(rows, Row{
			Version:    r.Version,
			Status:     r.Status,
			Released:   r.Released,
			ActiveEnds: r.ActiveEnds,
			LTSEnds:    r.LTSEnds,
			State:      r.State(now).String(),
		})
	}
	return rows
}
