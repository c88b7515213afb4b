package timeline

import (
	"fmt"
	"time"
)

// MonthPoint is a calendar month of a specific year
type MonthPoint struct {
	Month int `json:"month"` // 1-12
	Year  int `json:"year"`
}

// NewMonthPoint builds a MonthPoint, normalizing months outside 1-12 into the adjacent years
func NewMonthPoint(year, month int) MonthPoint {
	return MonthPoint{Year: year, Month: 1}.AddMonths(month - 1)
}

// MonthOf returns the month containing t in t's location
func MonthOf(t time.Time) MonthPoint {
	return NewMonthPoint(t.Year(), int(t.Month()))
}

// AddMonths moves the point n months forward (negative n moves backward)
func (m MonthPoint) AddMonths(n int) MonthPoint {
	total := m.index() + n
	year := total / 12
	month := total % 12
	if month < 0 {
		month += 12
		year--
	}
	return MonthPoint{Month: month + 1, Year: year}
}

// Compare returns -1, 0 or +1 depending on calendar order
func (m MonthPoint) Compare(other MonthPoint) int {
	a, b := m.index(), other.index()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Before reports whether m comes strictly before other
func (m MonthPoint) Before(other MonthPoint) bool {
	return m.Compare(other) < 0
}

// After reports whether m comes strictly after other
func (m MonthPoint) After(other MonthPoint) bool {
	return m.Compare(other) > 0
}

// IsJanuary reports whether the point starts a year
func (m MonthPoint) IsJanuary() bool {
	return m.Month == 1
}

// String formats the point as YYYY-MM
func (m MonthPoint) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, m.Month)
}

// months since year 0
func (m MonthPoint) index() int {
	return m.Year*12 + m.Month - 1
}
