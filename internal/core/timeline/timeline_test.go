package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestMonthPointAddMonths(t *testing.T) {
	tests := []struct {
		name  string
		start MonthPoint
		n     int
		want  MonthPoint
	}{
		{name: "same year", start: MonthPoint{Month: 3, Year: 2023}, n: 2, want: MonthPoint{Month: 5, Year: 2023}},
		{name: "forward across year", start: MonthPoint{Month: 11, Year: 2022}, n: 3, want: MonthPoint{Month: 2, Year: 2023}},
		{name: "backward across year", start: MonthPoint{Month: 2, Year: 2023}, n: -3, want: MonthPoint{Month: 11, Year: 2022}},
		{name: "exactly one year", start: MonthPoint{Month: 8, Year: 2022}, n: 12, want: MonthPoint{Month: 8, Year: 2023}},
		{name: "back to december", start: MonthPoint{Month: 1, Year: 2024}, n: -1, want: MonthPoint{Month: 12, Year: 2023}},
		{name: "zero", start: MonthPoint{Month: 6, Year: 2021}, n: 0, want: MonthPoint{Month: 6, Year: 2021}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.start.AddMonths(tt.n))
		})
	}
}

func TestNewMonthPointNormalizes(t *testing.T) {
	assert.Equal(t, MonthPoint{Month: 1, Year: 2024}, NewMonthPoint(2023, 13))
	assert.Equal(t, MonthPoint{Month: 12, Year: 2022}, NewMonthPoint(2023, 0))
	assert.Equal(t, MonthPoint{Month: 5, Year: 2023}, NewMonthPoint(2023, 5))
}

func TestMonthOf(t *testing.T) {
	assert.Equal(t, MonthPoint{Month: 12, Year: 2023}, MonthOf(time.Date(2023, 12, 31, 23, 0, 0, 0, time.UTC)))
	assert.Equal(t, MonthPoint{Month: 1, Year: 2024}, MonthOf(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestMonthPointCompare(t *testing.T) {
	a := MonthPoint{Month: 12, Year: 2022}
	b := MonthPoint{Month: 1, Year: 2023}

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.Equal(t, 0, a.Compare(MonthPoint{Month: 12, Year: 2022}))
	assert.Equal(t, "2022-12", a.String())
	assert.True(t, b.IsJanuary())
}

func TestMonthsBetweenSameDay(t *testing.T) {
	d := date(2023, time.May, 18)

	months, err := MonthsBetween(d, d, 0)
	require.NoError(t, err)
	assert.Equal(t, Timeline{{Month: 5, Year: 2023}}, months)
}

func TestMonthsBetweenPadding(t *testing.T) {
	tests := []struct {
		name    string
		from    time.Time
		to      time.Time
		padding int
		first   MonthPoint
		last    MonthPoint
		length  int
	}{
		{
			name: "no padding", from: date(2022, time.November, 18), to: date(2023, time.May, 18),
			first: MonthPoint{Month: 11, Year: 2022}, last: MonthPoint{Month: 5, Year: 2023}, length: 7,
		},
		{
			name: "padding three", from: date(2022, time.November, 18), to: date(2024, time.May, 18), padding: 3,
			first: MonthPoint{Month: 8, Year: 2022}, last: MonthPoint{Month: 8, Year: 2024}, length: 25,
		},
		{
			name: "padding crosses both years", from: date(2023, time.February, 1), to: date(2023, time.November, 30), padding: 2,
			first: MonthPoint{Month: 12, Year: 2022}, last: MonthPoint{Month: 1, Year: 2024}, length: 14,
		},
		{
			name: "day overflow ignored", from: date(2023, time.May, 31), to: date(2023, time.May, 31), padding: 3,
			first: MonthPoint{Month: 2, Year: 2023}, last: MonthPoint{Month: 8, Year: 2023}, length: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			months, err := MonthsBetween(tt.from, tt.to, tt.padding)
			require.NoError(t, err)

			first, ok := months.First()
			require.True(t, ok)
			last, ok := months.Last()
			require.True(t, ok)

			assert.Equal(t, tt.first, first)
			assert.Equal(t, tt.last, last)
			assert.Len(t, months, tt.length)
			assert.True(t, months.IsContiguous())
		})
	}
}

func TestMonthsBetweenLengthFormula(t *testing.T) {
	from := date(2019, time.March, 10)
	for offset := 0; offset < 40; offset += 7 {
		to := from.AddDate(0, offset, 0)
		for padding := 0; padding <= 4; padding++ {
			months, err := MonthsBetween(from, to, padding)
			require.NoError(t, err)

			want := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month()) + 1 + 2*padding
			assert.Len(t, months, want)
			for i := 1; i < len(months); i++ {
				assert.True(t, months[i-1].Before(months[i]))
			}
		}
	}
}

func TestMonthsBetweenInverted(t *testing.T) {
	_, err := MonthsBetween(date(2024, time.January, 1), date(2023, time.January, 1), 0)
	assert.ErrorIs(t, err, ErrInverted)

	// padding can absorb a small inversion
	months, err := MonthsBetween(date(2023, time.March, 1), date(2023, time.February, 1), 1)
	require.NoError(t, err)
	assert.Len(t, months, 2)
}

func TestTimelinePosition(t *testing.T) {
	months, err := Span(MonthPoint{Month: 11, Year: 2022}, MonthPoint{Month: 2, Year: 2023}, 0)
	require.NoError(t, err)

	assert.Equal(t, 0, months.Position(MonthPoint{Month: 11, Year: 2022}))
	assert.Equal(t, 2, months.Position(MonthPoint{Month: 1, Year: 2023}))
	assert.Equal(t, -1, months.IndexOf(MonthPoint{Month: 5, Year: 2030}))
	assert.Equal(t, len(months), months.Position(MonthPoint{Month: 5, Year: 2030}))
}

func TestTimelineEmpty(t *testing.T) {
	var empty Timeline
	_, ok := empty.First()
	assert.False(t, ok)
	_, ok = empty.Last()
	assert.False(t, ok)
	assert.True(t, empty.IsContiguous())
}

func TestTimelineConcat(t *testing.T) {
	a := Timeline{{Month: 1, Year: 2023}}
	b := Timeline{{Month: 1, Year: 2023}, {Month: 2, Year: 2023}}

	joined := a.Concat(b)
	assert.Len(t, joined, 3)
	assert.Len(t, a, 1)
}
