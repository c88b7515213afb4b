package formatter

import (
	"encoding/csv"
	"io"
)

type CSVFormatter struct{}

func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

func (f *CSVFormatter) Format(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(rowHeaders); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row.values()); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
