package inventory

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ReadCSV decodes a comma-separated inventory with a header row. Columns are
// matched by header name; extra columns are ignored. A stream with no header
// or only a header yields an empty, non-nil slice.
func ReadCSV(r io.Reader) ([]Segment, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return []Segment{}, nil
	}
	if err != nil {
		return nil, csvError(0, err)
	}

	index, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	segments := []Segment{}
	for row := 1; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, csvError(row, err)
		}

		seg, err := decodeRecord(row, record, index)
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
	}
	return segments, nil
}

// columnIndex maps each required column to its position in the header.
func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(Columns))
	for i, name := range header {
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}
	for _, col := range Columns {
		if _, ok := index[col]; !ok {
			return nil, &ParseError{Column: col, Err: ErrMissingColumn}
		}
	}
	return index, nil
}

func decodeRecord(row int, record []string, index map[string]int) (Segment, error) {
	seg := Segment{Name: record[index[ColName]]}
	for _, col := range Columns[1:] {
		raw := record[index[col]]
		v, err := strconv.Atoi(raw)
		if err != nil {
			return Segment{}, &ParseError{
				Row:    row,
				Column: col,
				Err:    fmt.Errorf("%w %q", ErrInvalidInteger, raw),
			}
		}
		seg.set(col, v)
	}
	return seg, nil
}

// csvError classifies an encoding/csv failure. Syntax problems become
// ErrMalformedRow; anything else is a stream read failure.
func csvError(row int, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &ParseError{Row: row, Err: fmt.Errorf("%w: %v", ErrMalformedRow, pe.Err)}
	}
	return fmt.Errorf("reading inventory: %w", err)
}
