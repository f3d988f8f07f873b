package inventory

import (
	"fmt"
	"io"

	toml "github.com/pelletier/go-toml/v2"
)

// tomlInventory is the document shape: one [[segment]] table per road.
type tomlInventory struct {
	Segments []map[string]any `toml:"segment"`
}

// ReadTOML decodes an inventory written as an array of [[segment]] tables,
// each carrying the same keys as the CSV header.
func ReadTOML(r io.Reader) ([]Segment, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading inventory: %w", err)
	}

	var doc tomlInventory
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing toml inventory: %w", err)
	}

	segments := make([]Segment, 0, len(doc.Segments))
	for i, table := range doc.Segments {
		seg, err := decodeTable(i+1, table)
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
	}
	return segments, nil
}

func decodeTable(row int, table map[string]any) (Segment, error) {
	raw, ok := table[ColName]
	if !ok {
		return Segment{}, &ParseError{Row: row, Column: ColName, Err: ErrMissingColumn}
	}
	name, ok := raw.(string)
	if !ok {
		return Segment{}, &ParseError{
			Row:    row,
			Column: ColName,
			Err:    fmt.Errorf("%w: want string, got %T", ErrMalformedRow, raw),
		}
	}

	seg := Segment{Name: name}
	for _, col := range Columns[1:] {
		raw, ok := table[col]
		if !ok {
			return Segment{}, &ParseError{Row: row, Column: col, Err: ErrMissingColumn}
		}
		v, ok := raw.(int64)
		if !ok {
			return Segment{}, &ParseError{
				Row:    row,
				Column: col,
				Err:    fmt.Errorf("%w %v", ErrInvalidInteger, raw),
			}
		}
		seg.set(col, int(v))
	}
	return seg, nil
}
