// Package inventory decodes a road-construction inventory into Segment
// records. Decoding is all-or-nothing: any bad row fails the whole read.
package inventory

import (
	"fmt"
	"io"
	"strings"
)

// Column names, in the order the inventory header declares them.
const (
	ColName           = "name"
	ColCrystalCurrent = "crystal_current"
	ColCrystalTotal   = "crystal_total"
	ColMetalCurrent   = "metal_current"
	ColMetalTotal     = "metal_total"
	ColCeramicCurrent = "ceramic_current"
	ColCeramicTotal   = "ceramic_total"
)

// Columns lists every required column in header order.
var Columns = []string{
	ColName,
	ColCrystalCurrent,
	ColCrystalTotal,
	ColMetalCurrent,
	ColMetalTotal,
	ColCeramicCurrent,
	ColCeramicTotal,
}

// Segment is one road segment row: current and target amounts per material.
type Segment struct {
	Name           string
	CrystalCurrent int
	CrystalTotal   int
	MetalCurrent   int
	MetalTotal     int
	CeramicCurrent int
	CeramicTotal   int
}

// CrystalRemaining returns the crystal still to be supplied. It is negative
// when the current amount already exceeds the target.
func (s Segment) CrystalRemaining() int { return s.CrystalTotal - s.CrystalCurrent }

// MetalRemaining returns the metal still to be supplied.
func (s Segment) MetalRemaining() int { return s.MetalTotal - s.MetalCurrent }

// CeramicRemaining returns the ceramic still to be supplied.
func (s Segment) CeramicRemaining() int { return s.CeramicTotal - s.CeramicCurrent }

// set assigns an integer column value to the matching field.
func (s *Segment) set(column string, v int) {
	switch column {
	case ColCrystalCurrent:
		s.CrystalCurrent = v
	case ColCrystalTotal:
		s.CrystalTotal = v
	case ColMetalCurrent:
		s.MetalCurrent = v
	case ColMetalTotal:
		s.MetalTotal = v
	case ColCeramicCurrent:
		s.CeramicCurrent = v
	case ColCeramicTotal:
		s.CeramicTotal = v
	}
}

// Format names an inventory encoding.
type Format string

const (
	// FormatCSV is comma-separated values with a header row.
	FormatCSV Format = "csv"
	// FormatTOML is a TOML document with an array of [[segment]] tables.
	FormatTOML Format = "toml"
)

// ParseFormat converts a case-insensitive format name into a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatCSV, FormatTOML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// Read decodes every segment from r using the given format.
func Read(r io.Reader, format Format) ([]Segment, error) {
	switch format {
	case FormatCSV:
		return ReadCSV(r)
	case FormatTOML:
		return ReadTOML(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(format))
	}
}
