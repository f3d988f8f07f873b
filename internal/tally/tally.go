// Package tally folds road segments into the totals a construction report
// needs: the segment names, the crystal still required and a unit manifest
// for each partitioned material.
package tally

import (
	"github.com/papapumpkin/roadworks/internal/inventory"
	"github.com/papapumpkin/roadworks/internal/manifest"
)

// Tally is the accumulated consumption over a sequence of segments.
type Tally struct {
	Segments []string
	Crystal  int
	Metal    *manifest.Manifest
	Ceramic  *manifest.Manifest
}

// New returns an empty tally.
func New() *Tally {
	return &Tally{
		Segments: []string{},
		Metal:    manifest.New(manifest.Metal),
		Ceramic:  manifest.New(manifest.Ceramic),
	}
}

// Add folds one segment into the tally. Crystal is summed without clamping;
// metal and ceramic remainders are partitioned into their manifests.
func (t *Tally) Add(seg inventory.Segment) {
	t.Segments = append(t.Segments, seg.Name)
	t.Crystal += seg.CrystalRemaining()
	t.Metal.Partition(seg.MetalRemaining())
	t.Ceramic.Partition(seg.CeramicRemaining())
}

// Fold accumulates segments left to right into a new tally.
func Fold(segments []inventory.Segment) *Tally {
	t := New()
	for _, seg := range segments {
		t.Add(seg)
	}
	return t
}
