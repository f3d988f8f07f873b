// Package manifest holds the standard unit sizes for each construction
// material and the greedy partitioner that turns a remaining amount into a
// count of standard units.
package manifest

// sizeCount is the number of standard unit sizes per material.
const sizeCount = 7

// Material identifies a partitioned construction material.
type Material int

const (
	// Metal is partitioned into units of 1000 down to 50.
	Metal Material = iota
	// Ceramic is partitioned into units of 800 down to 40.
	Ceramic
)

var (
	metalSizes   = [sizeCount]int{1000, 800, 600, 400, 200, 100, 50}
	ceramicSizes = [sizeCount]int{800, 640, 480, 320, 160, 80, 40}
)

// Sizes returns the material's unit sizes in descending order.
func (m Material) Sizes() [sizeCount]int {
	if m == Ceramic {
		return ceramicSizes
	}
	return metalSizes
}

// Smallest returns the smallest standard unit size, which absorbs scrap.
func (m Material) Smallest() int {
	s := m.Sizes()
	return s[sizeCount-1]
}

// Label is the plural noun used for the material in reports.
func (m Material) Label() string {
	if m == Ceramic {
		return "Ceramics"
	}
	return "Metals"
}

// String returns the lower-case material name.
func (m Material) String() string {
	if m == Ceramic {
		return "ceramic"
	}
	return "metal"
}

// Line is one manifest entry: Count units of Size.
type Line struct {
	Size  int
	Count int
}

// Total returns the material amount covered by the line.
func (l Line) Total() int {
	return l.Size * l.Count
}

// Manifest accumulates unit counts for one material. Counts are indexed by
// position in the material's size table, so iteration is always largest
// size first.
type Manifest struct {
	material Material
	counts   [sizeCount]int
}

// New returns an empty manifest for the material.
func New(m Material) *Manifest {
	return &Manifest{material: m}
}

// Material returns the material the manifest counts.
func (m *Manifest) Material() Material {
	return m.material
}

// Partition greedily decomposes remaining into standard units, largest size
// first, and adds the counts to the manifest. A positive leftover smaller
// than the smallest size is rounded up to one extra smallest unit. A
// remaining amount of zero or less adds nothing.
func (m *Manifest) Partition(remaining int) {
	if remaining <= 0 {
		return
	}
	sizes := m.material.Sizes()
	for i, size := range sizes {
		n := remaining / size
		m.counts[i] += n
		remaining -= n * size
	}
	if remaining > 0 {
		m.counts[sizeCount-1]++
	}
}

// Merge adds every count of other into m. Manifests of different materials
// are not merged.
func (m *Manifest) Merge(other *Manifest) {
	if other == nil || other.material != m.material {
		return
	}
	for i, c := range other.counts {
		m.counts[i] += c
	}
}

// Count returns the number of units of the given size, or zero if size is
// not one of the material's standard sizes.
func (m *Manifest) Count(size int) int {
	for i, s := range m.material.Sizes() {
		if s == size {
			return m.counts[i]
		}
	}
	return 0
}

// Lines returns the non-zero entries in descending size order.
func (m *Manifest) Lines() []Line {
	sizes := m.material.Sizes()
	var lines []Line
	for i, c := range m.counts {
		if c == 0 {
			continue
		}
		lines = append(lines, Line{Size: sizes[i], Count: c})
	}
	return lines
}

// Total returns the material amount covered by all units in the manifest.
func (m *Manifest) Total() int {
	var total int
	for _, l := range m.Lines() {
		total += l.Total()
	}
	return total
}

// Units returns the number of physical units in the manifest.
func (m *Manifest) Units() int {
	var n int
	for _, c := range m.counts {
		n += c
	}
	return n
}
