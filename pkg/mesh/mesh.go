// Package mesh defines the in-memory mesh container shared by readers,
// writers, and tooling. A Mesh is a plain snapshot: points, cell
// connectivity grouped into family blocks, and named integer attributes
// attached per point or per cell.
package mesh

// RefAttr is the attribute key under which format readers store the
// integer reference label carried by each point or cell record.
const RefAttr = "ref"

// CellBlock groups the connectivity of one element family.
// Data holds one fixed-arity record per cell; node indices are 0-based.
type CellBlock struct {
	// Family is the element family name (e.g. "triangle", "tetra").
	Family string

	// Data is the node-index table, one row per cell.
	Data [][]int
}

// Mesh is a snapshot of a mesh: geometry, connectivity, and attributes.
// Readers build a fresh Mesh per parse; writers only read it.
type Mesh struct {
	// Points is the ordered point list. Every point has the same
	// coordinate arity, which defines the mesh dimension.
	Points [][]float64

	// PointData maps attribute names to one integer value per point.
	PointData map[string][]int

	// Cells holds one block per element family, in a deterministic
	// order that writers preserve.
	Cells []CellBlock

	// CellData maps family name to attribute name to one integer
	// value per cell of that family.
	CellData map[string]map[string][]int
}

// New returns an empty Mesh with initialized attribute maps.
func New() *Mesh {
	return &Mesh{
		PointData: make(map[string][]int),
		CellData:  make(map[string]map[string][]int),
	}
}

// Dimension returns the coordinate arity of the mesh's points,
// or 0 for a mesh with no points.
func (m *Mesh) Dimension() int {
	if m == nil || len(m.Points) == 0 {
		return 0
	}
	return len(m.Points[0])
}

// NumPoints returns the number of points in the mesh.
func (m *Mesh) NumPoints() int {
	if m == nil {
		return 0
	}
	return len(m.Points)
}

// NumCells returns the total number of cells across all family blocks.
func (m *Mesh) NumCells() int {
	if m == nil {
		return 0
	}
	var n int
	for _, block := range m.Cells {
		n += len(block.Data)
	}
	return n
}

// Block returns the cell block for the given family, or nil if the
// mesh has no such block.
func (m *Mesh) Block(family string) *CellBlock {
	if m == nil {
		return nil
	}
	for i := range m.Cells {
		if m.Cells[i].Family == family {
			return &m.Cells[i]
		}
	}
	return nil
}

// AddBlock appends cell records for a family. When a block for the
// family already exists the records are appended to it, so a file with
// repeated blocks of one family collapses into a single table.
func (m *Mesh) AddBlock(family string, data [][]int) {
	if block := m.Block(family); block != nil {
		block.Data = append(block.Data, data...)
		return
	}
	m.Cells = append(m.Cells, CellBlock{Family: family, Data: data})
}

// SetCellAttr stores an attribute sequence for one family, appending
// to any values already present for that attribute.
func (m *Mesh) SetCellAttr(family, name string, values []int) {
	if m.CellData == nil {
		m.CellData = make(map[string]map[string][]int)
	}
	attrs, ok := m.CellData[family]
	if !ok {
		attrs = make(map[string][]int)
		m.CellData[family] = attrs
	}
	attrs[name] = append(attrs[name], values...)
}

// Families returns the family names present in the mesh, in block order.
func (m *Mesh) Families() []string {
	if m == nil {
		return nil
	}
	names := make([]string, 0, len(m.Cells))
	for _, block := range m.Cells {
		names = append(names, block.Family)
	}
	return names
}
