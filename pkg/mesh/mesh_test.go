package mesh_test

import (
	"reflect"
	"testing"

	"github.com/yaklabco/gomedit/pkg/mesh"
)

func TestMesh(t *testing.T) {
	t.Parallel()

	t.Run("dimension from points", func(t *testing.T) {
		t.Parallel()

		m := mesh.New()
		if m.Dimension() != 0 {
			t.Errorf("empty Dimension() = %d, want 0", m.Dimension())
		}

		m.Points = [][]float64{{1, 2, 3}}
		if m.Dimension() != 3 {
			t.Errorf("Dimension() = %d, want 3", m.Dimension())
		}
	})

	t.Run("add block merges repeated families", func(t *testing.T) {
		t.Parallel()

		m := mesh.New()
		m.AddBlock("triangle", [][]int{{0, 1, 2}})
		m.AddBlock("line", [][]int{{0, 1}})
		m.AddBlock("triangle", [][]int{{2, 3, 4}})

		if got := m.Families(); !reflect.DeepEqual(got, []string{"triangle", "line"}) {
			t.Errorf("Families() = %v, want [triangle line]", got)
		}

		block := m.Block("triangle")
		if block == nil || len(block.Data) != 2 {
			t.Fatalf("triangle block = %+v, want 2 records", block)
		}
		if m.NumCells() != 3 {
			t.Errorf("NumCells() = %d, want 3", m.NumCells())
		}
	})

	t.Run("block lookup misses", func(t *testing.T) {
		t.Parallel()

		m := mesh.New()
		if m.Block("tetra") != nil {
			t.Error("Block() on empty mesh should be nil")
		}
	})

	t.Run("cell attributes accumulate", func(t *testing.T) {
		t.Parallel()

		m := mesh.New()
		m.SetCellAttr("triangle", mesh.RefAttr, []int{1, 2})
		m.SetCellAttr("triangle", mesh.RefAttr, []int{3})

		got := m.CellData["triangle"][mesh.RefAttr]
		if !reflect.DeepEqual(got, []int{1, 2, 3}) {
			t.Errorf("attr = %v, want [1 2 3]", got)
		}
	})
}
