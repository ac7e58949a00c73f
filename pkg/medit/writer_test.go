package medit_test

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/yaklabco/gomedit/pkg/medit"
	"github.com/yaklabco/gomedit/pkg/mesh"
)

func triangleMesh() *mesh.Mesh {
	m := mesh.New()
	m.Points = [][]float64{{0, 0}, {1, 0}, {0, 1}}
	m.PointData[mesh.RefAttr] = []int{1, 2, 3}
	m.AddBlock("triangle", [][]int{{0, 1, 2}})
	m.SetCellAttr("triangle", mesh.RefAttr, []int{5})
	return m
}

func TestWrite(t *testing.T) {
	t.Parallel()

	t.Run("golden output", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if err := medit.Write(&buf, triangleMesh()); err != nil {
			t.Fatalf("Write() error = %v", err)
		}

		want := `MeshVersionFormatted 1
# Created by gomedit

Dimension 2

Vertices
3
0 0 1
1 0 2
0 1 3

Triangles
1
1 2 3 5

End
`
		if buf.String() != want {
			t.Errorf("output = %q, want %q", buf.String(), want)
		}
	})

	t.Run("defaults labels to 1", func(t *testing.T) {
		t.Parallel()

		m := mesh.New()
		m.Points = [][]float64{{0.5, 0.25}}
		m.AddBlock("line", [][]int{{0, 0}})

		var buf bytes.Buffer
		if err := medit.Write(&buf, m); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
		if !strings.Contains(buf.String(), "0.5 0.25 1\n") {
			t.Errorf("output missing default point label:\n%s", buf.String())
		}
		if !strings.Contains(buf.String(), "1 1 1\n") {
			t.Errorf("output missing default cell label:\n%s", buf.String())
		}
	})

	t.Run("round-trip precision", func(t *testing.T) {
		t.Parallel()

		m := mesh.New()
		m.Points = [][]float64{{0.1, 1.0 / 3.0}, {2e-10, 12345.6789}}
		m.PointData[mesh.RefAttr] = []int{1, 1}

		var buf bytes.Buffer
		if err := medit.Write(&buf, m); err != nil {
			t.Fatalf("Write() error = %v", err)
		}

		back, err := medit.Read(&buf)
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if !reflect.DeepEqual(back.Points, m.Points) {
			t.Errorf("Points = %v, want %v", back.Points, m.Points)
		}
	})

	t.Run("skips unrepresentable families", func(t *testing.T) {
		t.Parallel()

		m := triangleMesh()
		m.AddBlock("polyhedron", [][]int{{0, 1, 2}})

		var skipped []string
		var buf bytes.Buffer
		err := medit.Write(&buf, m,
			medit.WithSkipHandler(func(name string) { skipped = append(skipped, name) }))
		if err != nil {
			t.Fatalf("Write() error = %v", err)
		}
		if !reflect.DeepEqual(skipped, []string{"polyhedron"}) {
			t.Errorf("skipped = %v, want [polyhedron]", skipped)
		}
		if strings.Contains(buf.String(), "polyhedron") {
			t.Errorf("output mentions the skipped family:\n%s", buf.String())
		}
	})

	t.Run("rejects multiple point label sequences", func(t *testing.T) {
		t.Parallel()

		m := triangleMesh()
		m.PointData["other"] = []int{7, 7, 7}

		err := medit.Write(&bytes.Buffer{}, m)
		if !errors.Is(err, medit.ErrMultipleLabels) {
			t.Fatalf("Write() error = %v, want ErrMultipleLabels", err)
		}
	})

	t.Run("rejects multiple cell label sequences", func(t *testing.T) {
		t.Parallel()

		m := triangleMesh()
		m.SetCellAttr("triangle", "other", []int{9})

		err := medit.Write(&bytes.Buffer{}, m)
		if !errors.Is(err, medit.ErrMultipleLabels) {
			t.Fatalf("Write() error = %v, want ErrMultipleLabels", err)
		}
	})

	t.Run("rejects mismatched label length", func(t *testing.T) {
		t.Parallel()

		m := triangleMesh()
		m.PointData[mesh.RefAttr] = []int{1}

		if err := medit.Write(&bytes.Buffer{}, m); err == nil {
			t.Fatal("Write() expected error for short label sequence")
		}
	})
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	m := mesh.New()
	m.Points = [][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	m.PointData[mesh.RefAttr] = []int{1, 2, 3, 4}
	m.AddBlock("tetra", [][]int{{0, 1, 2, 3}})
	m.SetCellAttr("tetra", mesh.RefAttr, []int{42})
	m.AddBlock("line", [][]int{{0, 1}, {1, 2}})
	m.SetCellAttr("line", mesh.RefAttr, []int{1, 1})

	var buf bytes.Buffer
	if err := medit.Write(&buf, m); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	back, err := medit.Read(&buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if !reflect.DeepEqual(back.Points, m.Points) {
		t.Errorf("Points = %v, want %v", back.Points, m.Points)
	}
	if !reflect.DeepEqual(back.PointData, m.PointData) {
		t.Errorf("PointData = %v, want %v", back.PointData, m.PointData)
	}
	if !reflect.DeepEqual(back.Cells, m.Cells) {
		t.Errorf("Cells = %v, want %v", back.Cells, m.Cells)
	}
	if !reflect.DeepEqual(back.CellData, m.CellData) {
		t.Errorf("CellData = %v, want %v", back.CellData, m.CellData)
	}
}
