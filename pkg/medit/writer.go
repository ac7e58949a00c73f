package medit

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/yaklabco/gomedit/pkg/mesh"
)

// Write serializes m to w in ASCII Medit form. Cell blocks are emitted
// in the snapshot's block order; node indices are converted to the
// format's 1-based convention. A family without a format keyword is
// skipped with a warning. A point set or family carrying more than one
// label sequence aborts the write with ErrMultipleLabels.
func Write(w io.Writer, m *mesh.Mesh, opts ...Option) error {
	o := newOptions(opts)
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%s %s\n", kwVersion, supportedVersion)
	fmt.Fprintln(bw, "# Created by gomedit")

	dim := m.Dimension()
	fmt.Fprintf(bw, "\n%s %d\n", kwDimension, dim)

	if err := writeVertices(bw, m, dim); err != nil {
		return err
	}

	for _, block := range m.Cells {
		keyword, ok := keywordsByFamily[block.Family]
		if !ok {
			o.skip(block.Family, "family not representable")
			continue
		}
		if err := writeBlock(bw, m, block, keyword); err != nil {
			return err
		}
	}

	fmt.Fprintf(bw, "\n%s\n", kwEnd)
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

func writeVertices(bw *bufio.Writer, m *mesh.Mesh, dim int) error {
	fmt.Fprintf(bw, "\n%s\n%d\n", kwVertices, len(m.Points))

	labels, err := labelSequence(m.PointData, len(m.Points), "point set")
	if err != nil {
		return err
	}

	for i, point := range m.Points {
		for _, x := range point {
			bw.WriteString(formatFloat(x))
			bw.WriteByte(' ')
		}
		fmt.Fprintf(bw, "%d\n", labels[i])
	}
	return nil
}

func writeBlock(bw *bufio.Writer, m *mesh.Mesh, block mesh.CellBlock, keyword string) error {
	fmt.Fprintf(bw, "\n%s\n%d\n", keyword, len(block.Data))

	labels, err := labelSequence(m.CellData[block.Family], len(block.Data), block.Family)
	if err != nil {
		return err
	}

	for i, cell := range block.Data {
		for _, idx := range cell {
			// File indices are 1-based.
			fmt.Fprintf(bw, "%d ", idx+1)
		}
		fmt.Fprintf(bw, "%d\n", labels[i])
	}
	return nil
}

// labelSequence resolves the label column for n records: the single
// attribute sequence when exactly one is present, all-1 defaults when
// none is. More than one sequence cannot be represented and is fatal.
func labelSequence(attrs map[string][]int, n int, what string) ([]int, error) {
	if len(attrs) > 1 {
		return nil, fmt.Errorf("%w: %s has %d", ErrMultipleLabels, what, len(attrs))
	}
	for name, values := range attrs {
		if len(values) != n {
			return nil, fmt.Errorf("label sequence %q for %s has %d values, want %d",
				name, what, len(values), n)
		}
		return values, nil
	}
	labels := make([]int, n)
	for i := range labels {
		labels[i] = 1
	}
	return labels, nil
}

// formatFloat renders a coordinate with round-trip precision.
func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
