// Package medit reads and writes Medit's ASCII mesh format: a
// line-oriented sequence of keyword/count/data blocks carrying
// vertices, typed element connectivity, and per-entity integer
// reference labels. Node indices are 1-based in the file and 0-based
// in the mesh container; the conversion happens at this boundary.
package medit

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/yaklabco/gomedit/pkg/mesh"
)

// Read parses a Medit mesh from r and returns a freshly built
// snapshot. Reference labels are stored under mesh.RefAttr for the
// point set and for every cell family. Parsing stops at the End
// keyword or at end of input; running out of tokens inside a block is
// an error.
func Read(r io.Reader, opts ...Option) (*mesh.Mesh, error) {
	o := newOptions(opts)
	tokens := newTokenReader(r)
	m := mesh.New()
	dim := 0

	for {
		keyword, err := tokens.nextToken()
		if err != nil {
			if errors.Is(err, ErrUnexpectedEOF) {
				// End of input between blocks is a normal end.
				return m, nil
			}
			return nil, err
		}
		if !isAlpha(keyword) {
			return nil, fmt.Errorf("%w: %q", ErrMalformedKeyword, keyword)
		}

		switch {
		case keyword == kwEnd:
			return m, nil

		case keyword == kwVersion:
			version, err := tokens.nextToken()
			if err != nil {
				return nil, err
			}
			if version != supportedVersion {
				return nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, version)
			}

		case keyword == kwDimension:
			dim, err = readPositiveInt(tokens, keyword)
			if err != nil {
				return nil, err
			}

		case keyword == kwVertices:
			if dim == 0 {
				return nil, fmt.Errorf("%w: Vertices before Dimension", ErrDimensionNotSet)
			}
			if err := readVertices(tokens, m, dim); err != nil {
				return nil, err
			}

		default:
			if el, ok := elementKeywords[keyword]; ok {
				if err := readElements(tokens, m, keyword, el); err != nil {
					return nil, err
				}
				continue
			}
			if mult, ok := ignoredKeywords[keyword]; ok {
				o.skip(keyword, "field ignored")
				if err := skipBlock(tokens, keyword, mult); err != nil {
					return nil, err
				}
				continue
			}
			return nil, fmt.Errorf("%w: %q", ErrUnknownKeyword, keyword)
		}
	}
}

// readVertices parses the Vertices block: a count, then one record of
// dim coordinates plus a label per vertex.
func readVertices(tokens *tokenReader, m *mesh.Mesh, dim int) error {
	count, err := readCount(tokens, kwVertices)
	if err != nil {
		return err
	}

	points := make([][]float64, 0, count)
	labels := make([]int, 0, count)
	for i := 0; i < count; i++ {
		record, err := tokens.next(dim + 1)
		if err != nil {
			return err
		}
		coords := make([]float64, dim)
		for i, tok := range record[:dim] {
			coords[i], err = parseFloat(tok, kwVertices)
			if err != nil {
				return err
			}
		}
		label, err := parseInt(record[dim], kwVertices)
		if err != nil {
			return err
		}
		points = append(points, coords)
		labels = append(labels, label)
	}

	m.Points = append(m.Points, points...)
	m.PointData[mesh.RefAttr] = append(m.PointData[mesh.RefAttr], labels...)
	return nil
}

// readElements parses one element block: a count, then one record of
// arity node indices plus a label per cell. File indices are 1-based
// and converted to 0-based here.
func readElements(tokens *tokenReader, m *mesh.Mesh, keyword string, el element) error {
	count, err := readCount(tokens, keyword)
	if err != nil {
		return err
	}

	data := make([][]int, 0, count)
	labels := make([]int, 0, count)
	for i := 0; i < count; i++ {
		record, err := tokens.next(el.Arity + 1)
		if err != nil {
			return err
		}
		indices := make([]int, el.Arity)
		for i, tok := range record[:el.Arity] {
			idx, err := parseInt(tok, keyword)
			if err != nil {
				return err
			}
			indices[i] = idx - 1
		}
		label, err := parseInt(record[el.Arity], keyword)
		if err != nil {
			return err
		}
		data = append(data, indices)
		labels = append(labels, label)
	}

	m.AddBlock(el.Family, data)
	m.SetCellAttr(el.Family, mesh.RefAttr, labels)
	return nil
}

// skipBlock consumes and discards an ignorable auxiliary block: a
// count, then count*mult scalar values.
func skipBlock(tokens *tokenReader, keyword string, mult int) error {
	count, err := readCount(tokens, keyword)
	if err != nil {
		return err
	}
	_, err = tokens.next(count * mult)
	return err
}

// readCount reads a non-negative record count for the named block.
func readCount(tokens *tokenReader, keyword string) (int, error) {
	tok, err := tokens.nextToken()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s count %q", ErrMalformedNumber, keyword, tok)
	}
	return n, nil
}

// readPositiveInt reads a single strictly positive integer token.
func readPositiveInt(tokens *tokenReader, keyword string) (int, error) {
	tok, err := tokens.nextToken()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %s %q", ErrMalformedNumber, keyword, tok)
	}
	return n, nil
}

func parseInt(tok, keyword string) (int, error) {
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrMalformedNumber, keyword, tok)
	}
	return n, nil
}

func parseFloat(tok, keyword string) (float64, error) {
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrMalformedNumber, keyword, tok)
	}
	return f, nil
}
