package medit

// Reserved keywords of the ASCII Medit format.
const (
	kwVersion   = "MeshVersionFormatted"
	kwDimension = "Dimension"
	kwVertices  = "Vertices"
	kwEnd       = "End"
)

// supportedVersion is the only MeshVersionFormatted value this package
// accepts or produces.
const supportedVersion = "1"

// element describes one recognized element keyword: the family name
// used in the mesh container and the node count per record.
type element struct {
	Family string
	Arity  int
}

// elementKeywords maps format keywords to element families. Shared by
// reader and writer; the writer uses the inverted keywordsByFamily.
//
//nolint:gochecknoglobals // Read-only lookup table.
var elementKeywords = map[string]element{
	"Edges":          {Family: "line", Arity: 2},
	"Triangles":      {Family: "triangle", Arity: 3},
	"Quadrilaterals": {Family: "quad", Arity: 4},
	"Tetrahedra":     {Family: "tetra", Arity: 4},
	"Hexahedra":      {Family: "hexahedra", Arity: 8},
}

// keywordsByFamily is elementKeywords inverted, keyed by family name.
//
//nolint:gochecknoglobals // Read-only lookup table.
var keywordsByFamily = func() map[string]string {
	inv := make(map[string]string, len(elementKeywords))
	for keyword, el := range elementKeywords {
		inv[el.Family] = keyword
	}
	return inv
}()

// ignoredKeywords maps auxiliary keywords this package skips to the
// number of scalar values per count-prefixed record.
//
//nolint:gochecknoglobals // Read-only lookup table.
var ignoredKeywords = map[string]int{
	"Corners":                       1,
	"RequiredVertices":              1,
	"Ridges":                        1,
	"RequiredEdges":                 1,
	"Normals":                       3,
	"Tangents":                      3,
	"NormalAtVertices":              2,
	"NormalAtTriangleVertices":      3,
	"NormalAtQuadrilateralVertices": 3,
	"TangentAtEdges":                3,
}

// isAlpha reports whether s is non-empty and purely ASCII alphabetic,
// the shape every Medit keyword has.
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
