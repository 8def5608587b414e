package region

// EraseScope selects how much of a region an erase covers.
type EraseScope int

const (
	// EraseContent blanks the content span only.
	EraseContent EraseScope = iota
	// EraseAll blanks the content span and both margins.
	EraseAll
)

// Geometry is the horizontal extent of a region: a content span of at most
// MaxWidth cells framed by left and right margins.
type Geometry struct {
	MarginLeft  int
	MaxWidth    int
	MarginRight int
}

// NewGeometry clamps negative values to zero.
func NewGeometry(marginLeft, maxWidth, marginRight int) Geometry {
	return Geometry{
		MarginLeft:  max(marginLeft, 0),
		MaxWidth:    max(maxWidth, 0),
		MarginRight: max(marginRight, 0),
	}
}

// Footprint is the total number of columns the region occupies.
func (g Geometry) Footprint() int {
	return g.MarginLeft + g.MaxWidth + g.MarginRight
}

// EraseWidth is the number of cells blanked for the given scope.
func (g Geometry) EraseWidth(scope EraseScope) int {
	if scope == EraseAll {
		return g.Footprint()
	}
	return g.MaxWidth
}

// Widen returns g with MaxWidth grown to at least width. It never narrows.
func (g Geometry) Widen(width int) Geometry {
	g.MaxWidth = max(g.MaxWidth, width)
	return g
}
