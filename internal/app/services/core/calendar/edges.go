package calendar

// ResolveEdges decides which borders the cell at cellIndex draws, given the
// set of grid positions that carry dates. Padding cells draw nothing. Dated
// cells always draw their trailing and bottom edges; the top edge is added on
// the first row or when the cell above is padding, the leading edge on the
// first column or when the cell to the left is padding. Shared borders are
// therefore drawn exactly once.
func ResolveEdges(cellIndex int, dated map[int]struct{}) EdgeSet {
	if _, ok := dated[cellIndex]; !ok {
		return 0
	}

	edges := EdgeTrailing | EdgeBottom

	if cellIndex < Columns {
		edges |= EdgeTop
	} else if _, ok := dated[cellIndex-Columns]; !ok {
		edges |= EdgeTop
	}

	if cellIndex%Columns == 0 {
		edges |= EdgeLeading
	} else if _, ok := dated[cellIndex-1]; !ok {
		edges |= EdgeLeading
	}

	return edges
}
