package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datedSet(indices ...int) map[int]struct{} {
	dated := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		dated[i] = struct{}{}
	}
	return dated
}

func TestResolveEdges(t *testing.T) {
	t.Run("Padding Cell Draws Nothing", func(t *testing.T) {
		dated := datedSet(5, 6, 7)

		edges := ResolveEdges(3, dated)

		assert.Equal(t, EdgeSet(0), edges)
		assert.Nil(t, edges.Strings())
	})

	t.Run("Isolated Dated Cell Draws All Four Edges", func(t *testing.T) {
		edges := ResolveEdges(10, datedSet(10))

		assert.True(t, edges.Has(EdgeTop))
		assert.True(t, edges.Has(EdgeBottom))
		assert.True(t, edges.Has(EdgeLeading))
		assert.True(t, edges.Has(EdgeTrailing))
	})

	t.Run("Adjacent Pair Shares One Vertical Border", func(t *testing.T) {
		dated := datedSet(10, 11)

		left := ResolveEdges(10, dated)
		right := ResolveEdges(11, dated)

		assert.Equal(t, EdgeTop|EdgeBottom|EdgeLeading|EdgeTrailing, left, "left cell of the pair draws all four edges")
		assert.Equal(t, EdgeTop|EdgeBottom|EdgeTrailing, right, "right cell skips leading, its left neighbor already drew it")
	})

	t.Run("First Row Always Draws Top", func(t *testing.T) {
		dated := datedSet(0, 1, 2, 3, 4, 5, 6)

		for i := 0; i < Columns; i++ {
			assert.True(t, ResolveEdges(i, dated).Has(EdgeTop), "cell %d sits in row 0", i)
		}
	})

	t.Run("First Column Always Draws Leading", func(t *testing.T) {
		dated := datedSet(0, 7, 14, 21, 28, 35)

		for i := 0; i < GridSize; i += Columns {
			assert.True(t, ResolveEdges(i, dated).Has(EdgeLeading), "cell %d sits in column 0", i)
		}
	})

	t.Run("Interior Cells Of A Filled Block Draw Trailing And Bottom Only", func(t *testing.T) {
		// A 3x3 dated block spanning rows 1-3, columns 1-3.
		dated := datedSet(8, 9, 10, 15, 16, 17, 22, 23, 24)

		edges := ResolveEdges(16, dated)

		assert.Equal(t, EdgeTrailing|EdgeBottom, edges, "interior cell relies on neighbors for top and leading")
	})

	t.Run("Real Month Layout", func(t *testing.T) {
		month := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
		cells := BuildMonthGrid(month, 1)
		dated := DatedIndices(cells)
		require.Len(t, dated, 31)

		// March 1 sits at index 5 under column 5 of row 0.
		first := ResolveEdges(5, dated)
		assert.True(t, first.Has(EdgeTop), "row 0 draws top")
		assert.True(t, first.Has(EdgeLeading), "padding on the left forces leading")

		// March 6 at index 10: padding above (index 3), March 5 to its left.
		sixth := ResolveEdges(10, dated)
		assert.True(t, sixth.Has(EdgeTop), "padding above forces top")
		assert.False(t, sixth.Has(EdgeLeading), "dated left neighbor already drew the shared border")

		// March 10 at index 14 opens row 2 with a fully dated row above.
		tenth := ResolveEdges(14, dated)
		assert.False(t, tenth.Has(EdgeTop), "dated cell above already drew the shared border")
		assert.True(t, tenth.Has(EdgeLeading), "column 0 draws leading")

		for index := range dated {
			edges := ResolveEdges(index, dated)
			assert.True(t, edges.Has(EdgeTrailing), "cell %d should always draw trailing", index)
			assert.True(t, edges.Has(EdgeBottom), "cell %d should always draw bottom", index)
		}
	})

	t.Run("No Edge For Indices Outside The Dated Set", func(t *testing.T) {
		dated := datedSet(5, 6, 7, 8)

		for _, index := range []int{0, 4, 9, 41} {
			assert.Equal(t, EdgeSet(0), ResolveEdges(index, dated), "index %d holds no date", index)
		}
	})
}

func TestEdgeSetStrings(t *testing.T) {
	all := EdgeTop | EdgeBottom | EdgeLeading | EdgeTrailing

	assert.Equal(t, []string{"top", "bottom", "leading", "trailing"}, all.Strings())
	assert.Equal(t, []string{"bottom", "trailing"}, (EdgeBottom | EdgeTrailing).Strings())
	assert.Nil(t, EdgeSet(0).Strings())
}
