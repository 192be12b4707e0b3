package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestSlice_TwentyFiveItemsTenPerPage(t *testing.T) {
	items := seq(25)

	p1, pg1 := Slice(items, 10, "1")
	assert.Len(t, p1, 10)
	assert.Equal(t, 1, p1[0])
	assert.Equal(t, 3, pg1.NumPages)
	assert.True(t, pg1.HasNext)
	assert.False(t, pg1.HasPrevious)
	assert.Equal(t, 2, pg1.NextNumber)

	p3, pg3 := Slice(items, 10, "3")
	assert.Equal(t, []int{21, 22, 23, 24, 25}, p3)
	assert.False(t, pg3.HasNext)
	assert.True(t, pg3.HasPrevious)
	assert.Equal(t, 2, pg3.PreviousNumber)

	p4, pg4 := Slice(items, 10, "4")
	assert.Equal(t, p3, p4, "page past the end clamps to the last page")
	assert.Equal(t, 3, pg4.Number)
}

func TestGetPage_InvalidNumbersFallBackToFirst(t *testing.T) {
	p := New(25, 10)
	for _, raw := range []string{"", "abc", "0", "-3", "1.5"} {
		t.Run(raw, func(t *testing.T) {
			assert.Equal(t, 1, p.GetPage(raw).Number)
		})
	}
	assert.Equal(t, 2, p.GetPage(" 2 ").Number)
}

func TestEmptySetHasOneEmptyPage(t *testing.T) {
	items, pg := Slice([]string{}, 10, "7")
	assert.Empty(t, items)
	assert.Equal(t, 1, pg.Number)
	assert.Equal(t, 1, pg.NumPages)
	assert.False(t, pg.HasNext)
	assert.False(t, pg.HasPrevious)
}

func TestOffsetLimitBounds(t *testing.T) {
	pg := New(25, 10).Page(3)
	assert.Equal(t, 20, pg.Offset())
	assert.Equal(t, 10, pg.Limit())
	start, end := pg.Bounds()
	assert.Equal(t, 20, start)
	assert.Equal(t, 25, end)
}

func TestNew_NonPositivePerPage(t *testing.T) {
	p := New(30, 0)
	require.Equal(t, 3, p.NumPages())
	assert.Equal(t, DefaultPerPage, p.Page(1).PerPage)
}
