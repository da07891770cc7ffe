package scatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberAxis_LayoutBottom(t *testing.T) {
	a := NumberAxis{
		Title:       "sepalLength",
		Orientation: OrientBottom,
		Scaler:      NumberScaler(NumberDomain(4, 8), NewRange(0, 400), DefaultTicks),
	}
	lay := a.Layout(400, 100)
	require.Len(t, lay.Ticks, 9)
	assert.Equal(t, "4", lay.Ticks[0].Label)
	assert.InDelta(t, 0, lay.Ticks[0].Pos, 1e-9)
	assert.Equal(t, "4.5", lay.Ticks[1].Label)
	assert.InDelta(t, 50, lay.Ticks[1].Pos, 1e-9)
	assert.InDelta(t, 400, lay.Ticks[8].Pos, 1e-9)

	assert.Equal(t, 200.0, lay.TitleX)
	assert.Equal(t, 50.0, lay.TitleY)
	assert.Zero(t, lay.Rotate)
}

func TestNumberAxis_LayoutLeft(t *testing.T) {
	a := NumberAxis{
		Title:       "sepalWidth",
		Orientation: OrientLeft,
		Scaler:      NumberScaler(NumberDomain(2, 4.4), NewRange(0, 400), DefaultTicks),
	}
	lay := a.Layout(400, 100)
	require.NotEmpty(t, lay.Ticks)
	first, last := lay.Ticks[0], lay.Ticks[len(lay.Ticks)-1]
	assert.Equal(t, "2", first.Label)
	assert.InDelta(t, 400, first.Pos, 1e-9, "lowest value at the bottom")
	assert.Equal(t, "4.4", last.Label)
	assert.InDelta(t, 0, last.Pos, 1e-9)

	// with the default canvas the title pivots around (50, 300)
	assert.Equal(t, 270.0, lay.Rotate)
	assert.Equal(t, 50.0, DefaultMargin+lay.TitleX)
	assert.Equal(t, 300.0, DefaultMargin+lay.TitleY)
}

func TestNumberAxis_Format(t *testing.T) {
	a := NumberAxis{
		Orientation: OrientBottom,
		Scaler:      NumberScaler(NumberDomain(0, 1), NewRange(0, 100), 2),
		Format: func(f float64) string {
			return "x"
		},
	}
	for _, t1 := range a.Layout(100, 10).Ticks {
		assert.Equal(t, "x", t1.Label)
	}
}
