package scatter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomain_Nice(t *testing.T) {
	tests := []struct {
		Input Domain
		Count int
		Want  Domain
	}{
		{Input: NumberDomain(4.3, 7.9), Count: 10, Want: NumberDomain(4, 8)},
		{Input: NumberDomain(0.1, 2.5), Count: 10, Want: NumberDomain(0, 2.6)},
		{Input: NumberDomain(1, 6.9), Count: 10, Want: NumberDomain(1, 7)},
		{Input: NumberDomain(12, 97), Count: 10, Want: NumberDomain(10, 100)},
		{Input: NumberDomain(0, 1), Count: 10, Want: NumberDomain(0, 1)},
	}
	for _, tt := range tests {
		got := tt.Input.Nice(tt.Count)
		assert.InDelta(t, tt.Want.F, got.F, 1e-9, "nice(%v).F", tt.Input)
		assert.InDelta(t, tt.Want.T, got.T, 1e-9, "nice(%v).T", tt.Input)
	}
}

func TestDomain_Ticks(t *testing.T) {
	tests := []struct {
		Input Domain
		Count int
		Want  []float64
	}{
		{
			Input: NumberDomain(0, 1),
			Count: 10,
			Want:  []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1},
		},
		{
			Input: NumberDomain(0, 100),
			Count: 5,
			Want:  []float64{0, 20, 40, 60, 80, 100},
		},
		{
			Input: NumberDomain(4, 8),
			Count: 10,
			Want:  []float64{4, 4.5, 5, 5.5, 6, 6.5, 7, 7.5, 8},
		},
		{
			Input: NumberDomain(2, 2),
			Count: 10,
			Want:  []float64{2},
		},
	}
	for _, tt := range tests {
		got := tt.Input.Ticks(tt.Count)
		require.Len(t, got, len(tt.Want), "ticks(%v)", tt.Input)
		for i := range got {
			assert.InDelta(t, tt.Want[i], got[i], 1e-9)
		}
	}
}

func TestDomain_TicksInvalid(t *testing.T) {
	assert.Empty(t, NumberDomain(0, 1).Ticks(0))
	assert.Empty(t, NumberDomain(math.NaN(), 1).Ticks(10))
}

func TestExtentOf(t *testing.T) {
	records := []Record{
		testRecord("a", 5.1, 3.5, 1.4, 0.2),
		testRecord("a", 7.0, 3.2, 4.7, 1.4),
		NewRecord("b", map[Attribute]float64{SepalLength: math.NaN()}),
	}
	dom := ExtentOf(records, SepalLength)
	assert.Equal(t, 5.1, dom.F)
	assert.Equal(t, 7.0, dom.T)

	dom = ExtentOf(records[:1], SepalLength)
	assert.InDelta(t, 4.6, dom.F, 1e-9)
	assert.InDelta(t, 5.6, dom.T, 1e-9)

	dom = ExtentOf(nil, SepalLength)
	assert.Equal(t, NumberDomain(0, 1), dom)

	dom = ExtentOf(records[2:], SepalLength)
	assert.Equal(t, NumberDomain(0, 1), dom)
}

func TestScaler(t *testing.T) {
	records := []Record{
		testRecord("a", 4.3, 2.0, 1.0, 0.1),
		testRecord("a", 7.9, 4.4, 6.9, 2.5),
	}
	s := NewScaler(records, SepalLength, NewRange(0, 400))
	assert.InDelta(t, 4.0, s.Domain.F, 1e-9)
	assert.InDelta(t, 8.0, s.Domain.T, 1e-9)
	assert.InDelta(t, 0, s.Scale(4), 1e-9)
	assert.InDelta(t, 400, s.Scale(8), 1e-9)
	assert.Less(t, s.Scale(5), s.Scale(6))

	for _, r := range records {
		v := s.Scale(r.Get(SepalLength))
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 400.0)
	}
	assert.True(t, math.IsNaN(s.Scale(math.NaN())))
}

func TestScaler_Degenerate(t *testing.T) {
	s := NumberScaler(NumberDomain(3, 3), NewRange(0, 400), DefaultTicks)
	assert.Greater(t, s.Domain.Extend(), 0.0)

	s = Scaler{Range: NewRange(0, 400), Domain: NumberDomain(3, 3), Count: DefaultTicks}
	assert.Equal(t, 0.0, s.Space())
	assert.False(t, math.IsNaN(s.Scale(3)))
}

func testRecord(species string, sl, sw, pl, pw float64) Record {
	return NewRecord(species, map[Attribute]float64{
		SepalLength: sl,
		SepalWidth:  sw,
		PetalLength: pl,
		PetalWidth:  pw,
	})
}

func TestDomain_NiceReversed(t *testing.T) {
	got := NumberDomain(8.3, 4.1).Nice(DefaultTicks)
	assert.InDelta(t, 8.5, got.F, 1e-9)
	assert.InDelta(t, 4, got.T, 1e-9)
}

func TestDomain_NiceUnchanged(t *testing.T) {
	for _, d := range []Domain{NumberDomain(3, 3), NumberDomain(0, 1)} {
		assert.Equal(t, d, d.Nice(0), "nice(%v, 0)", d)
	}
	d := NumberDomain(2, 2)
	assert.Equal(t, d, d.Nice(DefaultTicks))
}
