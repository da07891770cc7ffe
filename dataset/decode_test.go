package dataset

import (
	"math"
	"testing"

	"github.com/midbel/scatter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	data := `[
		{"sepalLength": 5.1, "sepalWidth": 3.5, "petalLength": 1.4, "petalWidth": 0.2, "species": "setosa"},
		{"sepalLength": "6.3", "sepalWidth": "n/a", "petalLength": null, "species": "virginica"},
		42,
		{"sepalLength": 7.0}
	]`
	list, err := Decode([]byte(data))
	require.NoError(t, err)
	require.Len(t, list, 3)

	assert.Equal(t, "setosa", list[0].Species)
	assert.Equal(t, 5.1, list[0].Get(scatter.SepalLength))
	assert.Equal(t, 0.2, list[0].Get(scatter.PetalWidth))

	assert.Equal(t, 6.3, list[1].Get(scatter.SepalLength))
	assert.True(t, math.IsNaN(list[1].Get(scatter.SepalWidth)))
	assert.True(t, math.IsNaN(list[1].Get(scatter.PetalLength)))
	assert.True(t, math.IsNaN(list[1].Get(scatter.PetalWidth)))

	assert.Equal(t, "", list[2].Species)
	assert.Equal(t, 7.0, list[2].Get(scatter.SepalLength))
}

func TestDecode_Malformed(t *testing.T) {
	for _, data := range []string{`{"species": "setosa"}`, `[{"species": `, ``} {
		_, err := Decode([]byte(data))
		assert.ErrorIs(t, err, ErrMalformed, data)
	}
}

func TestDecode_Empty(t *testing.T) {
	list, err := Decode([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDecode_NonFinite(t *testing.T) {
	data := `[{"sepalLength": "Infinity", "sepalWidth": 1e999, "petalLength": "-inf", "petalWidth": "1.5", "species": "setosa"}]`
	list, err := Decode([]byte(data))
	require.NoError(t, err)
	require.Len(t, list, 1)

	assert.True(t, math.IsNaN(list[0].Get(scatter.SepalLength)))
	assert.True(t, math.IsNaN(list[0].Get(scatter.SepalWidth)))
	assert.True(t, math.IsNaN(list[0].Get(scatter.PetalLength)))
	assert.Equal(t, 1.5, list[0].Get(scatter.PetalWidth))
}
