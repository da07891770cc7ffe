package scatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelector_Change(t *testing.T) {
	var (
		axis Axis
		attr Attribute
		hits int
	)
	sel := Selector{
		Horizontal: SepalLength,
		Vertical:   SepalWidth,
		OnChange: func(a Axis, t Attribute) {
			axis, attr = a, t
			hits++
		},
	}
	require.NoError(t, sel.Change("vertical", "petalLength"))
	assert.Equal(t, Vertical, axis)
	assert.Equal(t, PetalLength, attr)
	assert.Equal(t, SepalWidth, sel.Vertical, "selector must not hold the new value")

	require.NoError(t, sel.Change("horizontal", "petalWidth"))
	assert.Equal(t, Horizontal, axis)
	assert.Equal(t, PetalWidth, attr)

	assert.ErrorIs(t, sel.Change("depth", "petalWidth"), ErrUnknownAxis)
	assert.ErrorIs(t, sel.Change("horizontal", "species"), ErrUnknownAttribute)
	assert.Equal(t, 2, hits)
}

func TestSelector_Controls(t *testing.T) {
	sel := Selector{
		Horizontal: PetalLength,
		Vertical:   PetalLength,
	}
	cs := sel.Controls()
	require.Len(t, cs, 2)
	assert.Equal(t, "horizontal", cs[0].Name)
	assert.Equal(t, PetalLength, cs[0].Selected)
	assert.Equal(t, Attributes, cs[0].Options)
	assert.Equal(t, "vertical", cs[1].Name)
	assert.Equal(t, PetalLength, cs[1].Selected)
}
