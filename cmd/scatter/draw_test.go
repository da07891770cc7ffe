package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/midbel/scatter"
	"github.com/midbel/scatter/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	return config.Config{
		File:    filepath.Join("..", "..", "dataset", "testdata", "iris.json"),
		Timeout: time.Second,
		Width:   scatter.DefaultWidth,
		Height:  scatter.DefaultHeight,
		Margin:  scatter.DefaultMargin,
		Ticks:   scatter.DefaultTicks,
		Palette: "category10",
		Mark:    "circle",
	}
}

func drawTo(t *testing.T, opts drawOptions) (string, error) {
	t.Helper()
	opts.Out = filepath.Join(t.TempDir(), "plot.svg")
	if err := runDraw(context.Background(), testConfig(), opts); err != nil {
		return "", err
	}
	data, err := os.ReadFile(opts.Out)
	require.NoError(t, err)
	return string(data), nil
}

func TestDraw(t *testing.T) {
	out, err := drawTo(t, drawOptions{
		X: string(scatter.PetalLength),
		Y: string(scatter.PetalWidth),
	})
	require.NoError(t, err)
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "petalLength")
	assert.Contains(t, out, "petalWidth")
	assert.Equal(t, 6, strings.Count(out, "<circle"))
}

func TestDraw_Hide(t *testing.T) {
	out, err := drawTo(t, drawOptions{
		X:    string(scatter.SepalLength),
		Y:    string(scatter.SepalWidth),
		Hide: []string{"setosa"},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(out, "<circle"))
	assert.Contains(t, out, "legend-hidden")

	out, err = drawTo(t, drawOptions{
		X:    string(scatter.SepalLength),
		Y:    string(scatter.SepalWidth),
		Hide: []string{"setosa", "setosa", "virginica"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "<circle"))
}

func TestDraw_Invalid(t *testing.T) {
	_, err := drawTo(t, drawOptions{
		X:    string(scatter.SepalLength),
		Y:    string(scatter.SepalWidth),
		Hide: []string{"rose"},
	})
	assert.ErrorContains(t, err, "rose")

	_, err = drawTo(t, drawOptions{
		X: "species",
		Y: string(scatter.SepalWidth),
	})
	assert.ErrorIs(t, err, scatter.ErrUnknownAttribute)

	_, err = drawTo(t, drawOptions{
		X: string(scatter.SepalLength),
		Y: "petals",
	})
	assert.ErrorIs(t, err, scatter.ErrUnknownAttribute)
}
