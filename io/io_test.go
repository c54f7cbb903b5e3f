package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/ipfkey"
	"github.com/phil-mansfield/ipfkey/symmetry"
)

func TestExampleViewerFile(t *testing.T) {
	con, err := ParseViewerConfig(ExampleViewerFile)
	require.NoError(t, err)

	assert.Equal(t, symmetry.Oh, con.Label())
	assert.Equal(t, Sample, con.ParsedMode())
	assert.Equal(t, 100, con.Points)
	assert.Equal(t, int64(42), con.Seed)
	assert.Equal(t, 128, con.LegendResolution)
	assert.False(t, con.ValidLogFile())
}

func TestViewerConfigFields(t *testing.T) {
	con, err := ParseViewerConfig(`[Viewer]
Symmetry = d3d
Mode = orientation
Phi1 = 12.5
Phi = 90
Phi2 = 360
Points = 100000
Seed = -3
Workers = 2
LegendResolution = 16
LogFile = viewer.log`)
	require.NoError(t, err)

	assert.Equal(t, symmetry.D3d, con.Label())
	assert.Equal(t, Orientation, con.ParsedMode())
	assert.Equal(t, "Orientation", con.ParsedMode().String())
	assert.Equal(t, 12.5, con.Phi1)
	assert.Equal(t, 90.0, con.Phi)
	assert.Equal(t, 360.0, con.Phi2)
	assert.Equal(t, 100000, con.Points)
	assert.Equal(t, int64(-3), con.Seed)
	assert.Equal(t, 2, con.Workers)
	assert.Equal(t, 16, con.LegendResolution)
	assert.True(t, con.ValidLogFile())
}

func TestViewerConfigInvalid(t *testing.T) {
	table := []struct {
		body, msg string
	}{
		{"Mode = Sample", "Symmetry"},
		{"Symmetry = Oh", "Mode"},
		{"Symmetry = O\nMode = Sample", "Symmetry"},
		{"Symmetry = Oh\nMode = Render", "Mode"},
		{"Symmetry = Oh\nMode = Sample\nPhi = 361", "Euler"},
		{"Symmetry = Oh\nMode = Sample\nPhi1 = -1", "Euler"},
		{"Symmetry = Oh\nMode = Sample\nPoints = 0", "Points"},
		{"Symmetry = Oh\nMode = Sample\nPoints = 100001", "Points"},
		{"Symmetry = Oh\nMode = Sample\nWorkers = -1", "Workers"},
		{"Symmetry = Oh\nMode = Legend\nLegendResolution = 0", "LegendResolution"},
	}

	for i, test := range table {
		_, err := ParseViewerConfig("[Viewer]\n" + test.body)
		if assert.Error(t, err, "%d)", i+1) {
			assert.Contains(t, err.Error(), test.msg, "%d)", i+1)
		}
	}
}

func TestViewerConfigUnknownSymmetryWrapped(t *testing.T) {
	_, err := ParseViewerConfig("[Viewer]\nSymmetry = m-3m\nMode = Legend")
	assert.ErrorIs(t, err, symmetry.ErrUnknownSymmetry)
}

func TestReadViewerConfig(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "viewer.cfg")
	require.NoError(t, os.WriteFile(fname, []byte(ExampleViewerFile), 0644))

	con, err := ReadViewerConfig(fname)
	require.NoError(t, err)
	assert.Equal(t, symmetry.Oh, con.Label())

	_, err = ReadViewerConfig(filepath.Join(t.TempDir(), "missing.cfg"))
	assert.Error(t, err)
}

func TestWritePoints(t *testing.T) {
	pts := []ipfkey.Point{
		{Color: colorful.Color{R: 1}, X: 0.5, Y: 0.25},
		{Color: colorful.Color{B: 1}, X: 0, Y: 0},
	}
	buf := &bytes.Buffer{}
	require.NoError(t, WritePoints(buf, pts))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "#"))
	assert.Equal(t, []string{"0.50000000", "0.25000000", "1.000000", "0.000000", "0.000000", "#ff0000"},
		strings.Fields(lines[1]))
	assert.Equal(t, "#0000ff", strings.Fields(lines[2])[5])
}

func TestWriteLegend(t *testing.T) {
	pts, err := ipfkey.ColorKeyLegend(symmetry.Oh, 32)
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, WriteLegend(buf, pts))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, len(pts)+1)
}
