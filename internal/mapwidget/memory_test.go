package mapwidget

import (
	"testing"

	"github.com/golang/geo/s2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatLng(t *testing.T) {
	ll, err := LatLng(40.7128, -74.0060)
	require.NoError(t, err)
	assert.InDelta(t, 40.7128, ll.Lat.Degrees(), 1e-9)
	assert.InDelta(t, -74.0060, ll.Lng.Degrees(), 1e-9)

	_, err = LatLng(91, 0)
	assert.ErrorIs(t, err, ErrInvalidCoordinate)
	_, err = LatLng(0, 181)
	assert.ErrorIs(t, err, ErrInvalidCoordinate)
}

func TestNewMemoryRejectsInvalidCenter(t *testing.T) {
	_, err := NewMemory(s2.LatLngFromDegrees(120, 0), 13)
	assert.ErrorIs(t, err, ErrInvalidCoordinate)

	w, err := MemoryFactory(s2.LatLngFromDegrees(120, 0), 13)
	assert.Error(t, err)
	assert.Nil(t, w)
}

func TestMemoryMarkerPopup(t *testing.T) {
	m, err := NewMemory(s2.LatLngFromDegrees(1, 1), 10)
	require.NoError(t, err)

	a, err := m.AddMarker(MarkerOptions{Position: s2.LatLngFromDegrees(1, 1), Title: "a"})
	require.NoError(t, err)
	b, err := m.AddMarker(MarkerOptions{Position: s2.LatLngFromDegrees(2, 2), Title: "b"})
	require.NoError(t, err)

	pa := m.NewPopup("<h3>a</h3>")
	a.OnClick(func() { pa.Open(a) })
	pb := m.NewPopup("<h3>b</h3>")
	b.OnClick(func() { pb.Open(b) })

	require.NoError(t, m.Click(1))
	markers := m.Markers()
	require.Len(t, markers, 2)
	assert.False(t, markers[0].PopupOpen)
	assert.True(t, markers[1].PopupOpen)
	assert.Equal(t, "<h3>b</h3>", markers[1].PopupContent)

	require.NoError(t, m.Click(0))
	markers = m.Markers()
	assert.True(t, markers[0].PopupOpen)
	assert.True(t, markers[1].PopupOpen)

	assert.Error(t, m.Click(2))
}

func TestMemoryHeatmap(t *testing.T) {
	m, err := NewMemory(s2.LatLngFromDegrees(1, 1), 10)
	require.NoError(t, err)

	layer, err := m.NewHeatmap([]WeightedPoint{{Location: s2.LatLngFromDegrees(1, 1), Weight: 0.8}}, HeatmapOptions{Visible: true})
	require.NoError(t, err)

	layer.Hide()
	layer.SetRadius(20)
	layer.SetGradient([]string{"red"})

	hs := m.Heatmaps()
	require.Len(t, hs, 1)
	assert.False(t, hs[0].Visible)
	assert.Equal(t, 20, hs[0].Radius)
	assert.Equal(t, []string{"red"}, hs[0].Gradient)

	layer.SetGradient(nil)
	layer.Show()
	hs = m.Heatmaps()
	assert.True(t, hs[0].Visible)
	assert.Nil(t, hs[0].Gradient)

	_, err = m.NewHeatmap([]WeightedPoint{{Location: s2.LatLngFromDegrees(100, 0)}}, HeatmapOptions{})
	assert.ErrorIs(t, err, ErrInvalidCoordinate)
}
