package mapview

import (
	"bytes"
	"context"
	"errors"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/victory-garden-go/internal/mapwidget"
	"github.com/jengzang/victory-garden-go/internal/models"
	"github.com/jengzang/victory-garden-go/internal/overlay"
)

// stubSource returns fixed datasets; a non-nil gate channel delays that response until closed.
type stubSource struct {
	produce     []models.ProduceLocation
	produceErr  error
	gateProduce chan struct{}
	climate     []models.ClimateZone
	climateErr  error
	gateClimate chan struct{}
}

func wait(ctx context.Context, gate chan struct{}) error {
	if gate == nil {
		return nil
	}
	select {
	case <-gate:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *stubSource) ProduceData(ctx context.Context) ([]models.ProduceLocation, error) {
	if err := wait(ctx, s.gateProduce); err != nil {
		return nil, err
	}
	return s.produce, s.produceErr
}

func (s *stubSource) ClimateZones(ctx context.Context) ([]models.ClimateZone, error) {
	if err := wait(ctx, s.gateClimate); err != nil {
		return nil, err
	}
	return s.climate, s.climateErr
}

var sampleProduce = []models.ProduceLocation{
	{Lat: 1, Lng: 1, Name: "Green & Co", Price: 3.5, Organic: true},
	{Lat: 2, Lng: 2, Name: "Corner Stand", Price: 2, Organic: false},
}

var sampleClimate = []models.ClimateZone{{Lat: 5, Lng: 5, Weight: 0.3}}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newViewer(t *testing.T, src DataSource) (*Viewer, *mapwidget.Memory, *syncBuffer) {
	t.Helper()
	logs := &syncBuffer{}
	v, err := New(DefaultConfig(), mapwidget.MemoryFactory, src, log.New(logs, "", 0))
	require.NoError(t, err)
	t.Cleanup(v.Close)

	w, ok := v.Widget().(*mapwidget.Memory)
	require.True(t, ok)
	return v, w, logs
}

func TestNewCentersMap(t *testing.T) {
	_, w, _ := newViewer(t, &stubSource{})
	assert.InDelta(t, 40.7128, w.Center().Lat.Degrees(), 1e-9)
	assert.InDelta(t, -74.0060, w.Center().Lng.Degrees(), 1e-9)
	assert.Equal(t, 13, w.Zoom())
}

func TestNewRejectsInvalidCenter(t *testing.T) {
	_, err := New(Config{CenterLat: 100, Zoom: 3}, mapwidget.MemoryFactory, &stubSource{}, nil)
	assert.ErrorIs(t, err, mapwidget.ErrInvalidCoordinate)
}

func TestViewerLoadsBothOverlays(t *testing.T) {
	ctx := context.Background()
	v, w, _ := newViewer(t, &stubSource{produce: sampleProduce, climate: sampleClimate})

	v.Start(ctx)
	v.Wait()

	s, err := v.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, overlay.Visible, s.Produce)
	assert.Equal(t, overlay.Hidden, s.Climate)
	assert.Equal(t, 2, s.Markers)

	markers := w.Markers()
	require.Len(t, markers, 2)
	assert.Equal(t, "Green & Co", markers[0].Title)
	assert.False(t, markers[0].PopupOpen)

	layers := w.Heatmaps()
	require.Len(t, layers, 2)
	for _, l := range layers {
		switch len(l.Points) {
		case 2:
			assert.Equal(t, 0.8, l.Points[0].Weight)
			assert.Equal(t, 0.5, l.Points[1].Weight)
			assert.True(t, l.Visible)
		case 1:
			assert.Equal(t, 0.3, l.Points[0].Weight)
			assert.False(t, l.Visible)
		default:
			t.Fatalf("unexpected layer with %d points", len(l.Points))
		}
	}
}

func TestMarkerClickOpensOnlyItsPopup(t *testing.T) {
	ctx := context.Background()
	v, w, _ := newViewer(t, &stubSource{produce: sampleProduce, climate: sampleClimate})
	v.Start(ctx)
	v.Wait()

	require.NoError(t, w.Click(0))
	_, err := v.Status(ctx) // drain the loop
	require.NoError(t, err)

	markers := w.Markers()
	assert.True(t, markers[0].PopupOpen)
	assert.False(t, markers[1].PopupOpen)
	assert.Equal(t, "<h3>Green &amp; Co</h3>\n<p>Price: $3.5</p>\n<p>Organic: Yes</p>", markers[0].PopupContent)
}

func TestTogglesBeforeDataAreNotReady(t *testing.T) {
	ctx := context.Background()
	gate := make(chan struct{})
	v, _, logs := newViewer(t, &stubSource{produceErr: errors.New("connection refused"), climate: sampleClimate, gateClimate: gate})
	v.Start(ctx)

	_, err := v.Toggle(ctx, ClimateLayer)
	assert.ErrorIs(t, err, overlay.ErrNotReady)
	_, err = v.ChangeRadius(ctx, ClimateLayer)
	assert.ErrorIs(t, err, overlay.ErrNotReady)

	close(gate)
	v.Wait()

	s, err := v.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, overlay.Hidden, s.Climate)

	state, err := v.Toggle(ctx, ClimateLayer)
	require.NoError(t, err)
	assert.Equal(t, overlay.Visible, state)
	assert.Contains(t, logs.String(), "overlay not ready")
}

func TestProduceArrivingAfterClimate(t *testing.T) {
	ctx := context.Background()
	gate := make(chan struct{})
	v, w, _ := newViewer(t, &stubSource{produce: sampleProduce, gateProduce: gate, climate: sampleClimate})
	v.Start(ctx)

	require.Eventually(t, func() bool {
		s, err := v.Status(ctx)
		return err == nil && s.Climate == overlay.Hidden
	}, time.Second, 5*time.Millisecond)

	state, err := v.Toggle(ctx, ClimateLayer)
	require.NoError(t, err)
	assert.Equal(t, overlay.Visible, state)

	_, err = v.Toggle(ctx, ProduceLayer)
	assert.ErrorIs(t, err, overlay.ErrNotReady)

	close(gate)
	v.Wait()

	s, err := v.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, overlay.Visible, s.Produce)
	assert.Equal(t, overlay.Visible, s.Climate)
	assert.Equal(t, 2, s.Markers)
	assert.Len(t, w.Markers(), 2)
}

func TestUnknownLayerRejected(t *testing.T) {
	ctx := context.Background()
	v, _, _ := newViewer(t, &stubSource{produce: sampleProduce, climate: sampleClimate})
	v.Start(ctx)
	v.Wait()

	_, err := v.Toggle(ctx, Layer(7))
	assert.ErrorIs(t, err, ErrUnknownLayer)
	_, err = v.ChangeRadius(ctx, Layer(7))
	assert.ErrorIs(t, err, ErrUnknownLayer)
	_, err = v.ChangeGradient(ctx, Layer(-1))
	assert.ErrorIs(t, err, ErrUnknownLayer)

	s, err := v.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, overlay.Visible, s.Produce)
	assert.Equal(t, overlay.Hidden, s.Climate)
}

func TestFetchFailureIsolated(t *testing.T) {
	ctx := context.Background()

	t.Run("produce fails", func(t *testing.T) {
		v, w, logs := newViewer(t, &stubSource{produceErr: errors.New("502"), climate: sampleClimate})
		v.Start(ctx)
		v.Wait()

		s, err := v.Status(ctx)
		require.NoError(t, err)
		assert.Equal(t, overlay.Uninitialized, s.Produce)
		assert.Error(t, s.ProduceErr)
		assert.Equal(t, 0, s.Markers)
		assert.Empty(t, w.Markers())
		assert.Contains(t, logs.String(), "Error fetching produce data: 502")

		_, err = v.Toggle(ctx, ProduceLayer)
		assert.ErrorIs(t, err, overlay.ErrNotReady)
		_, err = v.ChangeGradient(ctx, ProduceLayer)
		assert.ErrorIs(t, err, overlay.ErrNotReady)

		state, err := v.Toggle(ctx, ClimateLayer)
		require.NoError(t, err)
		assert.Equal(t, overlay.Visible, state)
		state, err = v.Toggle(ctx, ClimateLayer)
		require.NoError(t, err)
		assert.Equal(t, overlay.Hidden, state)
	})

	t.Run("climate fails", func(t *testing.T) {
		v, w, _ := newViewer(t, &stubSource{produce: sampleProduce, climateErr: errors.New("timeout")})
		v.Start(ctx)
		v.Wait()

		s, err := v.Status(ctx)
		require.NoError(t, err)
		assert.Equal(t, overlay.Uninitialized, s.Climate)
		assert.Equal(t, overlay.Visible, s.Produce)
		assert.Len(t, w.Heatmaps(), 1)

		r, err := v.ChangeRadius(ctx, ProduceLayer)
		require.NoError(t, err)
		assert.Equal(t, 20, r)
		r, err = v.ChangeRadius(ctx, ProduceLayer)
		require.NoError(t, err)
		assert.Equal(t, 0, r)

		g, err := v.ChangeGradient(ctx, ProduceLayer)
		require.NoError(t, err)
		assert.Len(t, g, 14)
		g, err = v.ChangeGradient(ctx, ProduceLayer)
		require.NoError(t, err)
		assert.Nil(t, g)
	})

	t.Run("bad coordinate leaves no partial overlay", func(t *testing.T) {
		bad := []models.ProduceLocation{{Lat: 1, Lng: 1, Name: "ok"}, {Lat: 120, Lng: 1, Name: "bad"}}
		v, w, _ := newViewer(t, &stubSource{produce: bad, climate: sampleClimate})
		v.Start(ctx)
		v.Wait()

		s, err := v.Status(ctx)
		require.NoError(t, err)
		assert.Equal(t, overlay.Uninitialized, s.Produce)
		assert.Equal(t, overlay.Hidden, s.Climate)
		assert.Equal(t, 1, s.Markers)
		assert.Len(t, w.Heatmaps(), 1)
	})
}

func TestCloseCancelsHungFetch(t *testing.T) {
	gate := make(chan struct{})
	v, err := New(DefaultConfig(), mapwidget.MemoryFactory, &stubSource{produce: sampleProduce, gateClimate: gate}, log.New(&syncBuffer{}, "", 0))
	require.NoError(t, err)
	v.Start(context.Background())

	v.Close()

	_, err = v.Status(context.Background())
	assert.ErrorIs(t, err, ErrClosed)
}

func TestLayerString(t *testing.T) {
	assert.Equal(t, "produce", ProduceLayer.String())
	assert.Equal(t, "climate", ClimateLayer.String())
	assert.Equal(t, "Layer(7)", Layer(7).String())
}
