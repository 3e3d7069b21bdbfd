package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/victory-garden-go/internal/models"
)

func TestClientFetchesDatasets(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case ProducePath:
			w.Write([]byte(`[{"lat":40.7,"lng":-74.0,"name":"Union Square Greenmarket","price":3.5,"organic":true}]`))
		case ClimatePath:
			w.Write([]byte(`[{"lat":40.7,"lng":-74.0,"weight":0.3}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := New(srv.URL+"/", nil)

	produce, err := c.ProduceData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.ProduceLocation{
		{Lat: 40.7, Lng: -74.0, Name: "Union Square Greenmarket", Price: 3.5, Organic: true},
	}, produce)

	zones, err := c.ClimateZones(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.ClimateZone{{Lat: 40.7, Lng: -74.0, Weight: 0.3}}, zones)
}

func TestClientErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == ProducePath {
			http.Error(w, "down", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client())

	_, err := c.ProduceData(context.Background())
	assert.ErrorContains(t, err, "unexpected status 500")

	_, err = c.ClimateZones(context.Background())
	assert.ErrorContains(t, err, "failed to decode")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.ProduceData(ctx)
	assert.Error(t, err)
}
