package burnlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWktSpanTransform(t *testing.T) {
	g := NewBurnToolbox()
	span := [4]float64{113.695688629, 115.075725846, 29.971802123, 31.360788281}
	wkt := SpanToWkt(span)
	require.NoError(t, g.CheckWkt(wkt, UNIVERSAL_SRID))

	out, err := g.TransformWkt(wkt, UNIVERSAL_SRID, WEB_MERCATOR_SRID)
	require.NoError(t, err)
	got, err := g.GetWktSpan(out, WEB_MERCATOR_SRID)
	require.NoError(t, err)

	wantMinX, wantMinY := Convert4326To3857(span[0], span[2])
	wantMaxX, wantMaxY := Convert4326To3857(span[1], span[3])
	assert.InDelta(t, wantMinX, got[0], 1)
	assert.InDelta(t, wantMaxX, got[1], 1)
	assert.InDelta(t, wantMinY, got[2], 1)
	assert.InDelta(t, wantMaxY, got[3], 1)
}

func TestCheckWktInvalid(t *testing.T) {
	g := NewBurnToolbox()
	err := g.CheckWkt("POLYGON((bogus", UNIVERSAL_SRID)
	require.ErrorIs(t, err, ErrInvalidWKT)
}

func TestTransformWktSameSrid(t *testing.T) {
	g := NewBurnToolbox()
	wkt := PointsToWkt(113.7, 115.1, 30.0, 31.4)
	out, err := g.TransformWkt(wkt, UNIVERSAL_SRID, UNIVERSAL_SRID)
	require.NoError(t, err)
	assert.Equal(t, wkt, out)
}

func TestConvert4326To3857RoundTrip(t *testing.T) {
	lon, lat := Convert3857To4326(Convert4326To3857(-118.75, 34.1))
	assert.InDelta(t, -118.75, lon, 1e-9)
	assert.InDelta(t, 34.1, lat, 1e-9)
}
