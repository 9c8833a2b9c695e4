package geocart_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HectorMRC/geocart"
)

func TestNewGeographic(t *testing.T) {
	t.Parallel()

	t.Run("success - canonical input is stored unchanged", func(t *testing.T) {
		g, err := geocart.NewGeographic(48.8566, 2.3522, 35)
		require.NoError(t, err)
		assert.Equal(t, 48.8566, g.Latitude())
		assert.Equal(t, 2.3522, g.Longitude())
		assert.Equal(t, 35.0, g.Altitude())
	})

	t.Run("success - the poles are valid latitudes", func(t *testing.T) {
		for _, lat := range []float64{90, -90} {
			g, err := geocart.NewGeographic(lat, 45, 0)
			require.NoError(t, err)
			assert.Equal(t, lat, g.Latitude())
		}
	})

	t.Run("success - longitude is wrapped on construction", func(t *testing.T) {
		g, err := geocart.NewGeographic(0, 540, 0)
		require.NoError(t, err)
		assert.Equal(t, 180.0, g.Longitude())
	})

	t.Run("success - negative altitude lies below the surface", func(t *testing.T) {
		g, err := geocart.NewGeographic(11.35, 142.2, -10994)
		require.NoError(t, err)
		assert.Equal(t, -10994.0, g.Altitude())
	})

	t.Run("error - latitude beyond the north pole", func(t *testing.T) {
		_, err := geocart.NewGeographic(90.0001, 0, 0)

		var verr *geocart.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "latitude", verr.Field)
		assert.Equal(t, 90.0001, verr.Value)
		assert.Contains(t, verr.Error(), "between -90 and 90")
	})

	t.Run("error - latitude beyond the south pole", func(t *testing.T) {
		_, err := geocart.NewGeographic(-90.0001, 0, 0)

		var verr *geocart.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "latitude", verr.Field)
	})

	t.Run("error - non-finite fields are rejected before range checks", func(t *testing.T) {
		cases := []struct {
			name          string
			lat, lon, alt float64
			field         string
		}{
			{"latitude NaN", math.NaN(), 0, 0, "latitude"},
			{"latitude infinite", math.Inf(1), 0, 0, "latitude"},
			{"longitude NaN", 0, math.NaN(), 0, "longitude"},
			{"longitude infinite", 0, math.Inf(-1), 0, "longitude"},
			{"altitude NaN", 0, 0, math.NaN(), "altitude"},
			{"altitude infinite", 0, 0, math.Inf(1), "altitude"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := geocart.NewGeographic(tc.lat, tc.lon, tc.alt)

				var verr *geocart.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tc.field, verr.Field)
				assert.Equal(t, "must be finite", verr.Reason)
			})
		}
	})
}

func TestNormalizeLongitude(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"already canonical", 37.6173, 37.6173},
		{"zero", 0, 0},
		{"positive boundary", 180, 180},
		{"negative boundary folds to positive", -180, 180},
		{"just past east", 181, -179},
		{"just past west", -181, 179},
		{"full turn", 360, 0},
		{"turn and a half", 540, 180},
		{"negative turn and a half", -540, 180},
		{"two full turns", 720, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := geocart.NormalizeLongitude(tc.in)
			assert.InDelta(t, tc.want, got, 1e-9)
			assert.Equal(t, got, geocart.NormalizeLongitude(got), "normalization must be idempotent")
		})
	}

	t.Run("result always lands in the canonical range", func(t *testing.T) {
		for lon := -1080.0; lon <= 1080.0; lon += 7.3 {
			got := geocart.NormalizeLongitude(lon)
			assert.Greater(t, got, -180.0, "input %v", lon)
			assert.LessOrEqual(t, got, 180.0, "input %v", lon)
		}
	})

	t.Run("non-finite input passes through untouched", func(t *testing.T) {
		assert.True(t, math.IsNaN(geocart.NormalizeLongitude(math.NaN())))
	})
}

func TestMustGeographic(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { geocart.MustGeographic(51.4778, -0.0015, 46) })
	assert.Panics(t, func() { geocart.MustGeographic(91, 0, 0) })
}

func TestGeographicAlmostEqual(t *testing.T) {
	t.Parallel()

	base := geocart.MustGeographic(40.4168, -3.7038, 650)

	assert.True(t, base.AlmostEqual(base, 1e-12))
	assert.True(t, base.AlmostEqual(geocart.MustGeographic(40.4168, -3.7038, 650.0000001), 1e-9))
	assert.False(t, base.AlmostEqual(geocart.MustGeographic(40.4168, -3.7038, 650.1), 1e-9))
	assert.False(t, base.AlmostEqual(geocart.MustGeographic(40.4169, -3.7038, 650), 1e-9))
}

func TestGeographicJSON(t *testing.T) {
	t.Parallel()

	t.Run("success - marshal and unmarshal round trip", func(t *testing.T) {
		g := geocart.MustGeographic(-33.8688, 151.2093, 58)

		data, err := json.Marshal(g)
		require.NoError(t, err)
		assert.JSONEq(t, `{"latitude":-33.8688,"longitude":151.2093,"altitude":58}`, string(data))

		var decoded geocart.Geographic
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.True(t, decoded.AlmostEqual(g, 1e-12))
	})

	t.Run("success - unmarshal normalizes the longitude", func(t *testing.T) {
		var g geocart.Geographic
		require.NoError(t, json.Unmarshal([]byte(`{"latitude":10,"longitude":-180,"altitude":0}`), &g))
		assert.Equal(t, 180.0, g.Longitude())
	})

	t.Run("error - unmarshal rejects an out-of-range latitude", func(t *testing.T) {
		var g geocart.Geographic
		err := json.Unmarshal([]byte(`{"latitude":120,"longitude":0,"altitude":0}`), &g)

		var verr *geocart.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "latitude", verr.Field)
	})

	t.Run("error - unmarshal rejects malformed input", func(t *testing.T) {
		var g geocart.Geographic
		assert.Error(t, json.Unmarshal([]byte(`{"latitude":`), &g))
	})
}

func TestGeographicZeroValue(t *testing.T) {
	t.Parallel()

	var g geocart.Geographic
	assert.Zero(t, g.Latitude())
	assert.Zero(t, g.Longitude())
	assert.Zero(t, g.Altitude())
}
