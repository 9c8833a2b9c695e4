package geocart_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HectorMRC/geocart"
)

func TestNewCartesian(t *testing.T) {
	t.Parallel()

	t.Run("success - any finite triple is valid", func(t *testing.T) {
		c, err := geocart.NewCartesian(-6371000, 0.5, 1e9)
		require.NoError(t, err)
		assert.Equal(t, geocart.Cartesian{X: -6371000, Y: 0.5, Z: 1e9}, c)
	})

	t.Run("success - the origin is a valid coordinate", func(t *testing.T) {
		c, err := geocart.NewCartesian(0, 0, 0)
		require.NoError(t, err)
		assert.Zero(t, c.Norm())
	})

	t.Run("error - non-finite components are rejected", func(t *testing.T) {
		cases := []struct {
			name    string
			x, y, z float64
			field   string
		}{
			{"x NaN", math.NaN(), 0, 0, "x"},
			{"y infinite", 0, math.Inf(1), 0, "y"},
			{"z negative infinite", 0, 0, math.Inf(-1), "z"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := geocart.NewCartesian(tc.x, tc.y, tc.z)

				var verr *geocart.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tc.field, verr.Field)
				assert.Equal(t, "must be finite", verr.Reason)
			})
		}
	})
}

func TestCartesianVectorOps(t *testing.T) {
	t.Parallel()

	a := geocart.Cartesian{X: 1, Y: 2, Z: 3}
	b := geocart.Cartesian{X: -4, Y: 5, Z: 0.5}

	assert.Equal(t, geocart.Cartesian{X: -3, Y: 7, Z: 3.5}, a.Add(b))
	assert.Equal(t, geocart.Cartesian{X: 5, Y: -3, Z: 2.5}, a.Sub(b))
	assert.Equal(t, geocart.Cartesian{X: 2, Y: 4, Z: 6}, a.Scale(2))
	assert.InDelta(t, 7.5, a.Dot(b), 1e-12)
	assert.InDelta(t, math.Sqrt(14), a.Norm(), 1e-12)

	cross := a.Cross(b)
	assert.Equal(t, geocart.Cartesian{X: -14, Y: -12.5, Z: 13}, cross)
	assert.InDelta(t, 0, cross.Dot(a), 1e-12, "cross product must be orthogonal to a")
	assert.InDelta(t, 0, cross.Dot(b), 1e-12, "cross product must be orthogonal to b")
}

func TestCartesianAlmostEqual(t *testing.T) {
	t.Parallel()

	base := geocart.Cartesian{X: 6371000}

	assert.True(t, base.AlmostEqual(geocart.Cartesian{X: 6371000.001}, 1e-9))
	assert.False(t, base.AlmostEqual(geocart.Cartesian{X: 6371100}, 1e-9))
	assert.True(t, base.AlmostEqual(geocart.Cartesian{X: 6371000, Y: 1e-10}, 1e-9))
}

func TestCartesianJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(geocart.Cartesian{X: 1, Y: -2, Z: 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"x":1,"y":-2,"z":3}`, string(data))

	var c geocart.Cartesian
	require.NoError(t, json.Unmarshal([]byte(`{"x":4,"y":5,"z":6}`), &c))
	assert.Equal(t, geocart.Cartesian{X: 4, Y: 5, Z: 6}, c)
}
