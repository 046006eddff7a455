package attendances

import (
	"testing"

	"Backend-Gatherly/src/models"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	burapha := models.GeoPoint{Lat: 13.2827, Lng: 100.9256}

	t.Run("SamePointIsZero", func(t *testing.T) {
		assert.Equal(t, 0.0, HaversineDistance(burapha, burapha))
	})

	t.Run("Symmetric", func(t *testing.T) {
		other := models.GeoPoint{Lat: 13.2900, Lng: 100.9300}
		assert.InDelta(t, HaversineDistance(burapha, other), HaversineDistance(other, burapha), 0.0001)
	})

	t.Run("KnownDistanceRoughlyCorrect", func(t *testing.T) {
		// ต่างกัน 0.01 องศาละติจูด ~ 1.11 กม.
		north := models.GeoPoint{Lat: burapha.Lat + 0.01, Lng: burapha.Lng}
		d := HaversineDistance(burapha, north)
		assert.InDelta(t, 1112.0, d, 5.0)
	})
}

func TestVerifyGeofence(t *testing.T) {
	target := models.GeoPoint{Lat: 13.2827, Lng: 100.9256}

	t.Run("InsideRadius", func(t *testing.T) {
		claimed := models.GeoPoint{Lat: 13.28275, Lng: 100.92565}
		ok, distance := VerifyGeofence(claimed, target, models.DefaultGeofenceRadius)
		assert.True(t, ok)
		assert.Less(t, distance, models.DefaultGeofenceRadius)
	})

	t.Run("OutsideRadius", func(t *testing.T) {
		claimed := models.GeoPoint{Lat: 13.2927, Lng: 100.9256}
		ok, distance := VerifyGeofence(claimed, target, models.DefaultGeofenceRadius)
		assert.False(t, ok)
		assert.Greater(t, distance, models.DefaultGeofenceRadius)
	})

	t.Run("ExactPointAlwaysVerifies", func(t *testing.T) {
		ok, distance := VerifyGeofence(target, target, 0)
		assert.True(t, ok)
		assert.Equal(t, 0.0, distance)
	})

	t.Run("WiderRadiusAccepts", func(t *testing.T) {
		claimed := models.GeoPoint{Lat: 13.2927, Lng: 100.9256}
		ok, _ := VerifyGeofence(claimed, target, 2000)
		assert.True(t, ok)
	})
}
