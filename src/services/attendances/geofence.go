package attendances

import (
	"math"

	"Backend-Gatherly/src/models"
)

const earthRadiusMeters = 6371000.0

// HaversineDistance ระยะทาง great-circle ระหว่างสองพิกัด (เมตร)
func HaversineDistance(a, b models.GeoPoint) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// VerifyGeofence ตรวจว่าพิกัดที่ claim อยู่ในรัศมีของเป้าหมายหรือไม่
func VerifyGeofence(claimed, target models.GeoPoint, radiusMeters float64) (bool, float64) {
	distance := HaversineDistance(claimed, target)
	return distance <= radiusMeters, distance
}
