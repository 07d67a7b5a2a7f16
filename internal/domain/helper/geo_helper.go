package helper

import (
	"math"

	"github.com/paulmach/orb"

	"CampusNav-App/internal/domain/model"
)

const earthRadiusKm = 6371.0

// HaversineDistance は2地点間の距離を計算する (km)
func HaversineDistance(p1, p2 model.LatLng) float64 {
	lat1 := p1.Lat * math.Pi / 180
	lng1 := p1.Lng * math.Pi / 180
	lat2 := p2.Lat * math.Pi / 180
	lng2 := p2.Lng * math.Pi / 180
	dLat := lat2 - lat1
	dLng := lng2 - lng1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// HaversineDistanceCoordinates は2つの座標間の距離を計算する (km)
func HaversineDistanceCoordinates(c1, c2 model.Coordinates) float64 {
	return HaversineDistance(c1.ToLatLng(), c2.ToLatLng())
}

// BoundContains は座標がビューポート境界内にあるかをチェックする
func BoundContains(bound orb.Bound, coords model.Coordinates) bool {
	return bound.Contains(coords.ToPoint())
}

// PadBound は境界に約padKmキロメートル分の余裕を持たせる
func PadBound(bound orb.Bound, padKm float64) orb.Bound {
	// 緯度1度 ≈ 111km
	return bound.Pad(padKm / 111.0)
}

// CoordinatesToLatLngs は座標列をレンダラー向けのLatLng列に変換する
func CoordinatesToLatLngs(coordinates []model.Coordinates) []model.LatLng {
	latLngs := make([]model.LatLng, 0, len(coordinates))
	for _, coords := range coordinates {
		latLngs = append(latLngs, coords.ToLatLng())
	}
	return latLngs
}
