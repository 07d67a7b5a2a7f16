package repository

import (
	"CampusNav-App/internal/domain/model"
)

// MapRenderer 地図描画バックエンドへのインターフェース。
// タイル描画の実体は外部コラボレーターであり、コアはハンドル経由でのみ操作する
type MapRenderer interface {
	CreateMap(center model.LatLng, options model.MapOptions) model.MapHandle
	CreateMarker(position model.LatLng, m model.MapHandle, iconRef string) model.MarkerHandle
	CreatePolyline(points []model.LatLng, editable bool, color string, opacity float64, weight int) model.PolylineHandle
	GetDirectionsRenderer() model.DirectionsRendererHandle
}
