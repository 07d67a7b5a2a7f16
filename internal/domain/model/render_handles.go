package model

import "github.com/paulmach/orb"

// MapOptions 地図作成時のオプション
type MapOptions struct {
	Center LatLng  `json:"center"`
	Zoom   float64 `json:"zoom"`
}

// MapHandle レンダラーが作成した地図への参照
type MapHandle interface {
	SetCenter(center LatLng)
	SetZoom(zoom float64)
	Zoom() float64
	Bounds() orb.Bound
}

// MarkerHandle 地図上のマーカーへの参照
type MarkerHandle interface {
	SetVisible(visible bool)
	Position() LatLng
	Remove()
}

// PolylineHandle 地図上のポリラインへの参照。SetMap(nil)で地図から外れる
type PolylineHandle interface {
	SetMap(m MapHandle)
}

// DirectionsRendererHandle 経路候補の描画を担うレンダラーへの参照。
// SetRouteIndexに-1を渡した場合はどの候補もハイライトされない
type DirectionsRendererHandle interface {
	SetMap(m MapHandle)
	SetDirections(result *DirectionsResult)
	SetRouteIndex(index int)
}
