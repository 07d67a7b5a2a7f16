package model

import "github.com/paulmach/orb"

// LatLng 緯度経度を表す基本的な型（レンダラーや経路検索とのやり取りで使用）
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ToPoint orb.Point（経度・緯度の順）に変換する
func (l LatLng) ToPoint() orb.Point {
	return orb.Point{l.Lng, l.Lat}
}

// Coordinates 地図上の位置を表す不変の値型。
// Floorがnilの場合は屋外の地点を表す。
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Floor     *int    `json:"floor,omitempty"`
}

// NewCoordinates 屋外の座標を作成する
func NewCoordinates(lat, lng float64) Coordinates {
	return Coordinates{Latitude: lat, Longitude: lng}
}

// NewIndoorCoordinates 階数付きの屋内座標を作成する
func NewIndoorCoordinates(lat, lng float64, floor int) Coordinates {
	f := floor
	return Coordinates{Latitude: lat, Longitude: lng, Floor: &f}
}

// HasFloor 階数が設定されているか（屋内の座標か）をチェック
func (c Coordinates) HasFloor() bool {
	return c.Floor != nil
}

// FloorNumber 階数を返す。屋外の座標の場合は0を返す
func (c Coordinates) FloorNumber() int {
	if c.Floor == nil {
		return 0
	}
	return *c.Floor
}

// Equals 全ての成分が一致するかを比較する
func (c Coordinates) Equals(other Coordinates) bool {
	if c.Latitude != other.Latitude || c.Longitude != other.Longitude {
		return false
	}
	if (c.Floor == nil) != (other.Floor == nil) {
		return false
	}
	return c.Floor == nil || *c.Floor == *other.Floor
}

// ToLatLng レンダラー向けのLatLng型に変換する（階数情報は落ちる）
func (c Coordinates) ToLatLng() LatLng {
	return LatLng{Lat: c.Latitude, Lng: c.Longitude}
}

// ToPoint orb.Point（経度・緯度の順）に変換する
func (c Coordinates) ToPoint() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}
