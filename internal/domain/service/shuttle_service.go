package service

import (
	"log"

	"CampusNav-App/internal/domain/helper"
	"CampusNav-App/internal/domain/model"
	"CampusNav-App/internal/domain/repository"
)

// shuttleStopRadiusKm シャトル乗り場とみなす campus アンカーからの距離
const shuttleStopRadiusKm = 0.4

// キャンパス間シャトルの走行経路（SGW → Loyola の主要経由点）
var shuttlePathCoordinates = []model.Coordinates{
	model.SGWCoordinates,
	model.NewCoordinates(45.4933, -73.5858),
	model.NewCoordinates(45.4869, -73.6037),
	model.NewCoordinates(45.4727, -73.6248),
	model.NewCoordinates(45.4641, -73.6333),
	model.LoyolaCoordinates,
}

// ShuttleService キャンパス間シャトルの判定と描画を行う
type ShuttleService struct {
	renderer repository.MapRenderer
}

// NewShuttleService 新しいShuttleServiceを作成する
func NewShuttleService(renderer repository.MapRenderer) *ShuttleService {
	return &ShuttleService{renderer: renderer}
}

// IsShuttleRoute 始点と終点がそれぞれ別キャンパスの乗り場圏内にあるかを判定する
func (s *ShuttleService) IsShuttleRoute(route *model.OutdoorRoute) bool {
	start := route.StartCoordinates.ToLatLng()
	end := route.EndCoordinates.ToLatLng()
	sgw := model.SGWCoordinates.ToLatLng()
	loyola := model.LoyolaCoordinates.ToLatLng()

	sgwToLoyola := helper.HaversineDistance(start, sgw) <= shuttleStopRadiusKm &&
		helper.HaversineDistance(end, loyola) <= shuttleStopRadiusKm
	loyolaToSGW := helper.HaversineDistance(start, loyola) <= shuttleStopRadiusKm &&
		helper.HaversineDistance(end, sgw) <= shuttleStopRadiusKm

	return sgwToLoyola || loyolaToSGW
}

// DisplayShuttleRoute シャトルの走行経路をポリラインとして描画する
func (s *ShuttleService) DisplayShuttleRoute(m model.MapHandle, route *model.OutdoorRoute) {
	points := helper.CoordinatesToLatLngs(shuttlePathCoordinates)
	polyline := s.renderer.CreatePolyline(points, false, "blue", 0.8, 3)
	polyline.SetMap(m)
	log.Printf("✅ シャトルルートを描画 (始点: %v)", route.StartCoordinates.ToLatLng())
}
