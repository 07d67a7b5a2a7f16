package service

import (
	"context"
	"fmt"
	"log"

	"CampusNav-App/internal/domain/factory"
	"CampusNav-App/internal/domain/model"
	"CampusNav-App/internal/domain/repository"
)

// MapService 屋外POIツリーの集約を所有するサービス。
// ツリーはファクトリにより起動時に一度だけ構築され、以降は可視フラグと
// 目的地マーカー以外は変更されない
type MapService struct {
	outdoorMap *model.OutdoorMap

	renderer    repository.MapRenderer
	location    repository.LocationProvider
	placeSearch repository.PlaceSearchProvider
	poiFactory  *factory.AbstractPOIFactory
}

// NewMapService ファクトリで屋外POIツリーを構築してMapServiceを作成する。
// 設定の不備はここで致命的エラーとして返る
func NewMapService(
	poiFactory *factory.AbstractPOIFactory,
	renderer repository.MapRenderer,
	location repository.LocationProvider,
	placeSearch repository.PlaceSearchProvider,
) (*MapService, error) {
	outdoorFactory := poiFactory.CreateOutdoorPOIFactory()
	campuses, err := outdoorFactory.LoadOutdoorPOIs()
	if err != nil {
		return nil, fmt.Errorf("屋外マップの構築に失敗: %w", err)
	}

	// キャンパスと建物を宣言順のままフラットに集約へ登録する
	var pois []model.OutdoorPOI
	for _, campus := range campuses {
		pois = append(pois, campus)
		for _, building := range campus.Buildings {
			pois = append(pois, building)
		}
	}

	return &MapService{
		outdoorMap:  model.NewOutdoorMap(pois),
		renderer:    renderer,
		location:    location,
		placeSearch: placeSearch,
		poiFactory:  poiFactory,
	}, nil
}

// LoadMap 地図を作成する。現在位置が取れればそこを中心に、
// 取れなければSGWキャンパスを中心にする（位置取得失敗は致命的ではない）
func (s *MapService) LoadMap(ctx context.Context) model.MapHandle {
	options := model.MapOptions{
		Center: model.SGWCoordinates.ToLatLng(),
		Zoom:   model.DefaultMapZoom,
	}

	position, err := s.location.GetCurrentPosition(ctx)
	if err != nil || position == nil {
		if err != nil {
			log.Printf("⚠️ 現在位置の取得に失敗、既定の中心を使用: %v", err)
		}
		return s.renderer.CreateMap(options.Center, options)
	}

	options.Center = *position
	mapHandle := s.renderer.CreateMap(options.Center, options)
	s.renderer.CreateMarker(*position, mapHandle, model.IconRefLocation)
	s.placeSearch.EnableService(mapHandle)
	return mapHandle
}

// GetUserLocation 現在位置を返す。取得できない場合はSGWキャンパスの座標を返す
func (s *MapService) GetUserLocation(ctx context.Context) model.LatLng {
	position, err := s.location.GetCurrentPosition(ctx)
	if err != nil || position == nil {
		return model.SGWCoordinates.ToLatLng()
	}
	return *position
}

// GetOutdoorMap 屋外マップ集約を返す
func (s *MapService) GetOutdoorMap() *model.OutdoorMap {
	return s.outdoorMap
}

// GetPOI 名前でPOIを検索する
func (s *MapService) GetPOI(name string) model.OutdoorPOI {
	return s.outdoorMap.GetPOI(name)
}

// GetPOIs 全POIを宣言順で返す
func (s *MapService) GetPOIs() []model.OutdoorPOI {
	return s.outdoorMap.GetPOIs()
}

// LoadIndoorMaps フォーカス建物（Hallビル）の階数→屋内マップの対応を返す
func (s *MapService) LoadIndoorMaps() map[int]*model.IndoorMap {
	building := s.outdoorMap.GetBuilding(model.HallBuildingName)
	if building == nil {
		return map[int]*model.IndoorMap{}
	}
	return building.IndoorMaps
}
