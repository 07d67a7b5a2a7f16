package factory

import (
	"fmt"

	"CampusNav-App/internal/domain/model"
)

// OutdoorPOIFactory 静的設定から屋外POIツリーを組み立てるファクトリ。
// ネットワークI/Oは行わず、同じ設定に対して常に同じツリーを返す
type OutdoorPOIFactory struct {
	indoorFactory *IndoorPOIFactory
}

// NewOutdoorPOIFactory 新しいOutdoorPOIFactoryインスタンスを作成する
func NewOutdoorPOIFactory() *OutdoorPOIFactory {
	return &OutdoorPOIFactory{
		indoorFactory: NewIndoorPOIFactory(),
	}
}

// LoadOutdoorPOIs キャンパスツリーを宣言順で組み立てる。
// 設定の不備は起動時の致命的エラーとして返す（部分的なツリーは作らない）
func (f *OutdoorPOIFactory) LoadOutdoorPOIs() ([]*model.Campus, error) {
	if err := validateCampusConfigs(campusConfigs); err != nil {
		return nil, fmt.Errorf("POI設定の検証に失敗: %w", err)
	}

	campuses := make([]*model.Campus, 0, len(campusConfigs))
	for _, campusCfg := range campusConfigs {
		campus := &model.Campus{
			Name:        campusCfg.name,
			Coordinates: model.NewCoordinates(campusCfg.lat, campusCfg.lng),
			IconRef:     model.IconRefCampus,
		}
		for _, buildingCfg := range campusCfg.buildings {
			campus.Buildings = append(campus.Buildings, f.buildBuilding(buildingCfg))
		}
		campuses = append(campuses, campus)
	}
	return campuses, nil
}

// buildBuilding 建物を組み立て、設定された階の屋内マップを紐付ける。
// 屋内マップを持つ建物はアウトラインとラベルが初期表示される
func (f *OutdoorPOIFactory) buildBuilding(cfg buildingConfig) *model.Building {
	building := &model.Building{
		Name:           cfg.name,
		Code:           cfg.code,
		Coordinates:    model.NewCoordinates(cfg.lat, cfg.lng),
		IconRef:        model.IconRefBuilding,
		OutlineVisible: true,
		LabelVisible:   true,
	}

	if len(cfg.indoorFloors) > 0 {
		building.FloorNumbers = append([]int(nil), cfg.indoorFloors...)
		building.IndoorMaps = make(map[int]*model.IndoorMap, len(cfg.indoorFloors))
		for _, floor := range cfg.indoorFloors {
			building.IndoorMaps[floor] = f.indoorFactory.BuildIndoorMap(floor, cfg.code)
		}
	}
	return building
}

// validateCampusConfigs 静的設定の整合性を検証する
func validateCampusConfigs(configs []campusConfig) error {
	if len(configs) == 0 {
		return fmt.Errorf("キャンパスが1つも定義されていません")
	}

	seenNames := make(map[string]struct{})
	for _, campusCfg := range configs {
		if campusCfg.name == "" {
			return fmt.Errorf("名前のないキャンパスがあります")
		}
		if err := validateLatLng(campusCfg.lat, campusCfg.lng); err != nil {
			return fmt.Errorf("キャンパス %s: %w", campusCfg.name, err)
		}
		if _, ok := seenNames[campusCfg.name]; ok {
			return fmt.Errorf("POI名が重複しています: %s", campusCfg.name)
		}
		seenNames[campusCfg.name] = struct{}{}

		for _, buildingCfg := range campusCfg.buildings {
			if buildingCfg.name == "" || buildingCfg.code == "" {
				return fmt.Errorf("キャンパス %s: 名前またはコードのない建物があります", campusCfg.name)
			}
			if err := validateLatLng(buildingCfg.lat, buildingCfg.lng); err != nil {
				return fmt.Errorf("建物 %s: %w", buildingCfg.name, err)
			}
			if _, ok := seenNames[buildingCfg.name]; ok {
				return fmt.Errorf("POI名が重複しています: %s", buildingCfg.name)
			}
			seenNames[buildingCfg.name] = struct{}{}
		}
	}
	return nil
}

func validateLatLng(lat, lng float64) error {
	if lat < -90 || lat > 90 {
		return fmt.Errorf("緯度が範囲外です: %f", lat)
	}
	if lng < -180 || lng > 180 {
		return fmt.Errorf("経度が範囲外です: %f", lng)
	}
	return nil
}
