package factory

import (
	"CampusNav-App/internal/domain/model"
)

// IndoorPOIFactory 静的設定から屋内POIを組み立てるファクトリ。
// ステートレスで、同じ入力に対して常に同じグラフを返す
type IndoorPOIFactory struct{}

// NewIndoorPOIFactory 新しいIndoorPOIFactoryインスタンスを作成する
func NewIndoorPOIFactory() *IndoorPOIFactory {
	return &IndoorPOIFactory{}
}

// LoadFloorPOIs 指定階の屋内POIを宣言順で組み立てる。
// 未知の階は空のスライスを返す（致命的ではない）
func (f *IndoorPOIFactory) LoadFloorPOIs(floor int) []model.IndoorPOI {
	configs, ok := hallFloorConfigs[floor]
	if !ok {
		return []model.IndoorPOI{}
	}

	pois := make([]model.IndoorPOI, 0, len(configs))
	for _, cfg := range configs {
		if cfg.linkType != "" {
			pois = append(pois, f.buildLink(cfg, floor))
		} else {
			pois = append(pois, &model.Room{
				Name:        cfg.name,
				Coordinates: model.NewIndoorCoordinates(cfg.lat, cfg.lng, floor),
				IconRef:     cfg.iconRef,
			})
		}
	}
	return pois
}

// BuildIndoorMap 指定階のIndoorMapを組み立てる
func (f *IndoorPOIFactory) BuildIndoorMap(floor int, buildingCode string) *model.IndoorMap {
	return model.NewIndoorMap(floor, buildingCode, f.LoadFloorPOIs(floor))
}

// LoadIndoorCodeIndex 屋内コード索引を宣言順のまま組み立てる
func (f *IndoorPOIFactory) LoadIndoorCodeIndex() *model.IndoorCodeIndex {
	entries := make([]model.IndoorCodeEntry, 0, len(indoorCodeConfigs))
	for _, cfg := range indoorCodeConfigs {
		entries = append(entries, model.IndoorCodeEntry{
			Code:        cfg.code,
			Coordinates: model.NewIndoorCoordinates(cfg.lat, cfg.lng, cfg.floor),
		})
	}
	return model.NewIndoorCodeIndex(entries)
}

// buildLink 接続先の各階への出口座標を持つLinkを組み立てる
func (f *IndoorPOIFactory) buildLink(cfg indoorPOIConfig, floor int) *model.Link {
	exits := make([]model.Coordinates, 0, len(cfg.linkFloors))
	for _, exitFloor := range cfg.linkFloors {
		exits = append(exits, model.NewIndoorCoordinates(cfg.lat, cfg.lng, exitFloor))
	}
	return &model.Link{
		Name:            cfg.name,
		Coordinates:     model.NewIndoorCoordinates(cfg.lat, cfg.lng, floor),
		IconRef:         cfg.iconRef,
		LinkType:        cfg.linkType,
		ExitCoordinates: exits,
	}
}
