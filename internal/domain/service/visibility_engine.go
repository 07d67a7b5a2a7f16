package service

import (
	"github.com/paulmach/orb"

	"CampusNav-App/internal/domain/helper"
	"CampusNav-App/internal/domain/model"
)

// VisibilityConfig 可視性判定のしきい値設定。グローバルな定数ではなく
// コンストラクタへ明示的に渡される
type VisibilityConfig struct {
	// BuildingFocusZoom 以上で建物のアウトラインとラベルを隠す
	BuildingFocusZoom float64
	// FloorToggleZoom 以上（かつフォーカス建物が画面内）でフロア切替ボタンを表示する
	FloorToggleZoom float64
	// BuildingOverrides 建物名ごとのしきい値の上書き
	BuildingOverrides map[string]float64
}

// DefaultVisibilityConfig 既定のしきい値設定を返す
func DefaultVisibilityConfig() VisibilityConfig {
	return VisibilityConfig{
		BuildingFocusZoom: model.BuildingFocusZoom,
		FloorToggleZoom:   model.FloorToggleZoom,
	}
}

// VisibilityEngine ビューポート確定イベントごとに、ズームと境界だけから
// オーバーレイの可視状態を再計算するエンジン。履歴は持たず、毎回ゼロから
// 全状態を計算し直す（冪等）
type VisibilityEngine struct {
	outdoorMap        *model.OutdoorMap
	config            VisibilityConfig
	focusBuildingName string

	floorToggle *FloorToggleBroadcaster
	campus      *CampusBroadcaster
}

// NewVisibilityEngine 新しいVisibilityEngineを作成する
func NewVisibilityEngine(outdoorMap *model.OutdoorMap, config VisibilityConfig) *VisibilityEngine {
	return &VisibilityEngine{
		outdoorMap:        outdoorMap,
		config:            config,
		focusBuildingName: model.HallBuildingName,
		floorToggle:       NewFloorToggleBroadcaster(),
		campus:            NewCampusBroadcaster(),
	}
}

// OnViewportSettled ビューポート確定イベントを処理し、全ての可視状態を再計算する
func (e *VisibilityEngine) OnViewportSettled(zoom float64, bounds orb.Bound) {
	e.trackBuildingVisibility(zoom)
	e.trackFloorToggleButton(zoom, bounds)
	e.trackCampusInBounds(bounds)
}

// trackBuildingVisibility 各建物のアウトラインとラベルの可視状態を更新する。
// しきい値未満のズームで表示、しきい値以上で非表示
func (e *VisibilityEngine) trackBuildingVisibility(zoom float64) {
	for _, poi := range e.outdoorMap.GetPOIs() {
		building, ok := poi.(*model.Building)
		if !ok {
			continue
		}
		if zoom < e.thresholdFor(building) {
			building.ShowOutline()
			building.ShowLabel()
		} else {
			building.HideOutline()
			building.HideLabel()
		}
	}
}

// trackFloorToggleButton フロア切替ボタンの表示状態を判定して配信する。
// ズームがしきい値以上かつフォーカス建物のマーカー位置が画面内の場合のみ表示
func (e *VisibilityEngine) trackFloorToggleButton(zoom float64, bounds orb.Bound) {
	building := e.outdoorMap.GetBuilding(e.focusBuildingName)
	if building == nil || !building.HasIndoorMaps() {
		e.floorToggle.Publish(false)
		return
	}

	inBounds := helper.BoundContains(bounds, building.Coordinates)
	e.floorToggle.Publish(zoom >= e.config.FloorToggleZoom && inBounds)
}

// trackCampusInBounds 画面内のキャンパスを判定して配信する。
// 複数のキャンパスが同時に画面内にある場合は宣言順の早い方が勝つ
func (e *VisibilityEngine) trackCampusInBounds(bounds orb.Bound) {
	for _, campus := range e.outdoorMap.GetCampuses() {
		if helper.BoundContains(bounds, campus.Coordinates) {
			e.campus.Publish(model.GetCampusSelection(campus.Name))
			return
		}
	}
	e.campus.Publish(model.CampusSelectionNone)
}

// thresholdFor 建物ごとのしきい値を返す。上書きがなければ既定値
func (e *VisibilityEngine) thresholdFor(building *model.Building) float64 {
	if override, ok := e.config.BuildingOverrides[building.Name]; ok {
		return override
	}
	return e.config.BuildingFocusZoom
}

// FloorToggleBroadcaster フロア切替ボタンの配信元を返す
func (e *VisibilityEngine) FloorToggleBroadcaster() *FloorToggleBroadcaster {
	return e.floorToggle
}

// CampusBroadcaster キャンパス選択の配信元を返す
func (e *VisibilityEngine) CampusBroadcaster() *CampusBroadcaster {
	return e.campus
}
