package usecase

import (
	"github.com/paulmach/orb"

	"CampusNav-App/internal/domain/model"
	"CampusNav-App/internal/domain/service"
)

// ControlsState ホストUIがポーリングで取得するオーバーレイ制御の状態
type ControlsState struct {
	FloorToggleVisible bool   `json:"floor_toggle_visible"`
	CampusInBounds     string `json:"campus_in_bounds"`
}

// MapUseCase 地図まわりの操作をホストUIへ公開するユースケース
type MapUseCase interface {
	// OnViewportSettled はビューポート確定イベントを可視性エンジンへ渡す
	OnViewportSettled(zoom float64, bounds orb.Bound)

	GetPOIs() []model.OutdoorPOI
	GetPOI(name string) model.OutdoorPOI
	LoadIndoorMaps() map[int]*model.IndoorMap
	GetControlsState() ControlsState
}

// viewportSettable ビューポートを受け取れる地図ハンドル（ヘッドレス実装が満たす）
type viewportSettable interface {
	SetViewport(zoom float64, bounds orb.Bound)
}

type mapUseCaseImpl struct {
	mapService *service.MapService
	engine     *service.VisibilityEngine
	mapHandle  model.MapHandle
}

// NewMapUseCase 新しいMapUseCaseインスタンスを作成
func NewMapUseCase(mapService *service.MapService, engine *service.VisibilityEngine, mapHandle model.MapHandle) MapUseCase {
	return &mapUseCaseImpl{
		mapService: mapService,
		engine:     engine,
		mapHandle:  mapHandle,
	}
}

// OnViewportSettled はビューポート確定イベントを処理する。
// 地図ハンドルの状態を更新した上で、可視性エンジンにゼロからの再計算をさせる
func (u *mapUseCaseImpl) OnViewportSettled(zoom float64, bounds orb.Bound) {
	if settable, ok := u.mapHandle.(viewportSettable); ok {
		settable.SetViewport(zoom, bounds)
	}
	u.engine.OnViewportSettled(zoom, bounds)
}

func (u *mapUseCaseImpl) GetPOIs() []model.OutdoorPOI {
	return u.mapService.GetPOIs()
}

func (u *mapUseCaseImpl) GetPOI(name string) model.OutdoorPOI {
	return u.mapService.GetPOI(name)
}

func (u *mapUseCaseImpl) LoadIndoorMaps() map[int]*model.IndoorMap {
	return u.mapService.LoadIndoorMaps()
}

func (u *mapUseCaseImpl) GetControlsState() ControlsState {
	return ControlsState{
		FloorToggleVisible: u.engine.FloorToggleBroadcaster().Current(),
		CampusInBounds:     u.engine.CampusBroadcaster().Current().String(),
	}
}
