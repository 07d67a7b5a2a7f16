package model

import (
	"fmt"
	"time"
)

// TransportMode 屋外ルートの移動手段
type TransportMode string

const (
	TransportModeDriving   TransportMode = "DRIVING"
	TransportModeWalking   TransportMode = "WALKING"
	TransportModeBicycling TransportMode = "BICYCLING"
	TransportModeTransit   TransportMode = "TRANSIT"
)

// IsValid 定義済みのTransportModeかをチェック
func (m TransportMode) IsValid() bool {
	switch m {
	case TransportModeDriving, TransportModeWalking, TransportModeBicycling, TransportModeTransit:
		return true
	}
	return false
}

// GetAllTransportModes 全移動手段の一覧を取得する
func GetAllTransportModes() []TransportMode {
	return []TransportMode{
		TransportModeDriving,
		TransportModeWalking,
		TransportModeBicycling,
		TransportModeTransit,
	}
}

// Route 屋外・屋内ルートが満たすインターフェース（閉じたバリアント: OutdoorRoute / IndoorRoute）
type Route interface {
	GetStartCoordinates() Coordinates
	GetEndCoordinates() Coordinates
	GetStartTime() *time.Time
	GetEndTime() *time.Time
}

// OutdoorRoute キャンパス間・屋外の移動ルート
type OutdoorRoute struct {
	RouteID          string        `json:"route_id"`
	StartCoordinates Coordinates   `json:"start_coordinates"`
	EndCoordinates   Coordinates   `json:"end_coordinates"`
	StartTime        *time.Time    `json:"start_time,omitempty"`
	EndTime          *time.Time    `json:"end_time,omitempty"`
	TransportMode    TransportMode `json:"transport_mode"`

	// Polyline は経路検索コラボレーターが返した符号化ポリライン（任意）
	Polyline string `json:"polyline,omitempty"`
	// DurationSeconds / DistanceMeters はコラボレーターが返した参考値
	DurationSeconds int `json:"duration_seconds,omitempty"`
	DistanceMeters  int `json:"distance_meters,omitempty"`
}

func (r *OutdoorRoute) GetStartCoordinates() Coordinates { return r.StartCoordinates }
func (r *OutdoorRoute) GetEndCoordinates() Coordinates   { return r.EndCoordinates }
func (r *OutdoorRoute) GetStartTime() *time.Time         { return r.StartTime }
func (r *OutdoorRoute) GetEndTime() *time.Time           { return r.EndTime }

// ToDirectionsRequest ルートの条件から経路検索リクエストを組み立てる
func (r *OutdoorRoute) ToDirectionsRequest() *DirectionsRequest {
	return &DirectionsRequest{
		Origin:              r.StartCoordinates,
		Destination:         r.EndCoordinates,
		DepartureTime:       r.StartTime,
		ArrivalTime:         r.EndTime,
		Mode:                r.TransportMode,
		ProvideAlternatives: true,
	}
}

// IndoorRoute 建物内のルート。RouteStepsは移動順に並ぶ
type IndoorRoute struct {
	RouteID          string      `json:"route_id"`
	StartCoordinates Coordinates `json:"start_coordinates"`
	EndCoordinates   Coordinates `json:"end_coordinates"`
	StartTime        *time.Time  `json:"start_time,omitempty"`
	EndTime          *time.Time  `json:"end_time,omitempty"`
	RouteSteps       []RouteStep `json:"route_steps"`
}

func (r *IndoorRoute) GetStartCoordinates() Coordinates { return r.StartCoordinates }
func (r *IndoorRoute) GetEndCoordinates() Coordinates   { return r.EndCoordinates }
func (r *IndoorRoute) GetStartTime() *time.Time         { return r.StartTime }
func (r *IndoorRoute) GetEndTime() *time.Time           { return r.EndTime }

// StepsForFloor 指定階に属するステップのみを順序を保って返す
func (r *IndoorRoute) StepsForFloor(floor int) []RouteStep {
	var steps []RouteStep
	for _, step := range r.RouteSteps {
		if step.StartCoordinate.FloorNumber() == floor && step.EndCoordinate.FloorNumber() == floor {
			steps = append(steps, step)
		}
	}
	return steps
}

// RouteStep 屋内ルートの1区間。1つの階に閉じたポリライン区間を表す
type RouteStep struct {
	StartCoordinate Coordinates   `json:"start_coordinate"`
	EndCoordinate   Coordinates   `json:"end_coordinate"`
	Path            []Coordinates `json:"path"`
}

// NewRouteStep 幾何的な不変条件を検証した上でRouteStepを作成する。
// Pathの先頭は始点、末尾は終点と一致していなければならない。
// 始点と終点は同じ階に属していなければならない。
func NewRouteStep(start, end Coordinates, path []Coordinates) (RouteStep, error) {
	if len(path) == 0 {
		return RouteStep{}, fmt.Errorf("ルートステップの作成に失敗: pathが空です")
	}
	if !path[0].Equals(start) {
		return RouteStep{}, fmt.Errorf("ルートステップの作成に失敗: pathの先頭が始点と一致しません")
	}
	if !path[len(path)-1].Equals(end) {
		return RouteStep{}, fmt.Errorf("ルートステップの作成に失敗: pathの末尾が終点と一致しません")
	}
	if start.FloorNumber() != end.FloorNumber() {
		return RouteStep{}, fmt.Errorf("ルートステップの作成に失敗: 始点(%d階)と終点(%d階)が同じ階ではありません",
			start.FloorNumber(), end.FloorNumber())
	}
	return RouteStep{StartCoordinate: start, EndCoordinate: end, Path: path}, nil
}
