package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"CampusNav-App/internal/domain/helper"
	"CampusNav-App/internal/domain/model"
	"CampusNav-App/internal/domain/repository"
)

// RouteDisplayService ルートの描画を調停するサービス。
// 屋外ルートと屋内ルートをバリアントで振り分け、屋内ポリラインという
// 唯一の共有リソースを排他的に管理する
type RouteDisplayService struct {
	renderer   repository.MapRenderer
	directions repository.DirectionsProvider
	shuttle    repository.ShuttleProvider
	mapService *MapService

	// drawnPolyline は描画済みの屋内ポリライン。常に最大1本しか地図に載らない
	mu            sync.Mutex
	drawnPolyline model.PolylineHandle

	// routeSeq は経路検索チャネルのリクエスト連番。最新でない応答は破棄される
	routeSeq atomic.Uint64
}

// NewRouteDisplayService 新しいRouteDisplayServiceを作成する
func NewRouteDisplayService(
	renderer repository.MapRenderer,
	directions repository.DirectionsProvider,
	shuttle repository.ShuttleProvider,
	mapService *MapService,
) *RouteDisplayService {
	return &RouteDisplayService{
		renderer:   renderer,
		directions: directions,
		shuttle:    shuttle,
		mapService: mapService,
	}
}

// DisplayRoute ルートをバリアントで振り分けて描画する。
// 未知のバリアントはプログラミングエラーとして即座に返す
func (s *RouteDisplayService) DisplayRoute(ctx context.Context, m model.MapHandle, route model.Route, indoorMapLevel int) error {
	switch r := route.(type) {
	case *model.OutdoorRoute:
		return s.displayOutdoorRoute(ctx, m, r)
	case *model.IndoorRoute:
		s.displayIndoorRoute(m, r, indoorMapLevel)
		return nil
	default:
		return fmt.Errorf("%w: %T", model.ErrUnknownRouteVariant, route)
	}
}

// displayOutdoorRoute 屋外ルートを描画する。シャトル便の区間は
// シャトルコラボレーターへ全面的に委譲し、それ以外は経路候補を取得して
// 開始・終了時刻が完全一致する候補だけをハイライトする
func (s *RouteDisplayService) displayOutdoorRoute(ctx context.Context, m model.MapHandle, route *model.OutdoorRoute) error {
	directionsRenderer := s.renderer.GetDirectionsRenderer()
	directionsRenderer.SetMap(m)

	if s.shuttle.IsShuttleRoute(route) {
		s.shuttle.DisplayShuttleRoute(m, route)
		return nil
	}

	seq := s.routeSeq.Add(1)

	result, err := s.directions.GetRouteAlternatives(ctx, route.ToDirectionsRequest())
	if err != nil {
		// 経路検索の失敗は回復可能。直前の表示を保ったままにする
		log.Printf("⚠️ 経路検索に失敗: %v", err)
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.routeSeq.Load() {
		// より新しい表示リクエストが発行済みのため、この応答は破棄する
		log.Printf("⚠️ 経路応答: %v (seq=%d)", model.ErrStaleResponse, seq)
		return nil
	}

	directionsRenderer.SetDirections(result)
	matchingIndex := findMatchingAlternative(result, route.StartTime, route.EndTime)
	if matchingIndex < 0 {
		log.Printf("⚠️ 開始・終了時刻に一致する経路候補がありません。ハイライトなし")
	}
	directionsRenderer.SetRouteIndex(matchingIndex)
	return nil
}

// findMatchingAlternative 候補を順に走査し、最初のレグの出発時刻がstartTime、
// 到着時刻がendTimeと秒単位で完全一致する最初の候補の添字を返す。
// 一致がなければ-1（「選択なし」の番兵値）を返す
func findMatchingAlternative(result *model.DirectionsResult, startTime, endTime *time.Time) int {
	if startTime == nil || endTime == nil {
		return -1
	}
	for i, alternative := range result.Alternatives {
		if len(alternative.Legs) == 0 {
			continue
		}
		leg := alternative.Legs[0]
		if leg.DepartureTime.Unix() == startTime.Unix() && leg.ArrivalTime.Unix() == endTime.Unix() {
			return i
		}
	}
	return -1
}

// displayIndoorRoute 屋内ルートを描画する。表示中の階に属するステップの
// パスを順に連結し、1本のポリラインとして描く。他の階のステップは
// フロア切替のたびにこの処理が再実行されて描き直される
func (s *RouteDisplayService) displayIndoorRoute(m model.MapHandle, route *model.IndoorRoute, indoorMapLevel int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// 前回のポリラインは新しい描画の前に必ず同期的に外す
	if s.drawnPolyline != nil {
		s.drawnPolyline.SetMap(nil)
		s.drawnPolyline = nil
	}

	var path []model.Coordinates
	for _, step := range route.StepsForFloor(indoorMapLevel) {
		path = append(path, step.Path...)
	}

	if len(path) > 0 {
		polyline := s.renderer.CreatePolyline(helper.CoordinatesToLatLngs(path), true, "red", 1.0, 2)
		polyline.SetMap(m)
		s.drawnPolyline = polyline
	}

	m.SetCenter(route.StartCoordinates.ToLatLng())
	m.SetZoom(model.IndoorRouteZoom)
}

// CreateDestinationMarkers ルートの始点・終点マーカーを作成する。
// マーカーは非表示で作られ、可視性の管理は各階の屋内マップに委ねられる。
// 始点と終点の階が異なる場合はそれぞれの階に自分のマーカーだけが渡る
func (s *RouteDisplayService) CreateDestinationMarkers(m model.MapHandle, route model.Route) {
	start := route.GetStartCoordinates()
	end := route.GetEndCoordinates()

	startMarker := s.renderer.CreateMarker(start.ToLatLng(), m, model.IconRefRouteStart)
	startMarker.SetVisible(false)
	endMarker := s.renderer.CreateMarker(end.ToLatLng(), m, model.IconRefRouteEnd)
	endMarker.SetVisible(false)

	indoorMaps := s.mapService.LoadIndoorMaps()
	if start.FloorNumber() == end.FloorNumber() {
		if indoorMap, ok := indoorMaps[start.FloorNumber()]; ok {
			indoorMap.SetDestinationMarkers([]model.MarkerHandle{startMarker, endMarker})
		}
		return
	}
	if indoorMap, ok := indoorMaps[start.FloorNumber()]; ok {
		indoorMap.SetDestinationMarkers([]model.MarkerHandle{startMarker})
	}
	if indoorMap, ok := indoorMaps[end.FloorNumber()]; ok {
		indoorMap.SetDestinationMarkers([]model.MarkerHandle{endMarker})
	}
}

// DeleteDestinationMarkers 全ての階の目的地マーカーを削除する
func (s *RouteDisplayService) DeleteDestinationMarkers() {
	for _, indoorMap := range s.mapService.LoadIndoorMaps() {
		indoorMap.DeleteDestinationMarkers()
	}
}
