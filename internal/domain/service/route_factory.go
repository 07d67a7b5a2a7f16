package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"CampusNav-App/internal/domain/model"
	"CampusNav-App/internal/domain/repository"
)

// RouteFactory 経路ルックアップコラボレーターの生データから
// ドメインのRouteバリアントを組み立てるファクトリ
type RouteFactory struct {
	routeLookup repository.RouteLookupProvider
}

// NewRouteFactory 新しいRouteFactoryを作成する
func NewRouteFactory(routeLookup repository.RouteLookupProvider) *RouteFactory {
	return &RouteFactory{routeLookup: routeLookup}
}

// GenerateDefaultRoutes 条件に合う屋外ルート候補を生成する。
// modeが指定されていて未定義の値の場合は、コラボレーターを呼ぶ前に
// 同期的に検証エラーを返す。候補の順序はコラボレーターの返却順のまま保持される
func (f *RouteFactory) GenerateDefaultRoutes(
	ctx context.Context,
	start, end model.Coordinates,
	startTime, endTime *time.Time,
	mode model.TransportMode,
) ([]model.Route, error) {
	if mode != "" && !mode.IsValid() {
		return nil, fmt.Errorf("%w: %s", model.ErrInvalidTransportMode, mode)
	}

	req := &model.DirectionsRequest{
		Origin:              start,
		Destination:         end,
		DepartureTime:       startTime,
		ArrivalTime:         endTime,
		Mode:                mode,
		ProvideAlternatives: true,
	}

	alternatives, err := f.routeLookup.GetMappedRoutes(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("経路候補の取得に失敗: %w", err)
	}

	routes := make([]model.Route, 0, len(alternatives))
	for _, alt := range alternatives {
		routes = append(routes, &model.OutdoorRoute{
			RouteID:          uuid.NewString(),
			StartCoordinates: start,
			EndCoordinates:   end,
			StartTime:        alt.DepartureTime,
			EndTime:          alt.ArrivalTime,
			TransportMode:    mode,
			Polyline:         alt.Polyline,
			DurationSeconds:  alt.DurationSeconds,
			DistanceMeters:   alt.DistanceMeters,
		})
	}
	return routes, nil
}

// GenerateAccessibleRoutes バリアフリールートの生成。未対応の機能であり、
// 推測で実装せず明示的にエラーを返す
func (f *RouteFactory) GenerateAccessibleRoutes(
	ctx context.Context,
	start, end model.Coordinates,
	startTime, endTime *time.Time,
) ([]model.Route, error) {
	return nil, model.ErrAccessibleRoutesNotSupported
}
