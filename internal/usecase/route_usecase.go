package usecase

import (
	"context"
	"time"

	"CampusNav-App/internal/domain/model"
	"CampusNav-App/internal/domain/service"
)

// GenerateRoutesInput ルート生成の条件
type GenerateRoutesInput struct {
	Start     model.Coordinates
	End       model.Coordinates
	StartTime *time.Time
	EndTime   *time.Time
	Mode      model.TransportMode
}

// RouteUseCase ルートの生成と表示をホストUIへ公開するユースケース
type RouteUseCase interface {
	// GenerateDefaultRoutes は条件に合うルート候補を生成する
	GenerateDefaultRoutes(ctx context.Context, input GenerateRoutesInput) ([]model.Route, error)
	// GenerateAccessibleRoutes は未対応であり、常に明示的なエラーを返す
	GenerateAccessibleRoutes(ctx context.Context, input GenerateRoutesInput) ([]model.Route, error)
	// DisplayRoute はルートを描画し、屋内ルートなら目的地マーカーも作成する
	DisplayRoute(ctx context.Context, route model.Route, indoorMapLevel int) error
	// DeleteDestinationMarkers は全ての階の目的地マーカーを削除する
	DeleteDestinationMarkers()
}

type routeUseCaseImpl struct {
	routeFactory   *service.RouteFactory
	displayService *service.RouteDisplayService
	mapHandle      model.MapHandle
}

// NewRouteUseCase 新しいRouteUseCaseインスタンスを作成
func NewRouteUseCase(routeFactory *service.RouteFactory, displayService *service.RouteDisplayService, mapHandle model.MapHandle) RouteUseCase {
	return &routeUseCaseImpl{
		routeFactory:   routeFactory,
		displayService: displayService,
		mapHandle:      mapHandle,
	}
}

func (u *routeUseCaseImpl) GenerateDefaultRoutes(ctx context.Context, input GenerateRoutesInput) ([]model.Route, error) {
	return u.routeFactory.GenerateDefaultRoutes(ctx, input.Start, input.End, input.StartTime, input.EndTime, input.Mode)
}

func (u *routeUseCaseImpl) GenerateAccessibleRoutes(ctx context.Context, input GenerateRoutesInput) ([]model.Route, error) {
	return u.routeFactory.GenerateAccessibleRoutes(ctx, input.Start, input.End, input.StartTime, input.EndTime)
}

func (u *routeUseCaseImpl) DisplayRoute(ctx context.Context, route model.Route, indoorMapLevel int) error {
	if err := u.displayService.DisplayRoute(ctx, u.mapHandle, route, indoorMapLevel); err != nil {
		return err
	}
	if _, ok := route.(*model.IndoorRoute); ok {
		u.displayService.CreateDestinationMarkers(u.mapHandle, route)
	}
	return nil
}

func (u *routeUseCaseImpl) DeleteDestinationMarkers() {
	u.displayService.DeleteDestinationMarkers()
}
