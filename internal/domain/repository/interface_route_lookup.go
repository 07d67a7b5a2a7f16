package repository

import (
	"context"

	"CampusNav-App/internal/domain/model"
)

// RouteLookupProvider 経路候補の生データを取得する外部コラボレーター。
// RouteFactoryが生データをドメインのRouteバリアントへ変換する
type RouteLookupProvider interface {
	GetMappedRoutes(ctx context.Context, req *model.DirectionsRequest) ([]*model.RawRouteAlternative, error)
}
