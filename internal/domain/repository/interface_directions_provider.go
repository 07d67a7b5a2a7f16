package repository

import (
	"context"

	"CampusNav-App/internal/domain/model"
)

// DirectionsProvider 経路候補を取得する外部コラボレーター
type DirectionsProvider interface {
	// GetRouteAlternatives はリクエスト条件に合う経路候補を返却順のまま取得する
	GetRouteAlternatives(ctx context.Context, req *model.DirectionsRequest) (*model.DirectionsResult, error)
}
