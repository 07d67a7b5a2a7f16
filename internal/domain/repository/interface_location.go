package repository

import (
	"context"

	"CampusNav-App/internal/domain/model"
)

// LocationProvider デバイスの現在位置を取得する外部コラボレーター。
// 取得できない場合はnilを返してよい（致命的ではない）
type LocationProvider interface {
	GetCurrentPosition(ctx context.Context) (*model.LatLng, error)
}
