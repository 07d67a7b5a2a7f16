package location

import (
	"context"
	"os"
	"strconv"

	"CampusNav-App/internal/domain/model"
)

// EnvLocationProvider は環境変数からデバイス位置を取得する実装。
// 実機の位置情報取得は外部コラボレーターであり、サーバー環境では
// DEVICE_LAT / DEVICE_LNG が設定されていればその位置を返す
type EnvLocationProvider struct{}

// NewEnvLocationProvider は新しいプロバイダを生成する
func NewEnvLocationProvider() *EnvLocationProvider {
	return &EnvLocationProvider{}
}

// GetCurrentPosition は現在位置を返す。未設定の場合はnil（致命的ではない）
func (p *EnvLocationProvider) GetCurrentPosition(ctx context.Context) (*model.LatLng, error) {
	latStr := os.Getenv("DEVICE_LAT")
	lngStr := os.Getenv("DEVICE_LNG")
	if latStr == "" || lngStr == "" {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil, nil
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return nil, nil
	}
	return &model.LatLng{Lat: lat, Lng: lng}, nil
}
