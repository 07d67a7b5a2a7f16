package repository

import (
	"CampusNav-App/internal/domain/model"
)

// ShuttleProvider キャンパス間シャトルのルート判定と描画を担う外部コラボレーター
type ShuttleProvider interface {
	// IsShuttleRoute はルートがシャトル便の対象区間かを判定する
	IsShuttleRoute(route *model.OutdoorRoute) bool
	// DisplayShuttleRoute はシャトルルートの描画を引き受ける
	DisplayShuttleRoute(m model.MapHandle, route *model.OutdoorRoute)
}
