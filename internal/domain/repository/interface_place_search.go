package repository

import (
	"context"

	"CampusNav-App/internal/domain/model"
)

// PlaceSearchProvider フリーテキストの場所検索を行う外部コラボレーター
type PlaceSearchProvider interface {
	// EnableService は地図に検索サービスを紐付ける
	EnableService(m model.MapHandle)
	// TextSearch はクエリに一致する場所を返却順のまま取得する
	TextSearch(ctx context.Context, m model.MapHandle, query string) ([]model.PlaceResult, error)
}
