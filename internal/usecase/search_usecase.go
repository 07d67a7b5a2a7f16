package usecase

import (
	"context"

	"CampusNav-App/internal/domain/model"
	"CampusNav-App/internal/domain/service"
)

// SearchUseCase 検索の入口をホストUIへ公開するユースケース
type SearchUseCase interface {
	Search(ctx context.Context, query string) (*model.SearchOutcome, error)
	SelectIndoorResult(code string) (*model.PlaceSelection, error)
	SelectOutdoorResult(place model.PlaceResult) *model.PlaceSelection
	Reset()
}

type searchUseCaseImpl struct {
	searchService *service.SearchService
	mapHandle     model.MapHandle
}

// NewSearchUseCase 新しいSearchUseCaseインスタンスを作成
func NewSearchUseCase(searchService *service.SearchService, mapHandle model.MapHandle) SearchUseCase {
	return &searchUseCaseImpl{
		searchService: searchService,
		mapHandle:     mapHandle,
	}
}

func (u *searchUseCaseImpl) Search(ctx context.Context, query string) (*model.SearchOutcome, error) {
	return u.searchService.Search(ctx, u.mapHandle, query)
}

func (u *searchUseCaseImpl) SelectIndoorResult(code string) (*model.PlaceSelection, error) {
	return u.searchService.SelectIndoorResult(code)
}

func (u *searchUseCaseImpl) SelectOutdoorResult(place model.PlaceResult) *model.PlaceSelection {
	return u.searchService.SelectOutdoorResult(place)
}

func (u *searchUseCaseImpl) Reset() {
	u.searchService.Reset()
}
