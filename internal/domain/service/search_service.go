package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"CampusNav-App/internal/domain/helper"
	"CampusNav-App/internal/domain/model"
	"CampusNav-App/internal/domain/repository"
)

const (
	// indoorMatchLimit 屋内コード検索で返す最大件数
	indoorMatchLimit = 5
	// outdoorSearchMinLength フリーテキスト検索を発行する最小クエリ長。
	// デバウンスではなく、外部サービスの呼び出し回数を抑えるためのゲート
	outdoorSearchMinLength = 3
)

// SearchService 検索クエリを屋内コード検索かフリーテキスト検索に振り分けるサービス
type SearchService struct {
	placeSearch repository.PlaceSearchProvider
	indoorCodes *model.IndoorCodeIndex

	// searchSeq はフリーテキスト検索チャネルのリクエスト連番。
	// 最新でない応答は破棄される（経路表示チャネルとは独立の連番）
	searchSeq atomic.Uint64

	mu      sync.Mutex
	current *model.SearchOutcome
}

// NewSearchService 新しいSearchServiceを作成する
func NewSearchService(placeSearch repository.PlaceSearchProvider, indoorCodes *model.IndoorCodeIndex) *SearchService {
	return &SearchService{
		placeSearch: placeSearch,
		indoorCodes: indoorCodes,
	}
}

// Search クエリを分類して検索を実行する。
// 空クエリはリセット。屋内コードの形状に一致してプレフィックス一致があれば
// 屋外検索は行わない。それ以外は3文字以上の場合のみフリーテキスト検索を発行する
func (s *SearchService) Search(ctx context.Context, m model.MapHandle, query string) (*model.SearchOutcome, error) {
	if len(query) == 0 {
		return s.apply(&model.SearchOutcome{Kind: model.SearchOutcomeReset}), nil
	}

	normalized := helper.NormalizeIndoorCode(query)
	if helper.ClassifyIndoorCode(normalized) != helper.IndoorCodeShapeNone {
		if matches := s.indoorCodes.PrefixMatch(normalized, indoorMatchLimit); len(matches) > 0 {
			return s.apply(&model.SearchOutcome{
				Kind:        model.SearchOutcomeIndoorMatches,
				IndoorCodes: matches,
			}), nil
		}
	}

	if len(query) < outdoorSearchMinLength {
		return s.apply(&model.SearchOutcome{Kind: model.SearchOutcomeNoResults}), nil
	}

	return s.searchOutdoor(ctx, m, query)
}

// searchOutdoor フリーテキスト検索を発行する。キーストロークごとに新しい
// リクエストが飛ぶため、応答が発行順と逆に届いても古い結果が新しい結果を
// 上書きしないよう連番で破棄する
func (s *SearchService) searchOutdoor(ctx context.Context, m model.MapHandle, query string) (*model.SearchOutcome, error) {
	seq := s.searchSeq.Add(1)

	places, err := s.placeSearch.TextSearch(ctx, m, query)
	if err != nil {
		// 検索の失敗は回復可能。直前の結果を保ったままにする
		log.Printf("⚠️ フリーテキスト検索に失敗: %v", err)
		return s.currentOutcome(), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.searchSeq.Load() {
		log.Printf("⚠️ 検索応答: %v (seq=%d)", model.ErrStaleResponse, seq)
		return s.current, nil
	}

	outcome := &model.SearchOutcome{Kind: model.SearchOutcomeNoResults}
	if len(places) > 0 {
		outcome = &model.SearchOutcome{
			Kind:   model.SearchOutcomeOutdoorResults,
			Places: places,
		}
	}
	s.current = outcome
	return outcome, nil
}

// SelectIndoorResult 屋内コードの選択を処理する。コードが座標に解決できない
// 場合は選択イベントを発行せず、区別可能なエラーを返す
func (s *SearchService) SelectIndoorResult(code string) (*model.PlaceSelection, error) {
	coords, ok := s.indoorCodes.Resolve(code)
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrLocationNotFound, code)
	}

	s.Reset()
	return &model.PlaceSelection{
		Name:        code,
		Coordinates: &coords,
		IndoorCode:  code,
	}, nil
}

// SelectOutdoorResult 屋外検索結果の選択を処理し、検索バーを初期状態に戻す
func (s *SearchService) SelectOutdoorResult(place model.PlaceResult) *model.PlaceSelection {
	s.Reset()
	coords := model.NewCoordinates(place.Location.Lat, place.Location.Lng)
	return &model.PlaceSelection{
		Name:        place.Name,
		Coordinates: &coords,
		Place:       &place,
	}
}

// Reset 検索状態を初期状態に戻す
func (s *SearchService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &model.SearchOutcome{Kind: model.SearchOutcomeReset}
}

// CurrentOutcome 現在表示されているべき検索結果を返す
func (s *SearchService) CurrentOutcome() *model.SearchOutcome {
	return s.currentOutcome()
}

func (s *SearchService) currentOutcome() *model.SearchOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// apply 検索結果を現在の状態として記録する
func (s *SearchService) apply(outcome *model.SearchOutcome) *model.SearchOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = outcome
	return outcome
}
