package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"CampusNav-App/internal/domain/model"
)

// GooglePlacesProvider はGoogle Places Text Search APIを使用した場所検索の実装
type GooglePlacesProvider struct {
	apiKey     string
	httpClient *http.Client
}

// NewGooglePlacesProvider は新しいプロバイダを生成する
func NewGooglePlacesProvider(apiKey string) *GooglePlacesProvider {
	return &GooglePlacesProvider{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// EnableService は地図に検索サービスを紐付ける。
// HTTP実装では紐付ける状態がないため何もしない
func (g *GooglePlacesProvider) EnableService(m model.MapHandle) {}

// TextSearch はクエリに一致する場所をAPIの返却順のまま取得する
func (g *GooglePlacesProvider) TextSearch(ctx context.Context, m model.MapHandle, query string) ([]model.PlaceResult, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("key", g.apiKey)
	if m != nil {
		center := m.Bounds().Center()
		params.Set("location", fmt.Sprintf("%f,%f", center.Lat(), center.Lon()))
	}
	reqURL := fmt.Sprintf("https://maps.googleapis.com/maps/api/place/textsearch/json?%s", params.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("リクエストの作成に失敗: %w", err)
	}

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("APIリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("APIからエラーステータスが返されました: %s", resp.Status)
	}

	var apiResp googlePlacesResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("JSONのパースに失敗: %w", err)
	}

	if apiResp.Status != "OK" && apiResp.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("場所検索に失敗: status=%s %s", apiResp.Status, apiResp.ErrorMessage)
	}

	results := make([]model.PlaceResult, 0, len(apiResp.Results))
	for _, place := range apiResp.Results {
		results = append(results, model.PlaceResult{
			PlaceID:          place.PlaceID,
			Name:             place.Name,
			FormattedAddress: place.FormattedAddress,
			Location: model.LatLng{
				Lat: place.Geometry.Location.Lat,
				Lng: place.Geometry.Location.Lng,
			},
			Rating: place.Rating,
		})
	}
	return results, nil
}

// --- Google Places APIのレスポンスをパースするための構造体 ---

type googlePlacesResponse struct {
	Results      []googlePlace `json:"results"`
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message,omitempty"`
}
type googlePlace struct {
	PlaceID          string              `json:"place_id"`
	Name             string              `json:"name"`
	FormattedAddress string              `json:"formatted_address"`
	Geometry         googlePlaceGeometry `json:"geometry"`
	Rating           float64             `json:"rating"`
}
type googlePlaceGeometry struct {
	Location googlePlaceLocation `json:"location"`
}
type googlePlaceLocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
