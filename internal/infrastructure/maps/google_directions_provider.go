package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"CampusNav-App/internal/domain/model"
)

// GoogleDirectionsProvider はGoogle Maps Directions APIを使用した経路検索の実装。
// DirectionsProvider（経路表示）とRouteLookupProvider（ルート生成）の両方を満たす
type GoogleDirectionsProvider struct {
	apiKey     string
	httpClient *http.Client
}

// NewGoogleDirectionsProvider は新しいプロバイダを生成する
func NewGoogleDirectionsProvider(apiKey string) *GoogleDirectionsProvider {
	return &GoogleDirectionsProvider{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// GetRouteAlternatives はGoogle Maps Directions APIを呼び出して経路候補を取得する。
// 候補の順序はAPIの返却順のまま保持される
func (g *GoogleDirectionsProvider) GetRouteAlternatives(ctx context.Context, req *model.DirectionsRequest) (*model.DirectionsResult, error) {
	apiResp, err := g.fetchDirections(ctx, req)
	if err != nil {
		return nil, err
	}

	result := &model.DirectionsResult{Status: apiResp.Status}
	for _, route := range apiResp.Routes {
		result.Alternatives = append(result.Alternatives, toAlternative(route))
	}
	return result, nil
}

// GetMappedRoutes は経路候補をRouteFactory向けの生データとして取得する
func (g *GoogleDirectionsProvider) GetMappedRoutes(ctx context.Context, req *model.DirectionsRequest) ([]*model.RawRouteAlternative, error) {
	apiResp, err := g.fetchDirections(ctx, req)
	if err != nil {
		return nil, err
	}

	alternatives := make([]*model.RawRouteAlternative, 0, len(apiResp.Routes))
	for _, route := range apiResp.Routes {
		raw := &model.RawRouteAlternative{
			Polyline: route.OverviewPolyline.Points,
		}
		if len(route.Legs) > 0 {
			leg := route.Legs[0]
			raw.Summary = route.Summary
			raw.DurationSeconds = leg.Duration.Value
			raw.DistanceMeters = leg.Distance.Value
			if leg.DepartureTime != nil {
				t := time.Unix(leg.DepartureTime.Value, 0)
				raw.DepartureTime = &t
			}
			if leg.ArrivalTime != nil {
				t := time.Unix(leg.ArrivalTime.Value, 0)
				raw.ArrivalTime = &t
			}
		}
		alternatives = append(alternatives, raw)
	}
	return alternatives, nil
}

func (g *GoogleDirectionsProvider) fetchDirections(ctx context.Context, req *model.DirectionsRequest) (*googleDirectionsResponse, error) {
	reqURL := g.buildURL(req)

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

	var apiResp googleDirectionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("JSONのパースに失敗: %w", err)
	}

	if apiResp.Status != "OK" {
		return nil, fmt.Errorf("経路検索に失敗: status=%s %s", apiResp.Status, apiResp.ErrorMessage)
	}
	return &apiResp, nil
}

func (g *GoogleDirectionsProvider) buildURL(req *model.DirectionsRequest) string {
	baseURL := "https://maps.googleapis.com/maps/api/directions/json"
	params := url.Values{}
	params.Set("origin", fmt.Sprintf("%f,%f", req.Origin.Latitude, req.Origin.Longitude))
	params.Set("destination", fmt.Sprintf("%f,%f", req.Destination.Latitude, req.Destination.Longitude))

	mode := req.Mode
	if mode == "" {
		mode = model.TransportModeTransit
	}
	params.Set("mode", strings.ToLower(string(mode)))

	if req.DepartureTime != nil {
		params.Set("departure_time", fmt.Sprintf("%d", req.DepartureTime.Unix()))
	} else if req.ArrivalTime != nil {
		params.Set("arrival_time", fmt.Sprintf("%d", req.ArrivalTime.Unix()))
	}
	if req.ProvideAlternatives {
		params.Set("alternatives", "true")
	}
	params.Set("key", g.apiKey)

	return fmt.Sprintf("%s?%s", baseURL, params.Encode())
}

func toAlternative(route googleRoute) model.DirectionsAlternative {
	alternative := model.DirectionsAlternative{
		OverviewPolyline: route.OverviewPolyline.Points,
		Summary:          route.Summary,
	}
	for _, leg := range route.Legs {
		domainLeg := model.DirectionsLeg{
			DurationSeconds: leg.Duration.Value,
			DistanceMeters:  leg.Distance.Value,
		}
		if leg.DepartureTime != nil {
			domainLeg.DepartureTime = time.Unix(leg.DepartureTime.Value, 0)
		}
		if leg.ArrivalTime != nil {
			domainLeg.ArrivalTime = time.Unix(leg.ArrivalTime.Value, 0)
		}
		alternative.Legs = append(alternative.Legs, domainLeg)
	}
	return alternative
}

// --- Google Maps APIのレスポンスをパースするための構造体 ---

type googleDirectionsResponse struct {
	Routes       []googleRoute `json:"routes"`
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message,omitempty"`
}
type googleRoute struct {
	Legs             []googleLeg            `json:"legs"`
	OverviewPolyline googleOverviewPolyline `json:"overview_polyline"`
	Summary          string                 `json:"summary"`
}
type googleLeg struct {
	Duration      googleValue     `json:"duration"`
	Distance      googleValue     `json:"distance"`
	DepartureTime *googleTimeValue `json:"departure_time,omitempty"`
	ArrivalTime   *googleTimeValue `json:"arrival_time,omitempty"`
}
type googleValue struct {
	Value int `json:"value"`
}
type googleTimeValue struct {
	Value int64 `json:"value"` // unix seconds
}
type googleOverviewPolyline struct {
	Points string `json:"points"`
}
