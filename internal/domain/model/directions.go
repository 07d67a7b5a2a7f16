package model

import "time"

// DirectionsRequest 経路検索コラボレーターへのリクエスト条件
type DirectionsRequest struct {
	Origin              Coordinates   `json:"origin"`
	Destination         Coordinates   `json:"destination"`
	DepartureTime       *time.Time    `json:"departure_time,omitempty"`
	ArrivalTime         *time.Time    `json:"arrival_time,omitempty"`
	Mode                TransportMode `json:"mode,omitempty"`
	ProvideAlternatives bool          `json:"provide_alternatives"`
}

// DirectionsLeg 経路候補の1区間。出発・到着時刻はルートの曖昧性解消に使われる
type DirectionsLeg struct {
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	DurationSeconds int     `json:"duration_seconds"`
	DistanceMeters  int     `json:"distance_meters"`
}

// DirectionsAlternative 経路検索コラボレーターが返す1つの経路候補
type DirectionsAlternative struct {
	Legs             []DirectionsLeg `json:"legs"`
	OverviewPolyline string          `json:"overview_polyline"`
	Summary          string          `json:"summary"`
}

// DirectionsResult 経路検索コラボレーターの応答。候補の順序は返却順のまま保持される
type DirectionsResult struct {
	Status       string                  `json:"status"`
	Alternatives []DirectionsAlternative `json:"alternatives"`
}

// RawRouteAlternative 経路ルックアップコラボレーターが返す生の経路候補データ。
// RouteFactoryがドメインのRouteバリアントへ変換する
type RawRouteAlternative struct {
	DepartureTime   *time.Time `json:"departure_time,omitempty"`
	ArrivalTime     *time.Time `json:"arrival_time,omitempty"`
	Polyline        string     `json:"polyline"`
	Summary         string     `json:"summary"`
	DurationSeconds int        `json:"duration_seconds"`
	DistanceMeters  int        `json:"distance_meters"`
}

// PlaceResult フリーテキスト検索コラボレーターが返す1件の検索結果
type PlaceResult struct {
	PlaceID          string  `json:"place_id"`
	Name             string  `json:"name"`
	FormattedAddress string  `json:"formatted_address"`
	Location         LatLng  `json:"location"`
	Rating           float64 `json:"rating,omitempty"`
}
