package model

// SearchOutcomeKind 検索クエリの処理結果の種類
type SearchOutcomeKind string

const (
	// SearchOutcomeReset 空クエリ。呼び出し側は結果をクリアして初期状態に戻す
	SearchOutcomeReset SearchOutcomeKind = "reset"
	// SearchOutcomeIndoorMatches 屋内コードのプレフィックス一致（最大5件）
	SearchOutcomeIndoorMatches SearchOutcomeKind = "indoor_matches"
	// SearchOutcomeOutdoorResults フリーテキスト検索の結果（返却順のまま）
	SearchOutcomeOutdoorResults SearchOutcomeKind = "outdoor_results"
	// SearchOutcomeNoResults 一致なし（3文字未満のゲートに掛かった場合を含む）
	SearchOutcomeNoResults SearchOutcomeKind = "no_results"
)

// SearchOutcome 検索クエリ1回分の結果
type SearchOutcome struct {
	Kind        SearchOutcomeKind `json:"kind"`
	IndoorCodes []string          `json:"indoor_codes,omitempty"`
	Places      []PlaceResult     `json:"places,omitempty"`
}

// PlaceSelection 検索結果の選択イベント。屋内コード選択か屋外結果選択のどちらか一方が入る
type PlaceSelection struct {
	Name        string       `json:"name"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	IndoorCode  string       `json:"indoor_code,omitempty"`
	Place       *PlaceResult `json:"place,omitempty"`
}
