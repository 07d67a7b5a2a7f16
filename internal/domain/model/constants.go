package model

// キャンパス・建物の定数
const (
	CampusNameSGW    = "Sir George Williams Campus"
	CampusNameLoyola = "Loyola Campus"

	// HallBuildingName は屋内マップを持つフォーカス建物
	HallBuildingName = "Henry F. Hall Building"
	HallBuildingCode = "H"
)

// キャンパスのアンカー座標
var (
	SGWCoordinates    = NewCoordinates(45.4959053, -73.5801141)
	LoyolaCoordinates = NewCoordinates(45.4582, -73.6405)
)

// ズームの既定値
const (
	// DefaultMapZoom は地図ロード時のズーム
	DefaultMapZoom = 15.0
	// BuildingFocusZoom 以上で建物のアウトラインとラベルを隠し、屋内表示に切り替える
	BuildingFocusZoom = 19.0
	// FloorToggleZoom 以上（かつフォーカス建物が画面内）でフロア切替ボタンを表示する
	FloorToggleZoom = 19.0
	// IndoorRouteZoom は屋内ルート描画後に寄るズーム
	IndoorRouteZoom = 19.0
)

// アイコン参照の定数
const (
	IconRefCampus    = "campus"
	IconRefBuilding  = "building"
	IconRefRoom      = "room"
	IconRefElevator  = "elevator"
	IconRefStairs    = "stairs"
	IconRefEscalator = "escalator"
	IconRefWashroom  = "washroom"
	IconRefLocation  = "my-location"
	IconRefRouteStart = "route-start"
	IconRefRouteEnd   = "route-end"
)

// CampusSelection 画面内に入っているキャンパスの列挙値
type CampusSelection int

const (
	CampusSelectionNone CampusSelection = iota
	CampusSelectionSGW
	CampusSelectionLoyola
)

// String 列挙値の表示名を返す
func (s CampusSelection) String() string {
	switch s {
	case CampusSelectionSGW:
		return "SGW"
	case CampusSelectionLoyola:
		return "LOYOLA"
	default:
		return "NONE"
	}
}

// CampusSelectionNameMap キャンパス名から列挙値へのマッピング（宣言順）
var CampusSelectionNameMap = map[string]CampusSelection{
	CampusNameSGW:    CampusSelectionSGW,
	CampusNameLoyola: CampusSelectionLoyola,
}

// GetCampusSelection キャンパス名に対応する列挙値を取得する
func GetCampusSelection(campusName string) CampusSelection {
	if sel, ok := CampusSelectionNameMap[campusName]; ok {
		return sel
	}
	return CampusSelectionNone
}
