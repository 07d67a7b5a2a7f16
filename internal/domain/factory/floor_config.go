package factory

import "CampusNav-App/internal/domain/model"

// indoorPOIConfig 屋内POI1件分の静的設定
type indoorPOIConfig struct {
	name     string
	lat      float64
	lng      float64
	iconRef  string
	linkType model.LinkType // 空でなければLink、空ならRoom
	// linkFloors はLinkが接続する各階（出口座標はこの建物内の同位置に置かれる）
	linkFloors []int
}

// hallElevatorPosition / hallStairsPosition / hallEscalatorPosition
// Linkの出口は各階で同じ平面位置になる
const (
	hallElevatorLat  = 45.4972625
	hallElevatorLng  = -73.5789858
	hallStairsLat    = 45.4973825
	hallStairsLng    = -73.5790954
	hallEscalatorLat = 45.4972170
	hallEscalatorLng = -73.5788978
)

// hallFloorConfigs Hallビルの各階の屋内POI設定。キーは階数、値は宣言順のPOI列
var hallFloorConfigs = map[int][]indoorPOIConfig{
	1: {
		{name: "H110", lat: 45.4971782, lng: -73.5790655, iconRef: model.IconRefRoom},
		{name: "Washroom H1", lat: 45.4973215, lng: -73.5788640, iconRef: model.IconRefWashroom},
		{name: "Elevator H1", lat: hallElevatorLat, lng: hallElevatorLng, iconRef: model.IconRefElevator,
			linkType: model.LinkTypeElevator, linkFloors: []int{1, 8, 9}},
		{name: "Stairs H1", lat: hallStairsLat, lng: hallStairsLng, iconRef: model.IconRefStairs,
			linkType: model.LinkTypeStairs, linkFloors: []int{1, 8, 9}},
	},
	8: {
		{name: "H801", lat: 45.4975203, lng: -73.5788716, iconRef: model.IconRefRoom},
		{name: "H815", lat: 45.4970625, lng: -73.5793339, iconRef: model.IconRefRoom},
		{name: "H817", lat: 45.4971068, lng: -73.5793844, iconRef: model.IconRefRoom},
		{name: "H819", lat: 45.4971562, lng: -73.5794272, iconRef: model.IconRefRoom},
		{name: "H820", lat: 45.4973521, lng: -73.5792479, iconRef: model.IconRefRoom},
		{name: "H831", lat: 45.4972175, lng: -73.5794752, iconRef: model.IconRefRoom},
		{name: "H837", lat: 45.4973158, lng: -73.5795533, iconRef: model.IconRefRoom},
		{name: "H849", lat: 45.4974950, lng: -73.5793766, iconRef: model.IconRefRoom},
		{name: "Washroom H8", lat: 45.4973747, lng: -73.5788237, iconRef: model.IconRefWashroom},
		{name: "Elevator H8", lat: hallElevatorLat, lng: hallElevatorLng, iconRef: model.IconRefElevator,
			linkType: model.LinkTypeElevator, linkFloors: []int{1, 8, 9}},
		{name: "Stairs H8", lat: hallStairsLat, lng: hallStairsLng, iconRef: model.IconRefStairs,
			linkType: model.LinkTypeStairs, linkFloors: []int{1, 8, 9}},
		{name: "Escalator H8", lat: hallEscalatorLat, lng: hallEscalatorLng, iconRef: model.IconRefEscalator,
			linkType: model.LinkTypeEscalator, linkFloors: []int{8, 9}},
	},
	9: {
		{name: "H907", lat: 45.4971704, lng: -73.5791735, iconRef: model.IconRefRoom},
		{name: "H963", lat: 45.4974792, lng: -73.5792945, iconRef: model.IconRefRoom},
		{name: "H961-1", lat: 45.4974050, lng: -73.5794300, iconRef: model.IconRefRoom},
		{name: "H961-2", lat: 45.4974168, lng: -73.5794063, iconRef: model.IconRefRoom},
		{name: "H961-3", lat: 45.4974286, lng: -73.5793826, iconRef: model.IconRefRoom},
		{name: "H961-7", lat: 45.4974758, lng: -73.5792878, iconRef: model.IconRefRoom},
		{name: "Washroom H9", lat: 45.4973747, lng: -73.5788237, iconRef: model.IconRefWashroom},
		{name: "Elevator H9", lat: hallElevatorLat, lng: hallElevatorLng, iconRef: model.IconRefElevator,
			linkType: model.LinkTypeElevator, linkFloors: []int{1, 8, 9}},
		{name: "Stairs H9", lat: hallStairsLat, lng: hallStairsLng, iconRef: model.IconRefStairs,
			linkType: model.LinkTypeStairs, linkFloors: []int{1, 8, 9}},
		{name: "Escalator H9", lat: hallEscalatorLat, lng: hallEscalatorLng, iconRef: model.IconRefEscalator,
			linkType: model.LinkTypeEscalator, linkFloors: []int{8, 9}},
	},
}

// indoorCodeConfig 屋内コード1件分の静的設定
type indoorCodeConfig struct {
	code  string
	lat   float64
	lng   float64
	floor int
}

// indoorCodeConfigs 屋内コードから座標への対応表。
// プレフィックス検索はこの宣言順で走査される
var indoorCodeConfigs = []indoorCodeConfig{
	{code: "H110", lat: 45.4971782, lng: -73.5790655, floor: 1},
	{code: "H801", lat: 45.4975203, lng: -73.5788716, floor: 8},
	{code: "H815", lat: 45.4970625, lng: -73.5793339, floor: 8},
	{code: "H817", lat: 45.4971068, lng: -73.5793844, floor: 8},
	{code: "H819", lat: 45.4971562, lng: -73.5794272, floor: 8},
	{code: "H820", lat: 45.4973521, lng: -73.5792479, floor: 8},
	{code: "H831", lat: 45.4972175, lng: -73.5794752, floor: 8},
	{code: "H837", lat: 45.4973158, lng: -73.5795533, floor: 8},
	{code: "H849", lat: 45.4974950, lng: -73.5793766, floor: 8},
	{code: "H907", lat: 45.4971704, lng: -73.5791735, floor: 9},
	{code: "H961-1", lat: 45.4974050, lng: -73.5794300, floor: 9},
	{code: "H961-2", lat: 45.4974168, lng: -73.5794063, floor: 9},
	{code: "H961-3", lat: 45.4974286, lng: -73.5793826, floor: 9},
	{code: "H961-7", lat: 45.4974758, lng: -73.5792878, floor: 9},
	{code: "H963", lat: 45.4974792, lng: -73.5792945, floor: 9},
}
