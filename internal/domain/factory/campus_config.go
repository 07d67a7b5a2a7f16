package factory

import "CampusNav-App/internal/domain/model"

// buildingConfig 建物1棟分の静的設定
type buildingConfig struct {
	name         string
	code         string
	lat          float64
	lng          float64
	indoorFloors []int // 屋内マップを持つ階（宣言順）
}

// campusConfig キャンパス1つ分の静的設定
type campusConfig struct {
	name      string
	lat       float64
	lng       float64
	buildings []buildingConfig
}

// campusConfigs 屋外POIツリーの静的設定。順序はそのまま集約に保持される
var campusConfigs = []campusConfig{
	{
		name: model.CampusNameSGW,
		lat:  45.4959053,
		lng:  -73.5801141,
		buildings: []buildingConfig{
			{name: model.HallBuildingName, code: model.HallBuildingCode, lat: 45.4972944, lng: -73.5789952, indoorFloors: []int{1, 8, 9}},
			{name: "John Molson Building", code: "MB", lat: 45.4952535, lng: -73.5791416},
			{name: "J.W. McConnell Building", code: "LB", lat: 45.4968261, lng: -73.5779541},
			{name: "Engineering, Computer Science and Visual Arts Complex", code: "EV", lat: 45.4955820, lng: -73.5780808},
			{name: "Faubourg Building", code: "FB", lat: 45.4945982, lng: -73.5777926},
		},
	},
	{
		name: model.CampusNameLoyola,
		lat:  45.4582,
		lng:  -73.6405,
		buildings: []buildingConfig{
			{name: "Vanier Library Building", code: "VL", lat: 45.4590386, lng: -73.6384848},
			{name: "Central Building", code: "CC", lat: 45.4583794, lng: -73.6404890},
			{name: "Administration Building", code: "AD", lat: 45.4579918, lng: -73.6399677},
			{name: "Richard J. Renaud Science Complex", code: "SP", lat: 45.4575591, lng: -73.6415563},
		},
	},
}
