package model

// OutdoorPOI 屋外マップ上のPOIが満たすインターフェース（閉じたバリアント: Campus / Building）
type OutdoorPOI interface {
	GetName() string
	GetCoordinates() Coordinates
	GetIconRef() string
}

// IndoorPOI 屋内マップ上のPOIが満たすインターフェース（閉じたバリアント: Room / Link）
type IndoorPOI interface {
	GetName() string
	GetCoordinates() Coordinates
	GetIconRef() string
}

// VisibilityToggler アウトラインとラベルの表示切り替えができるPOIの能力インターフェース
type VisibilityToggler interface {
	ShowOutline()
	HideOutline()
	ShowLabel()
	HideLabel()
}

// Campus キャンパスを表す屋外POI。配下の建物を宣言順に保持する
type Campus struct {
	Name        string      `json:"name"`
	Coordinates Coordinates `json:"coordinates"`
	IconRef     string      `json:"icon_ref"`
	Buildings   []*Building `json:"buildings"`
}

func (c *Campus) GetName() string             { return c.Name }
func (c *Campus) GetCoordinates() Coordinates { return c.Coordinates }
func (c *Campus) GetIconRef() string          { return c.IconRef }

// Building 建物を表す屋外POI。屋内マップを持つ場合はIndoorMapsに階数ごとに保持する
type Building struct {
	Name        string      `json:"name"`
	Code        string      `json:"code"`
	Coordinates Coordinates `json:"coordinates"`
	IconRef     string      `json:"icon_ref"`

	// FloorNumbers は屋内マップを持つ階の宣言順リスト。IndoorMapsのキーと一致する
	FloorNumbers []int              `json:"floor_numbers,omitempty"`
	IndoorMaps   map[int]*IndoorMap `json:"-"`

	OutlineVisible bool `json:"outline_visible"`
	LabelVisible   bool `json:"label_visible"`
}

func (b *Building) GetName() string             { return b.Name }
func (b *Building) GetCoordinates() Coordinates { return b.Coordinates }
func (b *Building) GetIconRef() string          { return b.IconRef }

func (b *Building) ShowOutline() { b.OutlineVisible = true }
func (b *Building) HideOutline() { b.OutlineVisible = false }
func (b *Building) ShowLabel()   { b.LabelVisible = true }
func (b *Building) HideLabel()   { b.LabelVisible = false }

// HasIndoorMaps 屋内マップを1つ以上持つかをチェック
func (b *Building) HasIndoorMaps() bool {
	return len(b.IndoorMaps) > 0
}

// GetIndoorMap 指定階の屋内マップを取得する
func (b *Building) GetIndoorMap(floor int) (*IndoorMap, bool) {
	m, ok := b.IndoorMaps[floor]
	return m, ok
}

// Room 部屋・オフィスなどを表す屋内POI
type Room struct {
	Name        string      `json:"name"`
	Coordinates Coordinates `json:"coordinates"`
	IconRef     string      `json:"icon_ref"`
}

func (r *Room) GetName() string             { return r.Name }
func (r *Room) GetCoordinates() Coordinates { return r.Coordinates }
func (r *Room) GetIconRef() string          { return r.IconRef }

// LinkType 階をまたぐ接続の種類
type LinkType string

const (
	LinkTypeElevator  LinkType = "ELEVATOR"
	LinkTypeStairs    LinkType = "STAIRS"
	LinkTypeEscalator LinkType = "ESCALATOR"
)

// IsValid 定義済みのLinkTypeかをチェック
func (t LinkType) IsValid() bool {
	switch t {
	case LinkTypeElevator, LinkTypeStairs, LinkTypeEscalator:
		return true
	}
	return false
}

// Link エレベーター・階段などで階をつなぐ屋内POI。
// ExitCoordinatesには接続先の各階の座標が入る
type Link struct {
	Name            string        `json:"name"`
	Coordinates     Coordinates   `json:"coordinates"`
	IconRef         string        `json:"icon_ref"`
	LinkType        LinkType      `json:"link_type"`
	ExitCoordinates []Coordinates `json:"exit_coordinates"`
}

func (l *Link) GetName() string             { return l.Name }
func (l *Link) GetCoordinates() Coordinates { return l.Coordinates }
func (l *Link) GetIconRef() string          { return l.IconRef }

// ConnectsFloor 指定階への出口を持つかをチェック
func (l *Link) ConnectsFloor(floor int) bool {
	for _, exit := range l.ExitCoordinates {
		if exit.FloorNumber() == floor {
			return true
		}
	}
	return false
}

// IndoorMap 1つの建物の1フロア分の屋内マップ
type IndoorMap struct {
	FloorNumber  int         `json:"floor_number"`
	BuildingCode string      `json:"building_code"`
	POIs         []IndoorPOI `json:"pois"`

	// このフロアに割り当てられたルートの始点・終点マーカー（最大2つ）
	destinationMarkers []MarkerHandle
}

// NewIndoorMap 新しいIndoorMapを作成する
func NewIndoorMap(floorNumber int, buildingCode string, pois []IndoorPOI) *IndoorMap {
	return &IndoorMap{
		FloorNumber:  floorNumber,
		BuildingCode: buildingCode,
		POIs:         pois,
	}
}

// SetDestinationMarkers 目的地マーカーを割り当てる（最大2つ、超過分は無視される）
func (m *IndoorMap) SetDestinationMarkers(markers []MarkerHandle) {
	if len(markers) > 2 {
		markers = markers[:2]
	}
	m.destinationMarkers = markers
}

// GetDestinationMarkers 割り当て済みの目的地マーカーを返す
func (m *IndoorMap) GetDestinationMarkers() []MarkerHandle {
	return m.destinationMarkers
}

// DeleteDestinationMarkers 目的地マーカーを地図から外して割り当てを解除する
func (m *IndoorMap) DeleteDestinationMarkers() {
	for _, marker := range m.destinationMarkers {
		if marker != nil {
			marker.Remove()
		}
	}
	m.destinationMarkers = nil
}

// OutdoorMap 屋外POIツリー全体を所有する集約。POIの順序は生成時のまま保持される
type OutdoorMap struct {
	pois []OutdoorPOI
}

// NewOutdoorMap 新しいOutdoorMapを作成する
func NewOutdoorMap(pois []OutdoorPOI) *OutdoorMap {
	return &OutdoorMap{pois: pois}
}

// GetPOIs 保持する全POIを宣言順で返す
func (m *OutdoorMap) GetPOIs() []OutdoorPOI {
	return m.pois
}

// GetPOI 名前でPOIを検索する。見つからない場合はnil
func (m *OutdoorMap) GetPOI(name string) OutdoorPOI {
	for _, poi := range m.pois {
		if poi.GetName() == name {
			return poi
		}
	}
	return nil
}

// GetCampuses 宣言順のキャンパス一覧を返す
func (m *OutdoorMap) GetCampuses() []*Campus {
	var campuses []*Campus
	for _, poi := range m.pois {
		if campus, ok := poi.(*Campus); ok {
			campuses = append(campuses, campus)
		}
	}
	return campuses
}

// GetBuilding 名前で建物を検索する。建物でない場合や存在しない場合はnil
func (m *OutdoorMap) GetBuilding(name string) *Building {
	if building, ok := m.GetPOI(name).(*Building); ok {
		return building
	}
	return nil
}
