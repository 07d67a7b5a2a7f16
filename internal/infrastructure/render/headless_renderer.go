package render

import (
	"sync"

	"github.com/google/uuid"
	"github.com/paulmach/orb"

	"CampusNav-App/internal/domain/model"
)

// HeadlessRenderer は描画バックエンドを持たないレンダラー実装。
// タイルを描く代わりに地図・マーカー・ポリラインの状態をメモリに保持し、
// HTTPサーフェス経由でホストUIがその状態を参照する
type HeadlessRenderer struct {
	mu                 sync.Mutex
	markers            []*HeadlessMarker
	polylines          []*HeadlessPolyline
	directionsRenderer *HeadlessDirectionsRenderer
}

// NewHeadlessRenderer は新しいレンダラーを生成する
func NewHeadlessRenderer() *HeadlessRenderer {
	return &HeadlessRenderer{
		directionsRenderer: &HeadlessDirectionsRenderer{routeIndex: -1},
	}
}

// CreateMap は地図の状態を作成する
func (r *HeadlessRenderer) CreateMap(center model.LatLng, options model.MapOptions) model.MapHandle {
	return &HeadlessMap{
		center: center,
		zoom:   options.Zoom,
		bounds: defaultBoundsAround(center),
	}
}

// CreateMarker はマーカーの状態を作成する
func (r *HeadlessRenderer) CreateMarker(position model.LatLng, m model.MapHandle, iconRef string) model.MarkerHandle {
	marker := &HeadlessMarker{
		ID:       uuid.NewString(),
		position: position,
		iconRef:  iconRef,
		visible:  true,
		attached: true,
	}
	r.mu.Lock()
	r.markers = append(r.markers, marker)
	r.mu.Unlock()
	return marker
}

// CreatePolyline はポリラインの状態を作成する（この時点では地図に載っていない）
func (r *HeadlessRenderer) CreatePolyline(points []model.LatLng, editable bool, color string, opacity float64, weight int) model.PolylineHandle {
	polyline := &HeadlessPolyline{
		ID:      uuid.NewString(),
		Points:  points,
		Color:   color,
		Opacity: opacity,
		Weight:  weight,
	}
	r.mu.Lock()
	r.polylines = append(r.polylines, polyline)
	r.mu.Unlock()
	return polyline
}

// GetDirectionsRenderer は経路候補描画の状態保持ハンドルを返す。
// ハンドルはレンダラーごとに1つで、呼び出しをまたいで状態を保持する
func (r *HeadlessRenderer) GetDirectionsRenderer() model.DirectionsRendererHandle {
	return r.directionsRenderer
}

// AttachedPolylines は現在地図に載っているポリラインを返す
func (r *HeadlessRenderer) AttachedPolylines() []*HeadlessPolyline {
	r.mu.Lock()
	defer r.mu.Unlock()
	var attached []*HeadlessPolyline
	for _, polyline := range r.polylines {
		if polyline.attached {
			attached = append(attached, polyline)
		}
	}
	return attached
}

// HeadlessMap は地図の状態。ビューポート確定イベントでズームと境界が更新される
type HeadlessMap struct {
	mu     sync.Mutex
	center model.LatLng
	zoom   float64
	bounds orb.Bound
}

func (m *HeadlessMap) SetCenter(center model.LatLng) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.center = center
}

func (m *HeadlessMap) SetZoom(zoom float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.zoom = zoom
}

func (m *HeadlessMap) Zoom() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.zoom
}

func (m *HeadlessMap) Bounds() orb.Bound {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bounds
}

// SetViewport はホストUIから届いたビューポートを反映する
func (m *HeadlessMap) SetViewport(zoom float64, bounds orb.Bound) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.zoom = zoom
	m.bounds = bounds
	m.center = model.LatLng{Lat: bounds.Center().Lat(), Lng: bounds.Center().Lon()}
}

// Center は現在の地図中心を返す
func (m *HeadlessMap) Center() model.LatLng {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.center
}

// HeadlessMarker はマーカーの状態
type HeadlessMarker struct {
	ID       string
	position model.LatLng
	iconRef  string
	visible  bool
	attached bool
}

func (m *HeadlessMarker) SetVisible(visible bool) { m.visible = visible }
func (m *HeadlessMarker) Position() model.LatLng  { return m.position }
func (m *HeadlessMarker) Remove()                 { m.attached = false }

// Visible はマーカーが表示状態かを返す
func (m *HeadlessMarker) Visible() bool { return m.visible }

// HeadlessPolyline はポリラインの状態
type HeadlessPolyline struct {
	ID      string
	Points  []model.LatLng
	Color   string
	Opacity float64
	Weight  int

	attached bool
}

func (p *HeadlessPolyline) SetMap(m model.MapHandle) {
	p.attached = m != nil
}

// HeadlessDirectionsRenderer は経路候補とハイライト添字の状態
type HeadlessDirectionsRenderer struct {
	mu         sync.Mutex
	directions *model.DirectionsResult
	routeIndex int
}

func (d *HeadlessDirectionsRenderer) SetMap(m model.MapHandle) {}

func (d *HeadlessDirectionsRenderer) SetDirections(result *model.DirectionsResult) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.directions = result
}

func (d *HeadlessDirectionsRenderer) SetRouteIndex(index int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.routeIndex = index
}

// RouteIndex は現在ハイライトされている候補の添字を返す（-1は選択なし）
func (d *HeadlessDirectionsRenderer) RouteIndex() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.routeIndex
}

// defaultBoundsAround は中心の周囲に仮の境界を張る。
// 実際の境界は最初のビューポート確定イベントで上書きされる
func defaultBoundsAround(center model.LatLng) orb.Bound {
	point := center.ToPoint()
	return orb.Bound{Min: point, Max: point}.Pad(0.01)
}
