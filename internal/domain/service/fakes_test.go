package service

import (
	"context"
	"sync"

	"github.com/paulmach/orb"

	"CampusNav-App/internal/domain/model"
)

// --- テスト用のコラボレーター実装 ---

type fakeMap struct {
	mu     sync.Mutex
	center model.LatLng
	zoom   float64
	bounds orb.Bound
}

func (m *fakeMap) SetCenter(center model.LatLng) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.center = center
}
func (m *fakeMap) SetZoom(zoom float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.zoom = zoom
}
func (m *fakeMap) Zoom() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.zoom
}
func (m *fakeMap) Bounds() orb.Bound {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bounds
}
func (m *fakeMap) Center() model.LatLng {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.center
}

type fakeMarker struct {
	position model.LatLng
	iconRef  string
	visible  bool
	removed  bool
}

func (f *fakeMarker) SetVisible(visible bool) { f.visible = visible }
func (f *fakeMarker) Position() model.LatLng  { return f.position }
func (f *fakeMarker) Remove()                 { f.removed = true }

type fakePolyline struct {
	points   []model.LatLng
	editable bool
	color    string
	attached bool
}

func (f *fakePolyline) SetMap(m model.MapHandle) { f.attached = m != nil }

type fakeDirectionsRenderer struct {
	mu         sync.Mutex
	directions *model.DirectionsResult
	routeIndex int
	indexSet   bool
}

func (f *fakeDirectionsRenderer) SetMap(m model.MapHandle) {}
func (f *fakeDirectionsRenderer) SetDirections(result *model.DirectionsResult) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.directions = result
}
func (f *fakeDirectionsRenderer) SetRouteIndex(index int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routeIndex = index
	f.indexSet = true
}

type fakeRenderer struct {
	mu                 sync.Mutex
	markers            []*fakeMarker
	polylines          []*fakePolyline
	directionsRenderer *fakeDirectionsRenderer
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{directionsRenderer: &fakeDirectionsRenderer{routeIndex: -1}}
}

func (f *fakeRenderer) CreateMap(center model.LatLng, options model.MapOptions) model.MapHandle {
	return &fakeMap{center: center, zoom: options.Zoom}
}

func (f *fakeRenderer) CreateMarker(position model.LatLng, m model.MapHandle, iconRef string) model.MarkerHandle {
	marker := &fakeMarker{position: position, iconRef: iconRef, visible: true}
	f.mu.Lock()
	f.markers = append(f.markers, marker)
	f.mu.Unlock()
	return marker
}

func (f *fakeRenderer) CreatePolyline(points []model.LatLng, editable bool, color string, opacity float64, weight int) model.PolylineHandle {
	polyline := &fakePolyline{points: points, editable: editable, color: color}
	f.mu.Lock()
	f.polylines = append(f.polylines, polyline)
	f.mu.Unlock()
	return polyline
}

func (f *fakeRenderer) GetDirectionsRenderer() model.DirectionsRendererHandle {
	return f.directionsRenderer
}

func (f *fakeRenderer) attachedPolylines() []*fakePolyline {
	f.mu.Lock()
	defer f.mu.Unlock()
	var attached []*fakePolyline
	for _, polyline := range f.polylines {
		if polyline.attached {
			attached = append(attached, polyline)
		}
	}
	return attached
}

type fakeLocationProvider struct {
	position *model.LatLng
}

func (f *fakeLocationProvider) GetCurrentPosition(ctx context.Context) (*model.LatLng, error) {
	return f.position, nil
}

// fakePlaceSearch はクエリごとに応答を差し替えられる場所検索。
// blockOnに一致するクエリはreleaseが閉じられるまで応答を保留する
type fakePlaceSearch struct {
	mu        sync.Mutex
	calls     []string
	responses map[string][]model.PlaceResult
	err       error

	blockOn string
	started chan struct{}
	release chan struct{}
}

func (f *fakePlaceSearch) EnableService(m model.MapHandle) {}

func (f *fakePlaceSearch) TextSearch(ctx context.Context, m model.MapHandle, query string) ([]model.PlaceResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, query)
	blocked := f.blockOn != "" && query == f.blockOn
	f.mu.Unlock()

	if blocked {
		if f.started != nil {
			close(f.started)
			f.started = nil
		}
		<-f.release
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.responses[query], nil
}

func (f *fakePlaceSearch) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// fakeDirectionsProvider は応答を差し替えられる経路検索。
// blockFirstがtrueの場合、最初の呼び出しはreleaseまで応答を保留する
type fakeDirectionsProvider struct {
	mu     sync.Mutex
	calls  int
	result *model.DirectionsResult
	err    error

	blockFirst bool
	started    chan struct{}
	release    chan struct{}

	// firstResult は保留された最初の呼び出しに返す応答（未設定ならresult）
	firstResult *model.DirectionsResult
}

func (f *fakeDirectionsProvider) GetRouteAlternatives(ctx context.Context, req *model.DirectionsRequest) (*model.DirectionsResult, error) {
	f.mu.Lock()
	f.calls++
	isFirst := f.calls == 1
	f.mu.Unlock()

	if f.blockFirst && isFirst {
		if f.started != nil {
			close(f.started)
		}
		<-f.release
		if f.firstResult != nil {
			return f.firstResult, nil
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakeRouteLookup struct {
	mu           sync.Mutex
	calls        int
	lastRequest  *model.DirectionsRequest
	alternatives []*model.RawRouteAlternative
	err          error
}

func (f *fakeRouteLookup) GetMappedRoutes(ctx context.Context, req *model.DirectionsRequest) ([]*model.RawRouteAlternative, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.lastRequest = req
	if f.err != nil {
		return nil, f.err
	}
	return f.alternatives, nil
}

type fakeShuttleProvider struct {
	isShuttle     bool
	displayCalled bool
}

func (f *fakeShuttleProvider) IsShuttleRoute(route *model.OutdoorRoute) bool {
	return f.isShuttle
}

func (f *fakeShuttleProvider) DisplayShuttleRoute(m model.MapHandle, route *model.OutdoorRoute) {
	f.displayCalled = true
}
