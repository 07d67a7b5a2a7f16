package service

import (
	"sync"

	"CampusNav-App/internal/domain/model"
)

// FloorToggleBroadcaster フロア切替ボタンの表示状態を購読者へ配信する。
// 各購読チャネルは容量1で、常に最後に発行された値だけが残る
type FloorToggleBroadcaster struct {
	mu      sync.Mutex
	current bool
	subs    []chan bool
}

// NewFloorToggleBroadcaster 新しいFloorToggleBroadcasterを作成する
func NewFloorToggleBroadcaster() *FloorToggleBroadcaster {
	return &FloorToggleBroadcaster{}
}

// Publish 表示状態を更新して全購読者へ配信する
func (b *FloorToggleBroadcaster) Publish(visible bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.current = visible
	for _, sub := range b.subs {
		// 未消費の古い値を捨てて最新値に置き換える
		select {
		case <-sub:
		default:
		}
		sub <- visible
	}
}

// Subscribe 購読チャネルを取得する。購読時点の値が最初に届く
func (b *FloorToggleBroadcaster) Subscribe() <-chan bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	sub := make(chan bool, 1)
	sub <- b.current
	b.subs = append(b.subs, sub)
	return sub
}

// Current 現在の表示状態を返す（ポーリング用）
func (b *FloorToggleBroadcaster) Current() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

// CampusBroadcaster 画面内に入っているキャンパスの列挙値を購読者へ配信する
type CampusBroadcaster struct {
	mu      sync.Mutex
	current model.CampusSelection
	subs    []chan model.CampusSelection
}

// NewCampusBroadcaster 新しいCampusBroadcasterを作成する
func NewCampusBroadcaster() *CampusBroadcaster {
	return &CampusBroadcaster{}
}

// Publish 選択状態を更新して全購読者へ配信する
func (b *CampusBroadcaster) Publish(selection model.CampusSelection) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.current = selection
	for _, sub := range b.subs {
		select {
		case <-sub:
		default:
		}
		sub <- selection
	}
}

// Subscribe 購読チャネルを取得する。購読時点の値が最初に届く
func (b *CampusBroadcaster) Subscribe() <-chan model.CampusSelection {
	b.mu.Lock()
	defer b.mu.Unlock()
	sub := make(chan model.CampusSelection, 1)
	sub <- b.current
	b.subs = append(b.subs, sub)
	return sub
}

// Current 現在の選択状態を返す（ポーリング用）
func (b *CampusBroadcaster) Current() model.CampusSelection {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}
