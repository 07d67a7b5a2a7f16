package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CampusNav-App/internal/domain/model"
)

func TestFloorToggleBroadcaster(t *testing.T) {
	t.Run("購読時点の値が最初に届く", func(t *testing.T) {
		b := NewFloorToggleBroadcaster()
		b.Publish(true)

		sub := b.Subscribe()
		assert.True(t, <-sub)
	})

	t.Run("発行された値が購読者へ届く", func(t *testing.T) {
		b := NewFloorToggleBroadcaster()
		sub := b.Subscribe()
		<-sub // 初期値を消費

		b.Publish(true)
		assert.True(t, <-sub)
	})

	t.Run("未消費の購読者には最後の値だけが残る", func(t *testing.T) {
		b := NewFloorToggleBroadcaster()
		sub := b.Subscribe()
		<-sub

		b.Publish(true)
		b.Publish(false)
		b.Publish(true)

		require.Len(t, sub, 1)
		assert.True(t, <-sub)
	})

	t.Run("Currentで現在値をポーリングできる", func(t *testing.T) {
		b := NewFloorToggleBroadcaster()
		assert.False(t, b.Current())
		b.Publish(true)
		assert.True(t, b.Current())
	})
}

func TestCampusBroadcaster(t *testing.T) {
	t.Run("初期値はNone", func(t *testing.T) {
		b := NewCampusBroadcaster()
		sub := b.Subscribe()
		assert.Equal(t, model.CampusSelectionNone, <-sub)
	})

	t.Run("複数の購読者へ同じ値が届く", func(t *testing.T) {
		b := NewCampusBroadcaster()
		first := b.Subscribe()
		second := b.Subscribe()
		<-first
		<-second

		b.Publish(model.CampusSelectionSGW)
		assert.Equal(t, model.CampusSelectionSGW, <-first)
		assert.Equal(t, model.CampusSelectionSGW, <-second)
	})

	t.Run("未消費の購読者には最後の値だけが残る", func(t *testing.T) {
		b := NewCampusBroadcaster()
		sub := b.Subscribe()
		<-sub

		b.Publish(model.CampusSelectionSGW)
		b.Publish(model.CampusSelectionLoyola)

		require.Len(t, sub, 1)
		assert.Equal(t, model.CampusSelectionLoyola, <-sub)
	})
}
