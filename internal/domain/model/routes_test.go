package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransportMode_IsValid(t *testing.T) {
	t.Run("定義済みの移動手段は有効", func(t *testing.T) {
		for _, mode := range GetAllTransportModes() {
			assert.True(t, mode.IsValid(), "モード %s が無効と判定された", mode)
		}
	})

	t.Run("未定義の移動手段は無効", func(t *testing.T) {
		assert.False(t, TransportMode("FLYING").IsValid())
		assert.False(t, TransportMode("walking").IsValid(), "小文字は正規化しない")
		assert.False(t, TransportMode("").IsValid())
	})
}

func TestNewRouteStep(t *testing.T) {
	start := NewIndoorCoordinates(45.4971, -73.5790, 8)
	mid := NewIndoorCoordinates(45.4972, -73.5791, 8)
	end := NewIndoorCoordinates(45.4973, -73.5792, 8)

	t.Run("正常なステップを作成できる", func(t *testing.T) {
		step, err := NewRouteStep(start, end, []Coordinates{start, mid, end})
		require.NoError(t, err)
		assert.True(t, step.StartCoordinate.Equals(start))
		assert.True(t, step.EndCoordinate.Equals(end))
		assert.Len(t, step.Path, 3)
	})

	t.Run("空のパスはエラー", func(t *testing.T) {
		_, err := NewRouteStep(start, end, nil)
		assert.Error(t, err)
	})

	t.Run("パスの先頭が始点と一致しない場合はエラー", func(t *testing.T) {
		_, err := NewRouteStep(start, end, []Coordinates{mid, end})
		assert.Error(t, err)
	})

	t.Run("パスの末尾が終点と一致しない場合はエラー", func(t *testing.T) {
		_, err := NewRouteStep(start, end, []Coordinates{start, mid})
		assert.Error(t, err)
	})

	t.Run("始点と終点の階が異なる場合はエラー", func(t *testing.T) {
		otherFloorEnd := NewIndoorCoordinates(45.4973, -73.5792, 9)
		_, err := NewRouteStep(start, otherFloorEnd, []Coordinates{start, otherFloorEnd})
		assert.Error(t, err)
	})
}

func TestIndoorRoute_StepsForFloor(t *testing.T) {
	step := func(floor int, idx float64) RouteStep {
		s := NewIndoorCoordinates(45.0+idx, -73.0, floor)
		e := NewIndoorCoordinates(45.0+idx+0.001, -73.0, floor)
		created, err := NewRouteStep(s, e, []Coordinates{s, e})
		require.NoError(t, err)
		return created
	}

	// 1階→1階→8階→8階と移動するルート
	route := &IndoorRoute{
		RouteSteps: []RouteStep{step(1, 0.01), step(1, 0.02), step(8, 0.03), step(8, 0.04)},
	}

	t.Run("8階のステップだけが順序を保って返る", func(t *testing.T) {
		steps := route.StepsForFloor(8)
		require.Len(t, steps, 2)
		assert.Equal(t, 8, steps[0].StartCoordinate.FloorNumber())
		assert.Equal(t, 8, steps[1].StartCoordinate.FloorNumber())
		assert.True(t, steps[0].StartCoordinate.Latitude < steps[1].StartCoordinate.Latitude, "順序が入れ替わっている")
	})

	t.Run("1階のステップだけが返る", func(t *testing.T) {
		steps := route.StepsForFloor(1)
		require.Len(t, steps, 2)
		for _, s := range steps {
			assert.Equal(t, 1, s.StartCoordinate.FloorNumber())
		}
	})

	t.Run("ステップのない階は空", func(t *testing.T) {
		assert.Empty(t, route.StepsForFloor(9))
	})
}

func TestOutdoorRoute_ToDirectionsRequest(t *testing.T) {
	start := NewCoordinates(45.4959053, -73.5801141)
	end := NewCoordinates(45.4582, -73.6405)
	route := &OutdoorRoute{
		StartCoordinates: start,
		EndCoordinates:   end,
		TransportMode:    TransportModeTransit,
	}

	req := route.ToDirectionsRequest()
	assert.True(t, req.Origin.Equals(start))
	assert.True(t, req.Destination.Equals(end))
	assert.Equal(t, TransportModeTransit, req.Mode)
	assert.True(t, req.ProvideAlternatives, "経路候補は常に複数要求する")
}
