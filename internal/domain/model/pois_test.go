package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMarker struct {
	removed bool
	visible bool
}

func (m *stubMarker) SetVisible(visible bool) { m.visible = visible }
func (m *stubMarker) Position() LatLng        { return LatLng{} }
func (m *stubMarker) Remove()                 { m.removed = true }

func TestIndoorMap_DestinationMarkers(t *testing.T) {
	t.Run("マーカーは最大2つまで保持される", func(t *testing.T) {
		m := NewIndoorMap(8, "H", nil)
		markers := []MarkerHandle{&stubMarker{}, &stubMarker{}, &stubMarker{}}
		m.SetDestinationMarkers(markers)
		assert.Len(t, m.GetDestinationMarkers(), 2)
	})

	t.Run("削除で全マーカーが地図から外れる", func(t *testing.T) {
		m := NewIndoorMap(8, "H", nil)
		first := &stubMarker{}
		second := &stubMarker{}
		m.SetDestinationMarkers([]MarkerHandle{first, second})

		m.DeleteDestinationMarkers()
		assert.True(t, first.removed)
		assert.True(t, second.removed)
		assert.Empty(t, m.GetDestinationMarkers())
	})
}

func TestLink_ConnectsFloor(t *testing.T) {
	link := &Link{
		Name:     "Elevator H8",
		LinkType: LinkTypeElevator,
		ExitCoordinates: []Coordinates{
			NewIndoorCoordinates(45.4972625, -73.5789858, 1),
			NewIndoorCoordinates(45.4972625, -73.5789858, 8),
			NewIndoorCoordinates(45.4972625, -73.5789858, 9),
		},
	}

	assert.True(t, link.ConnectsFloor(1))
	assert.True(t, link.ConnectsFloor(9))
	assert.False(t, link.ConnectsFloor(2))
}

func TestLinkType_IsValid(t *testing.T) {
	assert.True(t, LinkTypeElevator.IsValid())
	assert.True(t, LinkTypeStairs.IsValid())
	assert.True(t, LinkTypeEscalator.IsValid())
	assert.False(t, LinkType("LADDER").IsValid())
}

func TestOutdoorMap(t *testing.T) {
	hall := &Building{Name: HallBuildingName, Code: HallBuildingCode}
	sgw := &Campus{Name: CampusNameSGW, Buildings: []*Building{hall}}
	loyola := &Campus{Name: CampusNameLoyola}
	outdoorMap := NewOutdoorMap([]OutdoorPOI{sgw, hall, loyola})

	t.Run("POIは登録順のまま返る", func(t *testing.T) {
		pois := outdoorMap.GetPOIs()
		require.Len(t, pois, 3)
		assert.Equal(t, CampusNameSGW, pois[0].GetName())
		assert.Equal(t, HallBuildingName, pois[1].GetName())
	})

	t.Run("名前で建物を検索できる", func(t *testing.T) {
		assert.Same(t, hall, outdoorMap.GetBuilding(HallBuildingName))
		assert.Nil(t, outdoorMap.GetBuilding(CampusNameSGW), "キャンパスは建物として返らない")
		assert.Nil(t, outdoorMap.GetBuilding("unknown"))
	})

	t.Run("キャンパスは宣言順で返る", func(t *testing.T) {
		campuses := outdoorMap.GetCampuses()
		require.Len(t, campuses, 2)
		assert.Equal(t, CampusNameSGW, campuses[0].Name)
		assert.Equal(t, CampusNameLoyola, campuses[1].Name)
	})
}

func TestCoordinates_Equals(t *testing.T) {
	outdoor := NewCoordinates(45.0, -73.0)
	indoor8 := NewIndoorCoordinates(45.0, -73.0, 8)
	indoor9 := NewIndoorCoordinates(45.0, -73.0, 9)

	assert.True(t, outdoor.Equals(NewCoordinates(45.0, -73.0)))
	assert.True(t, indoor8.Equals(NewIndoorCoordinates(45.0, -73.0, 8)))
	assert.False(t, outdoor.Equals(indoor8), "屋外と屋内は区別される")
	assert.False(t, indoor8.Equals(indoor9))
	assert.False(t, outdoor.Equals(NewCoordinates(45.0, -73.1)))
}
