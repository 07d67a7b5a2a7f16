package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb"

	"CampusNav-App/internal/usecase"
)

// MapHandler は地図状態APIのハンドラー
type MapHandler struct {
	mapUseCase usecase.MapUseCase
}

// NewMapHandler は新しいMapHandlerインスタンスを作成
func NewMapHandler(mapUseCase usecase.MapUseCase) *MapHandler {
	return &MapHandler{mapUseCase: mapUseCase}
}

// viewportRequest ビューポート確定イベントのリクエストボディ
type viewportRequest struct {
	Zoom  *float64 `json:"zoom" binding:"required"`
	South *float64 `json:"south" binding:"required"`
	West  *float64 `json:"west" binding:"required"`
	North *float64 `json:"north" binding:"required"`
	East  *float64 `json:"east" binding:"required"`
}

// PostViewport はビューポート確定イベントを受け取るエンドポイント
// POST /api/map/viewport
func (h *MapHandler) PostViewport(c *gin.Context) {
	var req viewportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	bounds := orb.Bound{
		Min: orb.Point{*req.West, *req.South},
		Max: orb.Point{*req.East, *req.North},
	}
	h.mapUseCase.OnViewportSettled(*req.Zoom, bounds)

	c.JSON(http.StatusOK, h.mapUseCase.GetControlsState())
}

// GetControls はオーバーレイ制御の現在状態を返すエンドポイント
// GET /api/map/controls
func (h *MapHandler) GetControls(c *gin.Context) {
	c.JSON(http.StatusOK, h.mapUseCase.GetControlsState())
}

// GetPOIs は全屋外POIを宣言順で返すエンドポイント
// GET /api/map/pois
func (h *MapHandler) GetPOIs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"pois": h.mapUseCase.GetPOIs()})
}

// GetPOI は名前でPOIを返すエンドポイント
// GET /api/map/pois/:name
func (h *MapHandler) GetPOI(c *gin.Context) {
	poi := h.mapUseCase.GetPOI(c.Param("name"))
	if poi == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "POIが見つかりません"})
		return
	}
	c.JSON(http.StatusOK, poi)
}

// GetIndoorMaps はフォーカス建物の屋内マップ一覧を返すエンドポイント
// GET /api/map/indoor-maps
func (h *MapHandler) GetIndoorMaps(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"indoor_maps": h.mapUseCase.LoadIndoorMaps()})
}
