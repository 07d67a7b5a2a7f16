package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"CampusNav-App/internal/domain/model"
	"CampusNav-App/internal/usecase"
)

// RouteHandler はルートAPIのハンドラー
type RouteHandler struct {
	routeUseCase usecase.RouteUseCase
}

// NewRouteHandler は新しいRouteHandlerインスタンスを作成
func NewRouteHandler(routeUseCase usecase.RouteUseCase) *RouteHandler {
	return &RouteHandler{routeUseCase: routeUseCase}
}

// generateRoutesRequest ルート生成のリクエストボディ
type generateRoutesRequest struct {
	Start      *model.Coordinates `json:"start" binding:"required"`
	End        *model.Coordinates `json:"end" binding:"required"`
	StartTime  *time.Time         `json:"start_time"`
	EndTime    *time.Time         `json:"end_time"`
	Mode       string             `json:"mode"`
	Accessible bool               `json:"accessible"`
}

// PostRoutes はルート候補を生成するエンドポイント
// POST /api/routes
func (h *RouteHandler) PostRoutes(c *gin.Context) {
	var req generateRoutesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	input := usecase.GenerateRoutesInput{
		Start:     *req.Start,
		End:       *req.End,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Mode:      model.TransportMode(req.Mode),
	}

	var routes []model.Route
	var err error
	if req.Accessible {
		routes, err = h.routeUseCase.GenerateAccessibleRoutes(c.Request.Context(), input)
	} else {
		routes, err = h.routeUseCase.GenerateDefaultRoutes(c.Request.Context(), input)
	}

	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidTransportMode):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, model.ErrAccessibleRoutesNotSupported):
			c.JSON(http.StatusNotImplemented, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "ルート候補の生成に失敗しました",
				"details": err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"routes": routes})
}

// routeStepRequest 屋内ルートの1区間のリクエスト表現
type routeStepRequest struct {
	Start model.Coordinates   `json:"start_coordinate"`
	End   model.Coordinates   `json:"end_coordinate"`
	Path  []model.Coordinates `json:"path"`
}

// displayRouteRequest ルート表示のリクエストボディ。
// typeに応じてoutdoorまたはindoorのどちらかが必須になる
type displayRouteRequest struct {
	Type    string              `json:"type" binding:"required,oneof=outdoor indoor"`
	Floor   int                 `json:"floor"`
	Outdoor *model.OutdoorRoute `json:"outdoor"`
	Indoor  *struct {
		Start      model.Coordinates  `json:"start_coordinates"`
		End        model.Coordinates  `json:"end_coordinates"`
		RouteSteps []routeStepRequest `json:"route_steps"`
	} `json:"indoor"`
}

// PostDisplayRoute はルートを描画するエンドポイント
// POST /api/routes/display
func (h *RouteHandler) PostDisplayRoute(c *gin.Context) {
	var req displayRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	route, err := h.buildRoute(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "ルートの組み立てに失敗しました",
			"details": err.Error(),
		})
		return
	}

	if err := h.routeUseCase.DisplayRoute(c.Request.Context(), route, req.Floor); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "ルートの描画に失敗しました",
			"details": err.Error(),
		})
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteDestinationMarkers は目的地マーカーを削除するエンドポイント
// DELETE /api/routes/markers
func (h *RouteHandler) DeleteDestinationMarkers(c *gin.Context) {
	h.routeUseCase.DeleteDestinationMarkers()
	c.Status(http.StatusNoContent)
}

// buildRoute リクエスト表現からドメインのRouteバリアントを組み立てる。
// 屋内ルートの各ステップは幾何的な不変条件をここで検証する
func (h *RouteHandler) buildRoute(req *displayRouteRequest) (model.Route, error) {
	if req.Type == "outdoor" {
		if req.Outdoor == nil {
			return nil, errors.New("outdoorルートの本体がありません")
		}
		if req.Outdoor.RouteID == "" {
			req.Outdoor.RouteID = uuid.NewString()
		}
		return req.Outdoor, nil
	}

	if req.Indoor == nil {
		return nil, errors.New("indoorルートの本体がありません")
	}
	steps := make([]model.RouteStep, 0, len(req.Indoor.RouteSteps))
	for _, stepReq := range req.Indoor.RouteSteps {
		step, err := model.NewRouteStep(stepReq.Start, stepReq.End, stepReq.Path)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	return &model.IndoorRoute{
		RouteID:          uuid.NewString(),
		StartCoordinates: req.Indoor.Start,
		EndCoordinates:   req.Indoor.End,
		RouteSteps:       steps,
	}, nil
}
