package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CampusNav-App/internal/domain/model"
	"CampusNav-App/internal/usecase"
)

type stubRouteUseCase struct {
	displayedRoute model.Route
	displayedFloor int
	deleteCalls    int
}

func (s *stubRouteUseCase) GenerateDefaultRoutes(ctx context.Context, input usecase.GenerateRoutesInput) ([]model.Route, error) {
	if input.Mode != "" && !input.Mode.IsValid() {
		return nil, model.ErrInvalidTransportMode
	}
	return []model.Route{&model.OutdoorRoute{RouteID: "r1", StartCoordinates: input.Start, EndCoordinates: input.End}}, nil
}

func (s *stubRouteUseCase) GenerateAccessibleRoutes(ctx context.Context, input usecase.GenerateRoutesInput) ([]model.Route, error) {
	return nil, model.ErrAccessibleRoutesNotSupported
}

func (s *stubRouteUseCase) DisplayRoute(ctx context.Context, route model.Route, indoorMapLevel int) error {
	s.displayedRoute = route
	s.displayedFloor = indoorMapLevel
	return nil
}

func (s *stubRouteUseCase) DeleteDestinationMarkers() {
	s.deleteCalls++
}

func newRouteTestRouter(stub *stubRouteUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewRouteHandler(stub)
	router := gin.New()
	router.POST("/api/routes", h.PostRoutes)
	router.POST("/api/routes/display", h.PostDisplayRoute)
	router.DELETE("/api/routes/markers", h.DeleteDestinationMarkers)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestRouteHandler_PostRoutes(t *testing.T) {
	router := newRouteTestRouter(&stubRouteUseCase{})

	t.Run("有効な条件は200", func(t *testing.T) {
		w := postJSON(router, "/api/routes", `{
			"start": {"latitude": 45.4959053, "longitude": -73.5801141},
			"end":   {"latitude": 45.4582, "longitude": -73.6405},
			"mode":  "TRANSIT"
		}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("未定義の移動手段は400", func(t *testing.T) {
		w := postJSON(router, "/api/routes", `{
			"start": {"latitude": 45.4959053, "longitude": -73.5801141},
			"end":   {"latitude": 45.4582, "longitude": -73.6405},
			"mode":  "FLYING"
		}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("バリアフリールートは501", func(t *testing.T) {
		w := postJSON(router, "/api/routes", `{
			"start": {"latitude": 45.4959053, "longitude": -73.5801141},
			"end":   {"latitude": 45.4582, "longitude": -73.6405},
			"accessible": true
		}`)
		assert.Equal(t, http.StatusNotImplemented, w.Code)
	})

	t.Run("始点がない場合は400", func(t *testing.T) {
		w := postJSON(router, "/api/routes", `{"end": {"latitude": 45.4582, "longitude": -73.6405}}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRouteHandler_PostDisplayRoute(t *testing.T) {
	t.Run("屋内ルートはステップを検証した上で描画される", func(t *testing.T) {
		stub := &stubRouteUseCase{}
		router := newRouteTestRouter(stub)

		w := postJSON(router, "/api/routes/display", `{
			"type": "indoor",
			"floor": 8,
			"indoor": {
				"start_coordinates": {"latitude": 45.4971, "longitude": -73.5790, "floor": 8},
				"end_coordinates":   {"latitude": 45.4972, "longitude": -73.5791, "floor": 8},
				"route_steps": [{
					"start_coordinate": {"latitude": 45.4971, "longitude": -73.5790, "floor": 8},
					"end_coordinate":   {"latitude": 45.4972, "longitude": -73.5791, "floor": 8},
					"path": [
						{"latitude": 45.4971, "longitude": -73.5790, "floor": 8},
						{"latitude": 45.4972, "longitude": -73.5791, "floor": 8}
					]
				}]
			}
		}`)
		require.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, 8, stub.displayedFloor)

		indoor, ok := stub.displayedRoute.(*model.IndoorRoute)
		require.True(t, ok)
		assert.NotEmpty(t, indoor.RouteID)
		assert.Len(t, indoor.RouteSteps, 1)
	})

	t.Run("幾何的に不正なステップは400", func(t *testing.T) {
		router := newRouteTestRouter(&stubRouteUseCase{})

		// pathの先頭が始点と一致しない
		w := postJSON(router, "/api/routes/display", `{
			"type": "indoor",
			"floor": 8,
			"indoor": {
				"start_coordinates": {"latitude": 45.4971, "longitude": -73.5790, "floor": 8},
				"end_coordinates":   {"latitude": 45.4972, "longitude": -73.5791, "floor": 8},
				"route_steps": [{
					"start_coordinate": {"latitude": 45.4971, "longitude": -73.5790, "floor": 8},
					"end_coordinate":   {"latitude": 45.4972, "longitude": -73.5791, "floor": 8},
					"path": [
						{"latitude": 45.0, "longitude": -73.0, "floor": 8},
						{"latitude": 45.4972, "longitude": -73.5791, "floor": 8}
					]
				}]
			}
		}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("未知のルート種別は400", func(t *testing.T) {
		router := newRouteTestRouter(&stubRouteUseCase{})
		w := postJSON(router, "/api/routes/display", `{"type": "underground"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("本体のない屋外ルートは400", func(t *testing.T) {
		router := newRouteTestRouter(&stubRouteUseCase{})
		w := postJSON(router, "/api/routes/display", `{"type": "outdoor"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRouteHandler_DeleteDestinationMarkers(t *testing.T) {
	stub := &stubRouteUseCase{}
	router := newRouteTestRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/routes/markers", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 1, stub.deleteCalls)
}
