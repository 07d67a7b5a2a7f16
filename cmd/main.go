package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"CampusNav-App/internal/domain/factory"
	"CampusNav-App/internal/domain/service"
	"CampusNav-App/internal/handler"
	"CampusNav-App/internal/infrastructure/location"
	"CampusNav-App/internal/infrastructure/maps"
	"CampusNav-App/internal/infrastructure/render"
	"CampusNav-App/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	apiKey := os.Getenv("GOOGLE_MAPS_API_KEY")
	if apiKey == "" {
		fmt.Println("⚠️  環境変数が設定されていません:")
		fmt.Println("必要な環境変数: GOOGLE_MAPS_API_KEY")
		fmt.Println("\n.envファイルを作成するか、環境変数を設定してください")
		log.Fatal("Environment variables not set")
	}

	// 外部コラボレーターの初期化
	renderer := render.NewHeadlessRenderer()
	locationProvider := location.NewEnvLocationProvider()
	directionsProvider := maps.NewGoogleDirectionsProvider(apiKey)
	placesProvider := maps.NewGooglePlacesProvider(apiKey)

	// POIツリーの構築（設定の不備はここで致命的エラー）
	fmt.Println("Building outdoor POI tree...")
	poiFactory := factory.NewAbstractPOIFactory()
	mapService, err := service.NewMapService(poiFactory, renderer, locationProvider, placesProvider)
	if err != nil {
		log.Fatalf("屋外マップの構築に失敗: %v", err)
	}
	fmt.Println("✅ Outdoor POI tree ready!")

	mapHandle := mapService.LoadMap(context.Background())

	// ドメインサービスの初期化
	visibilityEngine := service.NewVisibilityEngine(mapService.GetOutdoorMap(), service.DefaultVisibilityConfig())
	shuttleService := service.NewShuttleService(renderer)
	routeDisplayService := service.NewRouteDisplayService(renderer, directionsProvider, shuttleService, mapService)
	routeFactory := service.NewRouteFactory(directionsProvider)
	indoorFactory := poiFactory.CreateIndoorPOIFactory()
	searchService := service.NewSearchService(placesProvider, indoorFactory.LoadIndoorCodeIndex())

	// ユースケースとハンドラーの初期化
	mapUseCase := usecase.NewMapUseCase(mapService, visibilityEngine, mapHandle)
	searchUseCase := usecase.NewSearchUseCase(searchService, mapHandle)
	routeUseCase := usecase.NewRouteUseCase(routeFactory, routeDisplayService, mapHandle)

	mapHandler := handler.NewMapHandler(mapUseCase)
	searchHandler := handler.NewSearchHandler(searchUseCase)
	routeHandler := handler.NewRouteHandler(routeUseCase)

	router := gin.Default()
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": "CampusNav-App"})
	})

	api := router.Group("/api")
	{
		api.POST("/map/viewport", mapHandler.PostViewport)
		api.GET("/map/controls", mapHandler.GetControls)
		api.GET("/map/pois", mapHandler.GetPOIs)
		api.GET("/map/pois/:name", mapHandler.GetPOI)
		api.GET("/map/indoor-maps", mapHandler.GetIndoorMaps)

		api.GET("/search", searchHandler.GetSearch)
		api.POST("/search/select", searchHandler.PostSelect)
		api.DELETE("/search", searchHandler.DeleteSearch)

		api.POST("/routes", routeHandler.PostRoutes)
		api.POST("/routes/display", routeHandler.PostDisplayRoute)
		api.DELETE("/routes/markers", routeHandler.DeleteDestinationMarkers)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("CampusNav-App server starting on :%s...\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("サーバーの起動に失敗: %v", err)
	}
}
