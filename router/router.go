package router

import (
	"github.com/labstack/echo/v4"

	"farmlens/pkg/middleware"
)

func New(
	e *echo.Echo,
	actCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Get(echo.Context) error
		Delete(echo.Context) error
	},
	cropCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Get(echo.Context) error
	},
	soilCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Get(echo.Context) error
		Trends(echo.Context) error
		Analysis(echo.Context) error
		Recommendations(echo.Context) error
	},
	insightsCtrl interface {
		Financial(echo.Context) error
		Report(echo.Context) error
		Snapshots(echo.Context) error
		ImportPrices(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(middleware.DevLogin())
	api := e.Group("")

	e.GET("/health", healthCtrl.Health)

	api.POST("/activities", actCtrl.Create)
	api.GET("/activities", actCtrl.List)
	api.GET("/activities/:id", actCtrl.Get)
	api.DELETE("/activities/:id", actCtrl.Delete)

	api.POST("/crops", cropCtrl.Create)
	api.GET("/crops", cropCtrl.List)
	api.GET("/crops/:id", cropCtrl.Get)

	api.POST("/soil-tests", soilCtrl.Create)
	api.GET("/soil-tests", soilCtrl.List)
	api.GET("/soil-tests/trends", soilCtrl.Trends)
	api.GET("/soil-tests/:id", soilCtrl.Get)
	api.GET("/soil-tests/:id/analysis", soilCtrl.Analysis)
	api.GET("/soil-tests/:id/recommendations", soilCtrl.Recommendations)

	api.GET("/insights/financial", insightsCtrl.Financial)
	api.GET("/insights/report", insightsCtrl.Report)
	api.GET("/insights/snapshots", insightsCtrl.Snapshots)
	api.POST("/prices/import", insightsCtrl.ImportPrices)

	return e
}
