package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tripfolio/travel-platform/internal/core/ports"
	"github.com/tripfolio/travel-platform/internal/health"
	"github.com/tripfolio/travel-platform/internal/rpc"
)

// NewRouter builds the Echo instance for the travel service.
func NewRouter(travel ports.TravelService, db *mongo.Database, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = rpc.NewHTTPErrorHandler(log)

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())

	h := NewHandler(travel)

	v1 := e.Group("/internal/v1")
	v1.POST("/travels", h.Create)
	v1.GET("/travels", h.List)
	v1.GET("/travels/:id", h.Get)
	v1.PUT("/travels/:id", h.Update)
	v1.DELETE("/travels/:id", h.Delete)
	v1.POST("/travels/:id/revision", h.SubmitRevision)
	v1.POST("/travels/:id/revision/approve", h.ApproveRevision)
	v1.POST("/travels/:id/revision/reject", h.RejectRevision)

	health.NewHandler(db, nil).Register(e)

	return e
}
