package apis

import (
	"context"
	"fyyur-backend/cmd/fyyur/model"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type HealthCheckAPI struct {
	db *gorm.DB
}

func NewHealthCheckAPI(db *gorm.DB) *HealthCheckAPI {
	return &HealthCheckAPI{
		db: db,
	}
}

func (a *HealthCheckAPI) Setup(g *echo.Group) {
	g.GET("/healthz", a.healthCheck)
}

func (a *HealthCheckAPI) healthCheck(c echo.Context) error {

	sqlDB, err := a.db.DB()
	if err != nil {
		return c.JSON(
			http.StatusServiceUnavailable,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return c.JSON(
			http.StatusServiceUnavailable,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	stats := sqlDB.Stats()
	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "healthy",
			Data: echo.Map{
				"open_connections": stats.OpenConnections,
				"in_use":           stats.InUse,
				"idle":             stats.Idle,
			},
		},
	)
}
