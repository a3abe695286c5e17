package apis

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type HomeAPI struct{}

func NewHomeAPI() *HomeAPI {
	return &HomeAPI{}
}

func (a *HomeAPI) Setup(g *echo.Group) {
	g.GET("/", a.home)
}

func (a *HomeAPI) home(c echo.Context) error {
	return render(c, http.StatusOK, "pages/home.html", nil, "")
}
