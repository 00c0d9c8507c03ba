package http

import (
	"net/http"

	"github.com/dkeye/Meet/internal/app"
	"github.com/dkeye/Meet/internal/domain"
	"github.com/gin-gonic/gin"
)

func listMembers(engine *app.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := domain.RoomID(c.Param("name"))
		c.JSON(http.StatusOK, gin.H{
			"name":    name,
			"members": engine.MembersOf(name),
		})
	}
}
