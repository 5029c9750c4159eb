package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type GameCounter interface {
	Count() int
}

type healthResponse struct {
	Status string `json:"status"`
	Games  int    `json:"games"`
}

func HealthHandler(counter GameCounter) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, healthResponse{Status: "ok", Games: counter.Count()})
	}
}
