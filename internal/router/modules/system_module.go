package modules

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SystemModule serves the root greeting and a liveness probe.
type SystemModule struct{}

func NewSystemModule() *SystemModule { return &SystemModule{} }

func (m *SystemModule) Register(rg *gin.RouterGroup) {
	rg.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "IMF Gadget API"})
	})
	rg.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
