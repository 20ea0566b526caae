package router

import (
	"github.com/gin-gonic/gin"

	"github.com/cocosip/go-huffman-codec/internal/handler"
)

type Dependencies struct {
	CodecHandler *handler.CodecHandler
}

func Register(r *gin.Engine, d Dependencies) {
	// public routes
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	// v1 group
	v1 := r.Group("/api/v1")
	{
		v1.GET("/codecs", d.CodecHandler.List)
		v1.POST("/compress", d.CodecHandler.Compress)
		v1.POST("/decompress", d.CodecHandler.Decompress)
		v1.POST("/analyze", d.CodecHandler.Analyze)
	}
}
