package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/cocosip/go-huffman-codec/internal/config"
	"github.com/cocosip/go-huffman-codec/internal/handler"
	"github.com/cocosip/go-huffman-codec/internal/logger"
	"github.com/cocosip/go-huffman-codec/internal/router"
	"github.com/cocosip/go-huffman-codec/internal/service"
)

func main() {
	// config and logger
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logg := logger.New(cfg.LogLevel)

	// dependencies
	codecSvc := service.NewCodecService(logg)
	codecH := handler.NewCodecHandler(codecSvc, cfg.MaxBodyBytes)

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Recovery(), handler.RequestLogger(logg))
	router.Register(r, router.Dependencies{
		CodecHandler: codecH,
	})

	logg.Infof("starting server at %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
