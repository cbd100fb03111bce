package server

import (
	"fmt"
	"log/slog"
	"thesis-proposal-system/config"
	"thesis-proposal-system/internal/global/database"
	"thesis-proposal-system/internal/global/logger"
	"thesis-proposal-system/internal/global/middleware"
	"thesis-proposal-system/internal/module"
	"thesis-proposal-system/tools"

	"github.com/gin-gonic/gin"
)

var log *slog.Logger

func Init() {
	config.Init()
	log = logger.New("Server")

	database.Init()

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Module: %s", m.GetName()))
		m.Init()
	}
}

func Run() {
	cfg := config.Get()
	gin.SetMode(string(cfg.Mode))
	r := gin.New()

	switch cfg.Mode {
	case config.ModeRelease:
		r.Use(middleware.Logger(logger.Get()))
	case config.ModeDebug:
		r.Use(gin.Logger())
	}
	r.Use(middleware.Cors())
	r.Use(middleware.Recovery())

	// 上传的提案文档按存储文件名静态回源
	r.Static(cfg.Storage.BaseURL, cfg.Storage.Home)

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Router: %s", m.GetName()))
		m.InitRouter(r.Group("/" + cfg.Prefix))
	}
	err := r.Run(cfg.Host + ":" + cfg.Port)
	tools.PanicOnErr(err)
}
