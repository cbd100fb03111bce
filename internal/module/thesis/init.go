package thesis

import (
	"log/slog"
	"thesis-proposal-system/config"
	"thesis-proposal-system/internal/global/docstore"
	"thesis-proposal-system/internal/global/logger"
)

var log *slog.Logger

// store 提案文档存储，Init 时根据配置创建
var store *docstore.DocStore

type ModuleThesis struct{}

func (t *ModuleThesis) GetName() string {
	return "Thesis"
}

func (t *ModuleThesis) Init() {
	log = logger.New("Thesis")
	cfg := config.Get()
	store = docstore.New(cfg.Storage.Home, cfg.Storage.BaseURL)
}
