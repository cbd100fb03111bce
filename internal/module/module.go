package module

import (
	"thesis-proposal-system/internal/module/auth"
	"thesis-proposal-system/internal/module/ping"
	"thesis-proposal-system/internal/module/thesis"

	"github.com/gin-gonic/gin"
)

type Module interface {
	GetName() string
	Init()
	InitRouter(r *gin.RouterGroup)
}

var Modules []Module

func registerModule(m []Module) {
	Modules = append(Modules, m...)
}

func init() {
	// Register your module here
	registerModule([]Module{
		&auth.ModuleAuth{},
		&thesis.ModuleThesis{},
		&ping.ModulePing{},
	})
}
