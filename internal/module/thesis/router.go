package thesis

import (
	"thesis-proposal-system/internal/global/middleware"
	"thesis-proposal-system/internal/model"

	"github.com/gin-gonic/gin"
)

// InitRouter 初始化论文提案模块的路由
// 每个端点声明自己要求的角色集合，空集合表示任何已认证用户
func (t *ModuleThesis) InitRouter(r *gin.RouterGroup) {
	thesesGroup := r.Group("/theses")

	thesesGroup.POST("/proposals",
		middleware.Auth(model.RoleStudent), SubmitProposal)
	thesesGroup.GET("/proposals",
		middleware.Auth(model.RoleAdmin), ListAllProposals)
	thesesGroup.GET("/proposals/export",
		middleware.Auth(model.RoleAdmin), ExportProposals)
	thesesGroup.GET("/proposals/student/:id",
		middleware.Auth(model.RoleStudent, model.RoleSupervisor, model.RoleAdmin), ListStudentProposals)
	thesesGroup.GET("/proposals/pending-supervisor",
		middleware.Auth(model.RoleSupervisor), ListPendingProposals)
	thesesGroup.GET("/proposals/:id",
		middleware.Auth(model.RoleStudent, model.RoleSupervisor, model.RoleAdmin), GetProposal)
	thesesGroup.GET("/proposals/:id/file",
		middleware.Auth(model.RoleStudent, model.RoleSupervisor, model.RoleAdmin), DownloadProposalFile)
	thesesGroup.PUT("/proposals/:id/status",
		middleware.Auth(model.RoleSupervisor, model.RoleAdmin), UpdateProposalStatus)
	thesesGroup.PUT("/proposals/:id/assign-supervisor",
		middleware.Auth(model.RoleAdmin), AssignSupervisor)
	thesesGroup.DELETE("/proposals/:id",
		middleware.Auth(model.RoleAdmin, model.RoleStudent), DeleteProposal)
	thesesGroup.GET("/supervisors",
		middleware.Auth(model.RoleAdmin), ListSupervisors)
}
