package thesis

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"thesis-proposal-system/internal/global/database"
	"thesis-proposal-system/internal/global/docstore"
	"thesis-proposal-system/internal/global/jwt"
	"thesis-proposal-system/internal/global/response"
	"thesis-proposal-system/internal/model"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// maxRequestBodySize 提案提交请求体上限：文档上限外加表单字段的余量
const maxRequestBodySize = docstore.MaxDocumentSize + 1<<20

// SubmitReq 定义提交提案的请求体结构
// @example multipart form-data: title=xxx, abstract=xxx, keywords=["ai","agriculture"], proposalFile=file
type SubmitReq struct {
	Title        string                `form:"title" binding:"required"`
	Abstract     string                `form:"abstract" binding:"required"`
	Keywords     string                `form:"keywords" binding:"required"` // JSON 数组字符串
	ProposalFile *multipart.FileHeader `form:"proposalFile" binding:"required"`
}

// SubmitProposal 学生提交论文提案
// 文本与文件校验全部通过后才落盘文档，记录创建失败时回滚已存储的文件
func SubmitProposal(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	// 限制请求体大小，超限的上传在传输层截断
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestBodySize)

	// 绑定 multipart form-data
	var req SubmitReq
	if err := c.ShouldBind(&req); err != nil {
		// 请求体在传输层被截断说明文档远超大小上限
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			log.Warn("提案提交请求体超限", "student_id", payload.UserID, "limit", maxBytesErr.Limit)
			response.Fail(c, response.ErrFileTooLarge)
			return
		}
		log.Error("绑定提案提交请求失败", "error", err, "student_id", payload.UserID)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	keywords, errResp := parseKeywords(req.Keywords)
	if errResp != nil {
		response.Fail(c, errResp)
		return
	}
	if errResp := validateSubmission(req.Title, req.Abstract, keywords); errResp != nil {
		log.Warn("提案字段校验失败", "student_id", payload.UserID, "msg", errResp.Message)
		response.Fail(c, errResp)
		return
	}

	// 校验并保存文档，任何校验失败都不会产生文件写入
	storedPath, err := store.Save(req.ProposalFile)
	if err != nil {
		log.Warn("提案文档保存失败", "error", err, "student_id", payload.UserID)
		response.Fail(c, err)
		return
	}

	proposal := model.ThesisProposal{
		StudentID:        payload.UserID,
		Title:            req.Title,
		Abstract:         req.Abstract,
		Keywords:         keywords,
		ProposalFilePath: storedPath,
		Status:           model.StatusPendingReview,
		SubmissionDate:   time.Now(),
	}

	if err := database.DB.Create(&proposal).Error; err != nil {
		// 记录创建失败时删除已落盘的文档，避免孤儿文件
		if rmErr := store.Remove(storedPath); rmErr != nil {
			log.Error("回滚提案文档失败", "error", rmErr, "path", storedPath)
		}
		log.Error("创建提案记录失败", "error", err, "student_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("提案提交成功",
		"proposal_id", proposal.ID,
		"student_id", payload.UserID,
		"title", proposal.Title)

	response.Success(c, gin.H{
		"msg":       "论文提案提交成功",
		"proposal":  toProposalView(&proposal),
		"file_path": store.PublicPath(storedPath),
	})
}

// ListAllProposals 管理员查看全部提案，按提交时间倒序
func ListAllProposals(c *gin.Context) {
	var proposals []model.ThesisProposal
	err := database.DB.
		Preload("Student").
		Preload("Supervisor").
		Order("submission_date DESC").
		Find(&proposals).Error
	if err != nil {
		log.Error("获取提案列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, toProposalViews(proposals))
}

// ListStudentProposals 查看指定学生的提案列表
// 学生只能查看自己的，导师和管理员可查看任意学生的
func ListStudentProposals(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	studentID, err := parseIDParam(c)
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips("无效的学生ID"))
		return
	}

	if errResp := canViewStudentProposals(&payload.Payload, studentID); errResp != nil {
		log.Warn("越权查看学生提案", "actor_id", payload.UserID, "student_id", studentID)
		response.Fail(c, errResp)
		return
	}

	var proposals []model.ThesisProposal
	dbErr := database.DB.
		Preload("Student").
		Preload("Supervisor").
		Where("student_id = ?", studentID).
		Find(&proposals).Error
	if dbErr != nil {
		log.Error("获取学生提案列表失败", "error", dbErr, "student_id", studentID)
		response.Fail(c, response.ErrDatabase.WithOrigin(dbErr))
		return
	}

	response.Success(c, toProposalViews(proposals))
}

// ListPendingProposals 导师查看指派给自己的待评审提案
func ListPendingProposals(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var proposals []model.ThesisProposal
	err := database.DB.
		Preload("Student").
		Preload("Supervisor").
		Where("supervisor_id = ? AND status = ?", payload.UserID, model.StatusPendingReview).
		Find(&proposals).Error
	if err != nil {
		log.Error("获取待评审提案失败", "error", err, "supervisor_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, toProposalViews(proposals))
}

// GetProposal 查看单个提案
func GetProposal(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	proposal, errResp := findProposal(c)
	if errResp != nil {
		response.Fail(c, errResp)
		return
	}

	if errResp := canViewProposal(&payload.Payload, proposal); errResp != nil {
		log.Warn("越权查看提案", "actor_id", payload.UserID, "proposal_id", proposal.ID)
		response.Fail(c, errResp)
		return
	}

	response.Success(c, toProposalView(proposal))
}

// UpdateStatusReq 定义更新提案状态的请求体
type UpdateStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// UpdateProposalStatus 更新提案状态
// 只校验状态值合法性，不限制状态间的迁移方向
func UpdateProposalStatus(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定状态更新请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	proposal, errResp := findProposal(c)
	if errResp != nil {
		response.Fail(c, errResp)
		return
	}

	if errResp := canSetStatus(&payload.Payload, proposal); errResp != nil {
		log.Warn("越权更新提案状态", "actor_id", payload.UserID, "proposal_id", proposal.ID)
		response.Fail(c, errResp)
		return
	}

	status := model.ProposalStatus(req.Status)
	if !status.Valid() {
		log.Warn("无效的提案状态", "status", req.Status, "proposal_id", proposal.ID)
		response.Fail(c, response.ErrInvalidStatus.WithTips(req.Status))
		return
	}

	if err := database.DB.Model(proposal).Update("status", status).Error; err != nil {
		log.Error("更新提案状态失败", "error", err, "proposal_id", proposal.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	proposal.Status = status

	log.Info("提案状态已更新",
		"proposal_id", proposal.ID,
		"status", status,
		"actor_id", payload.UserID)

	response.Success(c, gin.H{
		"msg":      "提案状态已更新为 " + string(status),
		"proposal": toProposalView(proposal),
	})
}

// AssignSupervisorReq 定义指派导师的请求体
type AssignSupervisorReq struct {
	SupervisorID uint `json:"supervisor_id" binding:"required"`
}

// AssignSupervisor 管理员为提案指派导师
// 重复指派同一导师是幂等操作；不自动改变提案状态
func AssignSupervisor(c *gin.Context) {
	var req AssignSupervisorReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定指派导师请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	proposal, errResp := findProposal(c)
	if errResp != nil {
		response.Fail(c, errResp)
		return
	}

	// 被指派的用户必须存在且角色为导师
	var supervisor model.User
	err := database.DB.First(&supervisor, req.SupervisorID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Fail(c, response.ErrInvalidRequest.WithTips("指定的导师不存在"))
		return
	case err != nil:
		log.Error("查询导师失败", "error", err, "supervisor_id", req.SupervisorID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if supervisor.Role != model.RoleSupervisor {
		response.Fail(c, response.ErrInvalidRequest.WithTips("指定的用户不是导师"))
		return
	}

	if err := database.DB.Model(proposal).Update("supervisor_id", req.SupervisorID).Error; err != nil {
		log.Error("指派导师失败", "error", err, "proposal_id", proposal.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	proposal.SupervisorID = &req.SupervisorID
	proposal.Supervisor = &supervisor

	log.Info("导师指派成功",
		"proposal_id", proposal.ID,
		"supervisor_id", req.SupervisorID)

	response.Success(c, gin.H{
		"msg":      "导师指派成功",
		"proposal": toProposalView(proposal),
	})
}

// DeleteProposal 删除提案及其文档
// 先尝试删除文档再删除记录，文档已不存在不影响删除
func DeleteProposal(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	proposal, errResp := findProposal(c)
	if errResp != nil {
		response.Fail(c, errResp)
		return
	}

	if errResp := canDeleteProposal(&payload.Payload, proposal); errResp != nil {
		log.Warn("越权删除提案", "actor_id", payload.UserID, "proposal_id", proposal.ID)
		response.Fail(c, errResp)
		return
	}

	// 文档删除失败（非不存在）时保留记录，避免留下指向文件的悬空条目
	if err := store.Remove(proposal.ProposalFilePath); err != nil {
		log.Error("删除提案文档失败", "error", err, "path", proposal.ProposalFilePath)
		response.Fail(c, err)
		return
	}

	if err := database.DB.Unscoped().Delete(proposal).Error; err != nil {
		log.Error("删除提案记录失败", "error", err, "proposal_id", proposal.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("提案已删除",
		"proposal_id", proposal.ID,
		"actor_id", payload.UserID)

	response.Success(c, gin.H{"msg": "提案及其文档已删除"})
}

// ListSupervisors 管理员获取导师列表，用于指派
func ListSupervisors(c *gin.Context) {
	var supervisors []model.User
	err := database.DB.
		Where("role = ?", model.RoleSupervisor).
		Order("username").
		Find(&supervisors).Error
	if err != nil {
		log.Error("获取导师列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	summaries := make([]*model.UserSummary, 0, len(supervisors))
	for i := range supervisors {
		summaries = append(summaries, supervisors[i].Summary())
	}
	response.Success(c, summaries)
}

// findProposal 根据路径参数查找提案，附带学生与导师信息
func findProposal(c *gin.Context) (*model.ThesisProposal, *response.Error) {
	id, err := parseIDParam(c)
	if err != nil {
		return nil, response.ErrNotFound.WithTips("无效的提案ID")
	}

	var proposal model.ThesisProposal
	dbErr := database.DB.
		Preload("Student").
		Preload("Supervisor").
		First(&proposal, id).Error
	switch {
	case errors.Is(dbErr, gorm.ErrRecordNotFound):
		return nil, response.ErrNotFound.WithTips("提案不存在")
	case dbErr != nil:
		log.Error("查询提案失败", "error", dbErr, "proposal_id", id)
		return nil, response.ErrDatabase.WithOrigin(dbErr)
	}
	return &proposal, nil
}

func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}
