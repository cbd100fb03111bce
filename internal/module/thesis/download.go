package thesis

import (
	"mime"
	"path/filepath"
	"strings"
	"thesis-proposal-system/internal/global/jwt"
	"thesis-proposal-system/internal/global/response"
	"thesis-proposal-system/tools"

	"github.com/gin-gonic/gin"
)

// DownloadProposalFile 下载提案文档，访问控制与查看提案一致
func DownloadProposalFile(c *gin.Context) {
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
		log.Warn("越权下载提案文档", "actor_id", payload.UserID, "proposal_id", proposal.ID)
		response.Fail(c, errResp)
		return
	}

	if !tools.FileExist(proposal.ProposalFilePath) {
		log.Warn("提案文档缺失", "proposal_id", proposal.ID, "path", proposal.ProposalFilePath)
		response.Fail(c, response.ErrNotFound.WithTips("提案文档不存在"))
		return
	}

	contentType := mime.TypeByExtension(filepath.Ext(proposal.ProposalFilePath))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := tools.SendStoredFile(c, proposal.ProposalFilePath, displayName(proposal.ProposalFilePath), contentType); err != nil {
		log.Error("发送提案文档失败", "error", err, "proposal_id", proposal.ID)
		response.Fail(c, response.ErrFileSystem.WithOrigin(err))
	}
}

// displayName 去掉存储文件名中的时间戳前缀，还原原始文件名
func displayName(storedPath string) string {
	base := filepath.Base(storedPath)
	if idx := strings.Index(base, "-"); idx > 0 && isAllDigits(base[:idx]) {
		return base[idx+1:]
	}
	return base
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
