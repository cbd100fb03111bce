package thesis

import (
	"encoding/json"
	"thesis-proposal-system/internal/global/jwt"
	"thesis-proposal-system/internal/global/response"
	"thesis-proposal-system/internal/model"
	"unicode/utf8"
)

// 提案字段的最小长度要求
const (
	minTitleLen    = 10
	minAbstractLen = 50
)

// validateSubmission 校验提案文本字段，返回第一个不满足要求的字段错误
func validateSubmission(title, abstract string, keywords []string) *response.Error {
	if utf8.RuneCountInString(title) < minTitleLen {
		return response.ErrInvalidRequest.WithTips("标题长度不能少于10个字符")
	}
	if utf8.RuneCountInString(abstract) < minAbstractLen {
		return response.ErrInvalidRequest.WithTips("摘要长度不能少于50个字符")
	}
	if len(keywords) == 0 {
		return response.ErrInvalidRequest.WithTips("关键词不能为空")
	}
	return nil
}

// parseKeywords 解析关键词 JSON 数组字符串，保持顺序
func parseKeywords(raw string) ([]string, *response.Error) {
	var keywords []string
	if err := json.Unmarshal([]byte(raw), &keywords); err != nil {
		return nil, response.ErrInvalidRequest.WithTips("关键词格式错误，应为 JSON 数组字符串")
	}
	return keywords, nil
}

// canViewStudentProposals 学生只能查看自己的提案列表，导师和管理员不受限
func canViewStudentProposals(payload *jwt.Payload, studentID uint) *response.Error {
	if payload.Role == model.RoleStudent && payload.UserID != studentID {
		return response.ErrForbidden.WithTips("不能查看其他学生的提案")
	}
	return nil
}

// canViewProposal 学生只能查看自己拥有的提案
func canViewProposal(payload *jwt.Payload, proposal *model.ThesisProposal) *response.Error {
	if payload.Role == model.RoleStudent && proposal.StudentID != payload.UserID {
		return response.ErrForbidden.WithTips("不能查看其他学生的提案")
	}
	return nil
}

// canSetStatus 导师只能修改指派给自己的提案状态，管理员不受限
func canSetStatus(payload *jwt.Payload, proposal *model.ThesisProposal) *response.Error {
	if payload.Role != model.RoleSupervisor {
		return nil
	}
	if proposal.SupervisorID == nil || *proposal.SupervisorID != payload.UserID {
		return response.ErrForbidden.WithTips("只能修改指派给自己的提案状态")
	}
	return nil
}

// canDeleteProposal 管理员可无条件删除
// 学生只能删除自己的提案，且仅限仍处于待评审状态时
func canDeleteProposal(payload *jwt.Payload, proposal *model.ThesisProposal) *response.Error {
	if payload.Role == model.RoleAdmin {
		return nil
	}
	if proposal.StudentID != payload.UserID {
		return response.ErrForbidden.WithTips("不能删除其他学生的提案")
	}
	if proposal.Status != model.StatusPendingReview {
		return response.ErrForbidden.WithTips("提案已进入评审流程，无法删除")
	}
	return nil
}
