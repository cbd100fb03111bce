package thesis

import (
	"thesis-proposal-system/internal/model"
)

// ProposalView 提案响应结构，附带学生与导师的摘要信息
type ProposalView struct {
	model.ThesisProposal
	Student    *model.UserSummary `json:"student"`
	Supervisor *model.UserSummary `json:"supervisor"`
	FilePath   string             `json:"file_path"` // 文档对外访问路径
}

func toProposalView(p *model.ThesisProposal) ProposalView {
	return ProposalView{
		ThesisProposal: *p,
		Student:        p.Student.Summary(),
		Supervisor:     p.Supervisor.Summary(),
		FilePath:       store.PublicPath(p.ProposalFilePath),
	}
}

func toProposalViews(proposals []model.ThesisProposal) []ProposalView {
	views := make([]ProposalView, 0, len(proposals))
	for i := range proposals {
		views = append(views, toProposalView(&proposals[i]))
	}
	return views
}
