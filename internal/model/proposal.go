package model

import "time"

// ProposalStatus 提案评审状态
type ProposalStatus string

const (
	StatusPendingReview ProposalStatus = "pending_review" // 初始状态
	StatusApproved      ProposalStatus = "approved"
	StatusRejected      ProposalStatus = "rejected"
	StatusInProgress    ProposalStatus = "in_progress"
	StatusCompleted     ProposalStatus = "completed"
)

// Valid 判断状态是否为五种定义值之一
// 状态间不做迁移合法性校验，任何授权操作者可以设置任意合法状态
func (s ProposalStatus) Valid() bool {
	switch s {
	case StatusPendingReview, StatusApproved, StatusRejected, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// ThesisProposal 论文开题提案
// 每条提案归属一名学生，恰好绑定一份上传文档，可由管理员指派一名导师
type ThesisProposal struct {
	Model
	StudentID        uint           `gorm:"index;not null" json:"student_id"`
	Student          *User          `gorm:"foreignKey:StudentID" json:"-"`
	Title            string         `gorm:"type:varchar(255);not null" json:"title"`
	Abstract         string         `gorm:"type:text;not null" json:"abstract"`
	Keywords         []string       `gorm:"serializer:json;type:json" json:"keywords"`
	ProposalFilePath string         `gorm:"type:varchar(500);not null" json:"proposal_file_path"`
	SupervisorID     *uint          `gorm:"index" json:"supervisor_id"`
	Supervisor       *User          `gorm:"foreignKey:SupervisorID" json:"-"`
	Status           ProposalStatus `gorm:"type:varchar(20);not null;default:pending_review" json:"status"`

	// AI 分析占位字段，当前不做任何计算
	AIPlagiarismScore float64 `gorm:"default:0" json:"ai_plagiarism_score"`
	AIGrammarScore    float64 `gorm:"default:0" json:"ai_grammar_score"`
	AIFeedback        string  `gorm:"type:text" json:"ai_feedback"`

	SubmissionDate time.Time `gorm:"index" json:"submission_date"`
}
