package thesis

import (
	"testing"
	"thesis-proposal-system/internal/global/jwt"
	"thesis-proposal-system/internal/global/response"
	"thesis-proposal-system/internal/model"

	"github.com/stretchr/testify/require"
)

func student(id uint) *jwt.Payload {
	return &jwt.Payload{UserID: id, Role: model.RoleStudent}
}

func supervisor(id uint) *jwt.Payload {
	return &jwt.Payload{UserID: id, Role: model.RoleSupervisor}
}

func admin(id uint) *jwt.Payload {
	return &jwt.Payload{UserID: id, Role: model.RoleAdmin}
}

func proposalOf(studentID uint, supervisorID *uint, status model.ProposalStatus) *model.ThesisProposal {
	return &model.ThesisProposal{
		StudentID:    studentID,
		SupervisorID: supervisorID,
		Status:       status,
	}
}

func TestParseKeywords(t *testing.T) {
	keywords, errResp := parseKeywords(`["ai","agriculture"]`)
	require.Nil(t, errResp)
	require.Equal(t, []string{"ai", "agriculture"}, keywords)

	// 顺序保持
	keywords, errResp = parseKeywords(`["z","a","m"]`)
	require.Nil(t, errResp)
	require.Equal(t, []string{"z", "a", "m"}, keywords)

	_, errResp = parseKeywords(`ai,agriculture`)
	require.NotNil(t, errResp)
	require.Equal(t, response.ErrInvalidRequest.Code, errResp.Code)

	_, errResp = parseKeywords(`{"a":1}`)
	require.NotNil(t, errResp)
}

func TestValidateSubmission(t *testing.T) {
	longAbstract := "This research investigates machine learning approaches to crop yield prediction in smallholder farms."
	keywords := []string{"ai", "agriculture"}

	require.Nil(t, validateSubmission("Machine Learning for Crop Yield Prediction", longAbstract, keywords))

	errResp := validateSubmission("short", longAbstract, keywords)
	require.NotNil(t, errResp)
	require.Equal(t, response.ErrInvalidRequest.Code, errResp.Code)

	errResp = validateSubmission("Machine Learning for Crop Yield Prediction", "too short abstract", keywords)
	require.NotNil(t, errResp)

	errResp = validateSubmission("Machine Learning for Crop Yield Prediction", longAbstract, nil)
	require.NotNil(t, errResp)
}

func TestCanViewStudentProposals(t *testing.T) {
	// 学生不能查看其他学生的列表
	errResp := canViewStudentProposals(student(1), 2)
	require.NotNil(t, errResp)
	require.Equal(t, response.ErrForbidden.Code, errResp.Code)

	require.Nil(t, canViewStudentProposals(student(1), 1))
	require.Nil(t, canViewStudentProposals(supervisor(3), 1))
	require.Nil(t, canViewStudentProposals(admin(4), 1))
}

func TestCanViewProposal(t *testing.T) {
	p := proposalOf(1, nil, model.StatusPendingReview)

	require.Nil(t, canViewProposal(student(1), p))
	require.Nil(t, canViewProposal(supervisor(3), p))
	require.Nil(t, canViewProposal(admin(4), p))

	errResp := canViewProposal(student(2), p)
	require.NotNil(t, errResp)
	require.Equal(t, response.ErrForbidden.Code, errResp.Code)
}

func TestCanSetStatus(t *testing.T) {
	supID := uint(3)

	// 指派的导师可以修改
	require.Nil(t, canSetStatus(supervisor(3), proposalOf(1, &supID, model.StatusPendingReview)))
	// 管理员始终可以
	require.Nil(t, canSetStatus(admin(4), proposalOf(1, &supID, model.StatusPendingReview)))
	require.Nil(t, canSetStatus(admin(4), proposalOf(1, nil, model.StatusPendingReview)))

	// 未指派给该导师或未指派任何导师时拒绝
	errResp := canSetStatus(supervisor(5), proposalOf(1, &supID, model.StatusPendingReview))
	require.NotNil(t, errResp)
	require.Equal(t, response.ErrForbidden.Code, errResp.Code)

	errResp = canSetStatus(supervisor(3), proposalOf(1, nil, model.StatusPendingReview))
	require.NotNil(t, errResp)
}

func TestCanDeleteProposal(t *testing.T) {
	// 管理员任何状态下都可删除
	require.Nil(t, canDeleteProposal(admin(4), proposalOf(1, nil, model.StatusPendingReview)))
	require.Nil(t, canDeleteProposal(admin(4), proposalOf(1, nil, model.StatusApproved)))
	require.Nil(t, canDeleteProposal(admin(4), proposalOf(1, nil, model.StatusCompleted)))

	// 学生只能在待评审状态下删除自己的提案
	require.Nil(t, canDeleteProposal(student(1), proposalOf(1, nil, model.StatusPendingReview)))

	errResp := canDeleteProposal(student(2), proposalOf(1, nil, model.StatusPendingReview))
	require.NotNil(t, errResp)
	require.Equal(t, response.ErrForbidden.Code, errResp.Code)

	for _, status := range []model.ProposalStatus{
		model.StatusApproved,
		model.StatusRejected,
		model.StatusInProgress,
		model.StatusCompleted,
	} {
		errResp := canDeleteProposal(student(1), proposalOf(1, nil, status))
		require.NotNil(t, errResp, "status %s", status)
		require.Equal(t, response.ErrForbidden.Code, errResp.Code)
	}
}
