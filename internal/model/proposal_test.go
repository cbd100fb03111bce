package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProposalStatusValid(t *testing.T) {
	for _, s := range []ProposalStatus{
		StatusPendingReview,
		StatusApproved,
		StatusRejected,
		StatusInProgress,
		StatusCompleted,
	} {
		require.True(t, s.Valid(), "status %s", s)
	}

	require.False(t, ProposalStatus("archived").Valid())
	require.False(t, ProposalStatus("").Valid())
	require.False(t, ProposalStatus("PENDING_REVIEW").Valid())
}

func TestRoleValid(t *testing.T) {
	require.True(t, RoleStudent.Valid())
	require.True(t, RoleSupervisor.Valid())
	require.True(t, RoleAdmin.Valid())
	require.False(t, Role("teacher").Valid())
	require.False(t, Role("").Valid())
}

func TestUserSummary(t *testing.T) {
	u := &User{
		Model:    Model{ID: 5},
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hash",
	}
	s := u.Summary()
	require.Equal(t, uint(5), s.ID)
	require.Equal(t, "alice", s.Username)
	require.Equal(t, "alice@example.com", s.Email)

	var nilUser *User
	require.Nil(t, nilUser.Summary())
	require.Nil(t, (&User{}).Summary())
}
