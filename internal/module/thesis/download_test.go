package thesis

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisplayName(t *testing.T) {
	require.Equal(t, "proposal.pdf", displayName("./uploads/1756400000000000000-proposal.pdf"))
	require.Equal(t, "my-thesis.docx", displayName("uploads/1756400000000000000-my-thesis.docx"))
	// 无时间戳前缀时原样返回
	require.Equal(t, "proposal.pdf", displayName("uploads/proposal.pdf"))
	require.Equal(t, "a-b.pdf", displayName("a-b.pdf"))
}
