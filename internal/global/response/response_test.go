package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func doFail(t *testing.T, err error) (int, ResponseBody) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Fail(c, err)

	var body ResponseBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return w.Code, body
}

func TestFailDerivesHTTPStatus(t *testing.T) {
	status, body := doFail(t, ErrNotFound)
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, ErrNotFound.Code, body.Code)

	status, body = doFail(t, ErrForbidden)
	require.Equal(t, http.StatusForbidden, status)
	require.Equal(t, ErrForbidden.Code, body.Code)

	status, body = doFail(t, ErrDatabase)
	require.Equal(t, http.StatusInternalServerError, status)
	require.Equal(t, ErrDatabase.Code, body.Code)
}

func TestFailMapsUnknownError(t *testing.T) {
	status, body := doFail(t, errors.New("boom"))
	require.Equal(t, http.StatusInternalServerError, status)
	require.Equal(t, ErrServerInternal.Code, body.Code)
}

func TestErrorIs(t *testing.T) {
	require.ErrorIs(t, ErrNotFound.WithTips("提案不存在"), ErrNotFound)
	require.ErrorIs(t, ErrDatabase.WithOrigin(errors.New("bad conn")), ErrDatabase)
	require.NotErrorIs(t, ErrNotFound, ErrForbidden)
}

func TestWithOriginKeepsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := ErrFileSystem.WithOrigin(cause)
	require.Equal(t, ErrFileSystem.Code, err.Code)
	require.ErrorIs(t, err, cause)
	require.NotEmpty(t, err.Origin)
}

func TestWithTipsAppendsMessage(t *testing.T) {
	err := ErrInvalidRequest.WithTips("标题长度不能少于10个字符")
	require.Equal(t, ErrInvalidRequest.Code, err.Code)
	require.Contains(t, err.Message, "标题长度不能少于10个字符")
	// 原错误不被修改
	require.Equal(t, "请求参数错误", ErrInvalidRequest.Message)
}

func TestSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Success(c, gin.H{"hello": "world"})

	require.Equal(t, http.StatusOK, w.Code)
	var body ResponseBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	require.Equal(t, int32(200), body.Code)
}
