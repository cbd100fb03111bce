package test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"thesis-proposal-system/internal/global/jwt"
	"thesis-proposal-system/internal/global/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func DoRequest(t *testing.T, handlerFunc gin.HandlerFunc, request any) (resp response.ResponseBody) {
	return DoJSONRequest(t, handlerFunc, nil, nil, request)
}

// DoJSONRequest 以 JSON 请求体调用 handler，可选注入认证信息和路径参数
func DoJSONRequest(t *testing.T, handlerFunc gin.HandlerFunc, payload *jwt.Claims, params gin.Params, request any) (resp response.ResponseBody) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	requestBytes, err := json.Marshal(request)
	require.NoError(t, err)
	c.Request = httptest.NewRequest(http.MethodPost, "/test", bytes.NewReader(requestBytes))
	c.Request.Header.Set("Content-Type", "application/json")

	if payload != nil {
		c.Set("payload", payload)
	}
	c.Params = params

	handlerFunc(c)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return
}

// FileField 描述 multipart 请求中的上传文件
type FileField struct {
	FieldName   string
	FileName    string
	ContentType string
	Content     []byte
}

// DoMultipartRequest 以 multipart form-data 调用 handler，file 可为 nil
func DoMultipartRequest(t *testing.T, handlerFunc gin.HandlerFunc, payload *jwt.Claims, fields map[string]string, file *FileField) (resp response.ResponseBody) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if file != nil {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition",
			`form-data; name="`+file.FieldName+`"; filename="`+file.FileName+`"`)
		header.Set("Content-Type", file.ContentType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(file.Content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/test", body)
	c.Request.Header.Set("Content-Type", writer.FormDataContentType())

	if payload != nil {
		c.Set("payload", payload)
	}

	handlerFunc(c)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return
}
