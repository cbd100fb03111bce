package docstore

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"thesis-proposal-system/internal/global/response"
	"time"
)

// MaxDocumentSize 单个提案文档的大小上限（10MiB）
const MaxDocumentSize = 10 << 20

// allowedMimeTypes 允许上传的文档类型：PDF、DOCX、DOC
var allowedMimeTypes = map[string]struct{}{
	"application/pdf": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	"application/msword": {},
}

// AllowedType 判断文档 MIME 类型是否允许上传
func AllowedType(mimeType string) bool {
	_, ok := allowedMimeTypes[mimeType]
	return ok
}

// DocStore 提案文档存储
// 将上传的文档落盘到指定目录，并负责删除时的清理
type DocStore struct {
	SaveDir string // 文档保存目录
	BaseURL string // 文档对外访问前缀
}

func New(saveDir, baseURL string) *DocStore {
	return &DocStore{
		SaveDir: saveDir,
		BaseURL: baseURL,
	}
}

// Save 校验并保存上传的文档，返回落盘路径
// 类型、大小不合法时不产生任何文件写入；拷贝中途失败（含客户端断开）时清理残留文件
func (ds *DocStore) Save(fileHeader *multipart.FileHeader) (string, error) {
	if !AllowedType(fileHeader.Header.Get("Content-Type")) {
		return "", response.ErrUnsupportedFileType
	}
	if fileHeader.Size > MaxDocumentSize {
		return "", response.ErrFileTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", response.ErrFileSystem.WithOrigin(err)
	}
	defer file.Close()

	if err := os.MkdirAll(ds.SaveDir, os.ModePerm); err != nil {
		return "", response.ErrFileSystem.WithOrigin(err)
	}

	// 时间戳前缀 + 原始文件名，避免同名覆盖
	filename := fmt.Sprintf("%d-%s", time.Now().UnixNano(), filepath.Base(fileHeader.Filename))
	storedPath := filepath.Join(ds.SaveDir, filename)

	dst, err := os.Create(storedPath)
	if err != nil {
		return "", response.ErrFileSystem.WithOrigin(err)
	}

	// 拷贝时再次限制大小，Size 字段不可信
	written, err := io.Copy(dst, io.LimitReader(file, MaxDocumentSize+1))
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(storedPath)
		return "", response.ErrFileSystem.WithOrigin(err)
	}
	if written > MaxDocumentSize {
		_ = os.Remove(storedPath)
		return "", response.ErrFileTooLarge
	}

	return storedPath, nil
}

// Remove 删除已存储的文档，文件不存在视为删除成功
func (ds *DocStore) Remove(storedPath string) error {
	if storedPath == "" {
		return nil
	}
	if err := os.Remove(storedPath); err != nil && !os.IsNotExist(err) {
		return response.ErrFileSystem.WithOrigin(err)
	}
	return nil
}

// PublicPath 返回文档的对外访问路径
func (ds *DocStore) PublicPath(storedPath string) string {
	return ds.BaseURL + "/" + filepath.Base(storedPath)
}
