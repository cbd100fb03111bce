package docstore

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"thesis-proposal-system/internal/global/response"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// newFileHeader 通过真实的 multipart 编解码构造 FileHeader
func newFileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="proposalFile"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(body, writer.Boundary())
	form, err := reader.ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["proposalFile"]
	require.Len(t, files, 1)
	return files[0]
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestAllowedType(t *testing.T) {
	require.True(t, AllowedType("application/pdf"))
	require.True(t, AllowedType("application/msword"))
	require.True(t, AllowedType("application/vnd.openxmlformats-officedocument.wordprocessingml.document"))
	require.False(t, AllowedType("image/png"))
	require.False(t, AllowedType("text/plain"))
	require.False(t, AllowedType(""))
}

func TestSaveStoresDocument(t *testing.T) {
	dir := t.TempDir()
	ds := New(dir, "/uploads")

	fh := newFileHeader(t, "proposal.pdf", "application/pdf", []byte("%PDF-1.4 test"))
	storedPath, err := ds.Save(fh)
	require.NoError(t, err)

	require.True(t, strings.HasSuffix(storedPath, "-proposal.pdf"))
	content, err := os.ReadFile(storedPath)
	require.NoError(t, err)
	require.Equal(t, []byte("%PDF-1.4 test"), content)

	require.Equal(t, "/uploads/"+filepath.Base(storedPath), ds.PublicPath(storedPath))
}

func TestSaveRejectsUnsupportedType(t *testing.T) {
	dir := t.TempDir()
	ds := New(dir, "/uploads")

	fh := newFileHeader(t, "proposal.png", "image/png", []byte("png-bytes"))
	_, err := ds.Save(fh)
	require.True(t, errors.Is(err, response.ErrUnsupportedFileType))

	// 校验失败时不能留下任何文件
	require.Empty(t, listDir(t, dir))
}

func TestSaveRejectsOversizedDocument(t *testing.T) {
	dir := t.TempDir()
	ds := New(dir, "/uploads")

	oversized := bytes.Repeat([]byte("a"), MaxDocumentSize+1)
	fh := newFileHeader(t, "big.pdf", "application/pdf", oversized)
	_, err := ds.Save(fh)
	require.True(t, errors.Is(err, response.ErrFileTooLarge))

	require.Empty(t, listDir(t, dir))
}

func TestSaveAcceptsDocumentAtSizeLimit(t *testing.T) {
	dir := t.TempDir()
	ds := New(dir, "/uploads")

	exact := bytes.Repeat([]byte("a"), MaxDocumentSize)
	fh := newFileHeader(t, "exact.pdf", "application/pdf", exact)
	storedPath, err := ds.Save(fh)
	require.NoError(t, err)

	info, err := os.Stat(storedPath)
	require.NoError(t, err)
	require.Equal(t, int64(MaxDocumentSize), info.Size())
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	ds := New(dir, "/uploads")

	fh := newFileHeader(t, "proposal.pdf", "application/pdf", []byte("doc"))
	storedPath, err := ds.Save(fh)
	require.NoError(t, err)

	require.NoError(t, ds.Remove(storedPath))
	require.False(t, fileExists(storedPath))

	// 文件已不存在时删除仍然成功
	require.NoError(t, ds.Remove(storedPath))
	require.NoError(t, ds.Remove(""))
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
