package thesis

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"thesis-proposal-system/internal/global/database"
	"thesis-proposal-system/internal/global/response"
	"thesis-proposal-system/internal/model"
	"thesis-proposal-system/tools"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// proposalExportRow 导出表格的一行，列顺序与字段顺序一致
type proposalExportRow struct {
	ID             uint   `excel:"ID"`
	Title          string `excel:"标题"`
	Student        string `excel:"学生"`
	StudentEmail   string `excel:"学生邮箱"`
	Supervisor     string `excel:"导师"`
	Status         string `excel:"状态"`
	Keywords       string `excel:"关键词"`
	SubmissionDate string `excel:"提交时间"`
}

// ExportProposals 管理员导出全部提案为 Excel 文件
func ExportProposals(c *gin.Context) {
	var proposals []model.ThesisProposal
	err := database.DB.
		Preload("Student").
		Preload("Supervisor").
		Order("submission_date DESC").
		Find(&proposals).Error
	if err != nil {
		log.Error("导出提案时查询失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	rows := make([]proposalExportRow, 0, len(proposals))
	for i := range proposals {
		p := &proposals[i]
		row := proposalExportRow{
			ID:             p.ID,
			Title:          p.Title,
			Status:         string(p.Status),
			Keywords:       strings.Join(p.Keywords, ", "),
			SubmissionDate: p.SubmissionDate.Format("2006-01-02 15:04:05"),
		}
		if p.Student != nil {
			row.Student = p.Student.Username
			row.StudentEmail = p.Student.Email
		}
		if p.Supervisor != nil {
			row.Supervisor = p.Supervisor.Username
		}
		rows = append(rows, row)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := tools.ExportToExcel(f, "Sheet1", rows); err != nil {
		log.Error("生成导出文件失败", "error", err)
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		log.Error("写出导出文件失败", "error", err)
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}

	filename := fmt.Sprintf("proposals-%s.xlsx", time.Now().Format("20060102-150405"))
	escaped := url.QueryEscape(filename)
	c.Header(
		"Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, escaped, escaped),
	)
	c.Data(http.StatusOK, tools.ExcelContentType, buf.Bytes())

	log.Info("提案导出完成", "count", len(rows))
}
