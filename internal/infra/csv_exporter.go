package infra

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nrad-K/go-jobfeed/internal/domain/model"
)

// FileExporter は、集約済みの求人レコードをファイルに書き出すインターフェースです。
type FileExporter interface {
	Write(job model.Job) error
	Close() error
}

type CSVExporter struct {
	file   *os.File
	writer *csv.Writer
}

// NewCSVExporter は、出力先ファイルを作成しヘッダー行を書き込んだ
// CSVExporterを生成します。
func NewCSVExporter(filePath string, headers []string) (*CSVExporter, error) {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("出力ディレクトリの作成に失敗しました: %w", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("CSVファイルの作成に失敗しました: %w", err)
	}

	writer := csv.NewWriter(file)

	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("CSVヘッダーの書き込みに失敗しました: %w", err)
	}

	return &CSVExporter{
		file:   file,
		writer: writer,
	}, nil
}

func (c *CSVExporter) Write(job model.Job) error {
	row := []string{
		job.Company,
		job.CompanyDomain,
		job.ID,
		job.Title,
		job.Location,
		job.TotalBonus,
		job.MonthlySalary,
		job.Salary,
		strings.Join(job.Features, ","),
		job.Badges,
		strconv.Itoa(job.Order),
		job.PublishStartDate,
		job.PublishEndDate,
		job.JobDescription,
		job.Requirements,
		job.Benefits,
		job.WorkingHours,
		job.Holidays,
		job.EmploymentType,
		job.Skills,
		job.JobType,
	}

	return c.writer.Write(row)
}

func (c *CSVExporter) Close() error {
	c.writer.Flush()
	return c.file.Close()
}
