package services

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"
)

// BuildCSV 渲染CSV导出：一行固定表头 + 每条报名一行，
// 含逗号/引号/换行的字段按RFC4180规则加引号转义。
func (s *ExportService) BuildCSV() ([]byte, error) {
	rows, err := s.Registrations.ListForExport()
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if err := w.Write(csvColumns); err != nil {
		return nil, err
	}

	for i := range rows {
		r := &rows[i]
		record := rowValues(r, strconv.Itoa(r.TeamSize), r.CreatedAt.Format(time.RFC3339))
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
