package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// xlsxColWidths 各列宽度，与表头一一对应
var xlsxColWidths = []float64{
	12, 18, 22, 6,
	18, 14, 26, 14,
	18, 14, 26, 14,
	18, 14, 26, 14,
	18, 14, 26, 14,
	28, 20,
}

// BuildXLSX 渲染XLSX导出：
// "Registrations" 明细表带合并的标题/副标题横幅、样式化表头、
// 斑马纹数据行和餐食偏好着色；"Summary" 汇总表带统计数据。
func (s *ExportService) BuildXLSX() ([]byte, error) {
	rows, err := s.Registrations.ListForExport()
	if err != nil {
		return nil, err
	}
	stats, err := s.Registrations.StatsPerTeam()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Registrations"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	lastCol, err := excelize.ColumnNumberToName(len(sheetColumns))
	if err != nil {
		return nil, err
	}

	// 标题横幅
	if err := f.MergeCell(sheet, "A1", lastCol+"1"); err != nil {
		return nil, err
	}
	f.SetCellValue(sheet, "A1", exportTitle)
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: "Arial", Size: 16, Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{exportPurple}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}
	f.SetCellStyle(sheet, "A1", lastCol+"1", titleStyle)
	f.SetRowHeight(sheet, 1, 36)

	// 副标题：导出时间和统计摘要
	if err := f.MergeCell(sheet, "A2", lastCol+"2"); err != nil {
		return nil, err
	}
	subtitle := fmt.Sprintf(
		"Exported: %s   |   Total Teams: %d   |   Total Participants: %d   |   Veg: %d   |   Non-Veg: %d",
		formatExportTime(time.Now()), stats.TotalTeams, stats.TotalMembers, stats.Veg, stats.Nonveg,
	)
	f.SetCellValue(sheet, "A2", subtitle)
	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: "Arial", Size: 10, Color: "666666"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{exportPurpleLight}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}
	f.SetCellStyle(sheet, "A2", lastCol+"2", subtitleStyle)
	f.SetRowHeight(sheet, 2, 22)
	f.SetRowHeight(sheet, 3, 8)

	// 表头
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: "Arial", Size: 10, Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{exportHeaderBg}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    thinBorder("444466"),
	})
	if err != nil {
		return nil, err
	}
	for i, label := range sheetColumns {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheet, col+"4", label)
		f.SetColWidth(sheet, col, col, xlsxColWidths[i])
	}
	f.SetCellStyle(sheet, "A4", lastCol+"4", headerStyle)
	f.SetRowHeight(sheet, 4, 28)

	// 数据行样式：白/浅紫斑马纹 × {普通, 编号, 素食, 非素食}
	styles, err := newXLSXRowStyles(f)
	if err != nil {
		return nil, err
	}

	for idx := range rows {
		r := &rows[idx]
		rowNum := 5 + idx
		alt := idx%2 == 1
		values := rowValues(r, fmt.Sprintf("%d", r.TeamSize), formatExportTime(r.CreatedAt))

		for i, v := range values {
			col, err := excelize.ColumnNumberToName(i + 1)
			if err != nil {
				return nil, err
			}
			cell := fmt.Sprintf("%s%d", col, rowNum)
			f.SetCellValue(sheet, cell, v)
			f.SetCellStyle(sheet, cell, cell, styles.pick(i+1, v, alt))
		}
		f.SetRowHeight(sheet, rowNum, 20)
	}

	if err := s.addSummarySheet(f, stats); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// addSummarySheet 追加汇总表
func (s *ExportService) addSummarySheet(f *excelize.File, stats *RegistrationStats) error {
	const sheet = "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	f.SetColWidth(sheet, "A", "A", 30)
	f.SetColWidth(sheet, "B", "B", 20)

	if err := f.MergeCell(sheet, "A1", "B1"); err != nil {
		return err
	}
	f.SetCellValue(sheet, "A1", "Tech Blaze 3.0 — Summary")
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: "Arial", Size: 14, Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{exportPurple}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	f.SetCellStyle(sheet, "A1", "B1", titleStyle)
	f.SetRowHeight(sheet, 1, 32)

	entries := []struct {
		label string
		value interface{}
	}{
		{"Total Teams Registered", stats.TotalTeams},
		{"Total Participants", stats.TotalMembers},
		{"Vegetarian", stats.Veg},
		{"Non-Vegetarian", stats.Nonveg},
		{"Exported At", formatExportTime(time.Now())},
	}

	for i, entry := range entries {
		rowNum := i + 2
		fill := exportPurpleLight
		if i%2 == 1 {
			fill = "FFFFFF"
		}

		labelStyle, err := f.NewStyle(&excelize.Style{
			Font:      &excelize.Font{Family: "Arial", Size: 11, Bold: true},
			Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{fill}},
			Alignment: &excelize.Alignment{Vertical: "center"},
			Border:    thinBorder("CCCCCC"),
		})
		if err != nil {
			return err
		}
		valueStyle, err := f.NewStyle(&excelize.Style{
			Font:      &excelize.Font{Family: "Arial", Size: 11},
			Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{fill}},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
			Border:    thinBorder("CCCCCC"),
		})
		if err != nil {
			return err
		}

		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), entry.label)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), entry.value)
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("A%d", rowNum), labelStyle)
		f.SetCellStyle(sheet, fmt.Sprintf("B%d", rowNum), fmt.Sprintf("B%d", rowNum), valueStyle)
		f.SetRowHeight(sheet, rowNum, 22)
	}

	return nil
}

// xlsxRowStyles 预先构建的数据行样式ID集合
type xlsxRowStyles struct {
	data   [2]int
	ref    [2]int
	veg    [2]int
	nonveg [2]int
}

// pick 根据列号和单元格内容选择样式
func (st *xlsxRowStyles) pick(col int, value string, alt bool) int {
	bg := 0
	if alt {
		bg = 1
	}
	if col == 1 {
		return st.ref[bg]
	}
	if foodColumns[col] {
		switch strings.ToLower(value) {
		case "vegetarian":
			return st.veg[bg]
		case "non-vegetarian":
			return st.nonveg[bg]
		}
	}
	return st.data[bg]
}

func newXLSXRowStyles(f *excelize.File) (*xlsxRowStyles, error) {
	var styles xlsxRowStyles
	fills := [2]string{"FFFFFF", exportAltRow}

	build := func(fontColor string, bold bool) ([2]int, error) {
		var ids [2]int
		for i, fill := range fills {
			id, err := f.NewStyle(&excelize.Style{
				Font:      &excelize.Font{Family: "Arial", Size: 10, Bold: bold, Color: fontColor},
				Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{fill}},
				Alignment: &excelize.Alignment{Vertical: "center"},
				Border:    thinBorder("DDDDDD"),
			})
			if err != nil {
				return ids, err
			}
			ids[i] = id
		}
		return ids, nil
	}

	var err error
	if styles.data, err = build("000000", false); err != nil {
		return nil, err
	}
	if styles.ref, err = build(exportPurple, true); err != nil {
		return nil, err
	}
	if styles.veg, err = build(exportGreen, false); err != nil {
		return nil, err
	}
	if styles.nonveg, err = build(exportOrange, false); err != nil {
		return nil, err
	}
	return &styles, nil
}

// thinBorder 四边细边框
func thinBorder(color string) []excelize.Border {
	return []excelize.Border{
		{Type: "top", Color: color, Style: 1},
		{Type: "bottom", Color: color, Style: 1},
		{Type: "left", Color: color, Style: 1},
		{Type: "right", Color: color, Style: 1},
	}
}
