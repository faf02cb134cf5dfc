package services

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
	"time"
)

// docxColWidths 表格各列宽度（单位twip），与表头一一对应
var docxColWidths = []int{
	1400, 2000, 2200, 800,
	2000, 1600, 2400, 1400,
	2000, 1600, 2400, 1400,
	2000, 1600, 2400, 1400,
	2000, 1600, 2400, 1400,
	2200, 1800,
}

// BuildDOCX 渲染DOCX导出：横向页面上带标题、统计行和一张
// 表头深色、数据行交替底纹、餐食偏好着色的明细表。
// 文档包为手工组装的最小WordprocessingML容器，
// 只包含渲染所需的三个部件。
func (s *ExportService) BuildDOCX() ([]byte, error) {
	rows, err := s.Registrations.ListForExport()
	if err != nil {
		return nil, err
	}
	stats, err := s.Registrations.StatsPerTeam()
	if err != nil {
		return nil, err
	}

	var body strings.Builder

	// 标题
	body.WriteString(`<w:p><w:pPr><w:jc w:val="center"/><w:spacing w:before="0" w:after="200"/></w:pPr>`)
	body.WriteString(docxRun("⚡ Tech Blaze 3.0", 40, exportPurple, true))
	body.WriteString(docxRun("  —  Participant Registrations", 36, "333333", true))
	body.WriteString(`</w:p>`)

	// 统计行
	statsLine := fmt.Sprintf(
		"Teams: %d   |   Participants: %d   |   Vegetarian: %d   |   Non-Vegetarian: %d   |   Exported: %s",
		stats.TotalTeams, stats.TotalMembers, stats.Veg, stats.Nonveg, formatExportTime(time.Now()),
	)
	body.WriteString(`<w:p><w:pPr><w:jc w:val="center"/><w:spacing w:before="0" w:after="300"/></w:pPr>`)
	body.WriteString(docxRun(statsLine, 20, "555555", false))
	body.WriteString(`</w:p>`)

	// 明细表
	totalWidth := 0
	for _, w := range docxColWidths {
		totalWidth += w
	}
	body.WriteString(`<w:tbl><w:tblPr>`)
	body.WriteString(fmt.Sprintf(`<w:tblW w:w="%d" w:type="dxa"/>`, totalWidth))
	body.WriteString(`<w:tblCellMar><w:top w:w="60" w:type="dxa"/><w:bottom w:w="60" w:type="dxa"/><w:left w:w="80" w:type="dxa"/><w:right w:w="80" w:type="dxa"/></w:tblCellMar>`)
	body.WriteString(`</w:tblPr><w:tblGrid>`)
	for _, w := range docxColWidths {
		body.WriteString(fmt.Sprintf(`<w:gridCol w:w="%d"/>`, w))
	}
	body.WriteString(`</w:tblGrid>`)

	// 表头行
	body.WriteString(`<w:tr><w:trPr><w:trHeight w:val="500" w:hRule="atLeast"/><w:tblHeader/></w:trPr>`)
	for i, label := range sheetColumns {
		body.WriteString(docxCell(label, docxColWidths[i], exportHeaderBg, "FFFFFF", 16, true, true, true))
	}
	body.WriteString(`</w:tr>`)

	// 数据行
	for idx := range rows {
		r := &rows[idx]
		fill := "FFFFFF"
		if idx%2 == 1 {
			fill = exportAltRow
		}
		values := rowValues(r, fmt.Sprintf("%d", r.TeamSize), formatExportTime(r.CreatedAt))

		body.WriteString(`<w:tr><w:trPr><w:trHeight w:val="400" w:hRule="atLeast"/></w:trPr>`)
		for i, v := range values {
			color, bold := "222222", false
			if i == 0 {
				color, bold = exportPurple, true
			}
			if foodColumns[i+1] {
				switch strings.ToLower(v) {
				case "vegetarian":
					color = exportGreen
				case "non-vegetarian":
					color = exportOrange
				}
			}
			if v == "" {
				v = "—"
			}
			body.WriteString(docxCell(v, docxColWidths[i], fill, color, 17, bold, false, false))
		}
		body.WriteString(`</w:tr>`)
	}
	body.WriteString(`</w:tbl>`)

	// 页脚段落
	body.WriteString(`<w:p><w:pPr><w:jc w:val="center"/><w:spacing w:before="400" w:after="0"/></w:pPr>`)
	body.WriteString(docxRun("Department of Computer Engineering  •  Tech Blaze 3.0  •  Confidential", 16, "999999", false))
	body.WriteString(`</w:p>`)

	// 横向页面，窄边距
	body.WriteString(`<w:sectPr><w:pgSz w:w="24480" w:h="15840" w:orient="landscape"/>` +
		`<w:pgMar w:top="720" w:right="720" w:bottom="720" w:left="720" w:header="720" w:footer="720" w:gutter="0"/></w:sectPr>`)

	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` + body.String() + `</w:body></w:document>`

	return packDOCX(document)
}

// docxRun 单个文本run，size单位为半磅
func docxRun(text string, size int, color string, bold bool) string {
	var props strings.Builder
	props.WriteString(`<w:rFonts w:ascii="Arial" w:hAnsi="Arial" w:cs="Arial"/>`)
	if bold {
		props.WriteString(`<w:b/>`)
	}
	props.WriteString(fmt.Sprintf(`<w:color w:val="%s"/>`, color))
	props.WriteString(fmt.Sprintf(`<w:sz w:val="%d"/><w:szCs w:val="%d"/>`, size, size))
	return fmt.Sprintf(`<w:r><w:rPr>%s</w:rPr><w:t xml:space="preserve">%s</w:t></w:r>`,
		props.String(), xmlEscape(text))
}

// docxCell 单个表格单元格，带底纹、边框和垂直居中
func docxCell(text string, width int, fill, color string, size int, bold, center, header bool) string {
	borderColor, borderSize := "CCCCCC", 1
	topBottomColor, topBottomSize := borderColor, borderSize
	if header {
		topBottomColor, topBottomSize = exportPurple, 2
	}

	var cell strings.Builder
	cell.WriteString(`<w:tc><w:tcPr>`)
	cell.WriteString(fmt.Sprintf(`<w:tcW w:w="%d" w:type="dxa"/>`, width))
	cell.WriteString(`<w:tcBorders>`)
	cell.WriteString(fmt.Sprintf(`<w:top w:val="single" w:sz="%d" w:color="%s"/>`, topBottomSize, topBottomColor))
	cell.WriteString(fmt.Sprintf(`<w:bottom w:val="single" w:sz="%d" w:color="%s"/>`, topBottomSize, topBottomColor))
	cell.WriteString(fmt.Sprintf(`<w:left w:val="single" w:sz="%d" w:color="%s"/>`, borderSize, borderColor))
	cell.WriteString(fmt.Sprintf(`<w:right w:val="single" w:sz="%d" w:color="%s"/>`, borderSize, borderColor))
	cell.WriteString(`</w:tcBorders>`)
	cell.WriteString(fmt.Sprintf(`<w:shd w:val="clear" w:color="auto" w:fill="%s"/>`, fill))
	cell.WriteString(`<w:vAlign w:val="center"/></w:tcPr>`)

	align := "left"
	if center {
		align = "center"
	}
	cell.WriteString(fmt.Sprintf(`<w:p><w:pPr><w:jc w:val="%s"/></w:pPr>`, align))
	cell.WriteString(docxRun(text, size, color, bold))
	cell.WriteString(`</w:p></w:tc>`)
	return cell.String()
}

// packDOCX 将document.xml打包为最小可用的docx容器
func packDOCX(document string) ([]byte, error) {
	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)

	parts := []struct {
		name    string
		content string
	}{
		{
			"[Content_Types].xml",
			`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
				`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
				`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
				`<Default Extension="xml" ContentType="application/xml"/>` +
				`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
				`</Types>`,
		},
		{
			"_rels/.rels",
			`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
				`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
				`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
				`</Relationships>`,
		},
		{"word/document.xml", document},
	}

	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write([]byte(part.content)); err != nil {
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func xmlEscape(s string) string {
	return xmlEscaper.Replace(s)
}
