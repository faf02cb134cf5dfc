package services

import (
	"archive/zip"
	"bytes"
	"io"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// newExportFixture 准备两条报名记录并返回导出服务
func newExportFixture(t *testing.T) InterfaceExportService {
	t.Helper()

	db := newTestDB(t)
	regs := NewRegistrationService(db, newTestConfig())

	first := validInput(1)
	first.College = "College, Inc."
	first.P1Food = "Vegetarian"
	_, err := regs.Register(first)
	require.NoError(t, err)

	second := validInput(2)
	second.Team = "R&D Crew"
	second.P1Food = "Non-Vegetarian"
	_, err = regs.Register(second)
	require.NoError(t, err)

	return NewExportService(regs)
}

func TestFilename(t *testing.T) {
	svc := NewExportService(nil)

	pattern := regexp.MustCompile(`^techblaze3_\d{4}-\d{2}-\d{2}T\d{2}-\d{2}-\d{2}\.(csv|xlsx|docx)$`)
	for _, ext := range []string{"csv", "xlsx", "docx"} {
		name := svc.Filename(ext)
		assert.Regexp(t, pattern, name)
		assert.True(t, strings.HasSuffix(name, "."+ext))
	}
}

func TestBuildCSV(t *testing.T) {
	svc := newExportFixture(t)

	data, err := svc.BuildCSV()
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 3, "表头 + 两条数据")

	assert.Equal(t, strings.Join(csvColumns, ","), lines[0])

	// 含逗号的字段必须加引号
	assert.Contains(t, lines[1], `"College, Inc."`)
	assert.Contains(t, lines[1], "TB3-0001")

	// 数据行按提交顺序
	assert.Contains(t, lines[2], "TB3-0002")
	assert.Contains(t, lines[2], "R&D Crew")
}

func TestBuildXLSX(t *testing.T) {
	svc := newExportFixture(t)

	data, err := svc.BuildXLSX()
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Registrations", "Summary"}, f.GetSheetList())

	title, err := f.GetCellValue("Registrations", "A1")
	require.NoError(t, err)
	assert.Equal(t, exportTitle, title)

	subtitle, err := f.GetCellValue("Registrations", "A2")
	require.NoError(t, err)
	assert.Contains(t, subtitle, "Total Teams: 2")
	assert.Contains(t, subtitle, "Veg: 1")
	assert.Contains(t, subtitle, "Non-Veg: 1")

	// 表头在第4行
	header, err := f.GetCellValue("Registrations", "A4")
	require.NoError(t, err)
	assert.Equal(t, "Ref ID", header)

	teamHeader, err := f.GetCellValue("Registrations", "B4")
	require.NoError(t, err)
	assert.Equal(t, "Team Name", teamHeader)

	// 数据从第5行开始，按提交顺序
	ref, err := f.GetCellValue("Registrations", "A5")
	require.NoError(t, err)
	assert.Equal(t, "TB3-0001", ref)

	team, err := f.GetCellValue("Registrations", "B6")
	require.NoError(t, err)
	assert.Equal(t, "R&D Crew", team)

	// 汇总表
	summaryTitle, err := f.GetCellValue("Summary", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Tech Blaze 3.0 — Summary", summaryTitle)

	totalTeams, err := f.GetCellValue("Summary", "B2")
	require.NoError(t, err)
	assert.Equal(t, "2", totalTeams)
}

func TestBuildDOCX(t *testing.T) {
	svc := newExportFixture(t)

	data, err := svc.BuildDOCX()
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	var names []string
	for _, zf := range zr.File {
		names = append(names, zf.Name)
	}
	assert.Contains(t, names, "[Content_Types].xml")
	assert.Contains(t, names, "_rels/.rels")
	assert.Contains(t, names, "word/document.xml")

	doc := readZipEntry(t, zr, "word/document.xml")

	assert.Contains(t, doc, "Tech Blaze 3.0")
	assert.Contains(t, doc, "TB3-0001")
	assert.Contains(t, doc, "TB3-0002")

	// 表头底色和XML转义
	assert.Contains(t, doc, "2C2A4A")
	assert.Contains(t, doc, "R&amp;D Crew")
	assert.NotContains(t, doc, "R&D Crew")
}

func readZipEntry(t *testing.T, zr *zip.Reader, name string) string {
	t.Helper()
	for _, zf := range zr.File {
		if zf.Name != name {
			continue
		}
		rc, err := zf.Open()
		require.NoError(t, err)
		defer rc.Close()
		raw, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(raw)
	}
	t.Fatalf("zip entry %s not found", name)
	return ""
}
