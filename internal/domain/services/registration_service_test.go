package services

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"techblaze-registration-service/internal/domain/models"
	"techblaze-registration-service/internal/infrastructure/config"
)

// newTestDB 创建一个独立的临时数据库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Registration{}, &models.Admin{}))
	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		AdminUsername: "admin",
		AdminPassword: "password",
		TokenSecret:   "test-secret",
		TokenTTL:      8 * time.Hour,
	}
}

// validInput 返回一份合法的最小报名提交，序号用于避免重复
func validInput(n int) *RegistrationInput {
	return &RegistrationInput{
		Team:     fmt.Sprintf("Team %d", n),
		College:  "Model Engineering College",
		TeamSize: float64(1),
		P1:       fmt.Sprintf("Leader %d", n),
		P1Phone:  fmt.Sprintf("98765432%02d", n),
		P1Email:  fmt.Sprintf("leader%d@example.com", n),
		P1Food:   "Vegetarian",
	}
}

func TestRegisterHappyPath(t *testing.T) {
	db := newTestDB(t)
	svc := NewRegistrationService(db, newTestConfig())

	conf, err := svc.Register(validInput(1))
	require.NoError(t, err)

	assert.Equal(t, "TB3-0001", conf.RefID)
	assert.Equal(t, "Team 1", conf.Team)
	assert.Equal(t, "Leader 1", conf.Leader)
	assert.Equal(t, "leader1@example.com", conf.Email)
	assert.Equal(t, 1, conf.TeamSize)

	var reg models.Registration
	require.NoError(t, db.First(&reg).Error)
	require.NotNil(t, reg.RefID)
	assert.Equal(t, "TB3-0001", *reg.RefID)
	assert.Nil(t, reg.P2)
	assert.Nil(t, reg.P2Phone)
	assert.Nil(t, reg.Medical)
	assert.False(t, reg.CreatedAt.IsZero())
}

func TestRegisterSanitizesAndNormalizes(t *testing.T) {
	db := newTestDB(t)
	svc := NewRegistrationService(db, newTestConfig())

	input := validInput(1)
	input.Team = "  <b>Blaze</b>  "
	input.P1Email = "  LEADER1@Example.COM "
	input.TeamSize = "3"

	conf, err := svc.Register(input)
	require.NoError(t, err)

	assert.Equal(t, "bBlaze/b", conf.Team)
	assert.Equal(t, "leader1@example.com", conf.Email)
	assert.Equal(t, 3, conf.TeamSize)
}

func TestRegisterTeamSizeFallback(t *testing.T) {
	db := newTestDB(t)
	svc := NewRegistrationService(db, newTestConfig())

	input := validInput(1)
	input.TeamSize = "not a number"

	conf, err := svc.Register(input)
	require.NoError(t, err)
	assert.Equal(t, 1, conf.TeamSize)
}

func TestRegisterMissingFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewRegistrationService(db, newTestConfig())

	input := validInput(1)
	input.College = "   " // 仅空白，清洗后为空

	_, err := svc.Register(input)
	assert.ErrorIs(t, err, ErrMissingFields)

	var count int64
	require.NoError(t, db.Model(&models.Registration{}).Count(&count).Error)
	assert.Zero(t, count, "校验失败时不应写库")
}

func TestRegisterInvalidLeaderContact(t *testing.T) {
	db := newTestDB(t)
	svc := NewRegistrationService(db, newTestConfig())

	badPhone := validInput(1)
	badPhone.P1Phone = "12345"
	_, err := svc.Register(badPhone)
	assert.ErrorIs(t, err, ErrInvalidPhone)

	badEmail := validInput(2)
	badEmail.P1Email = "not-an-email"
	_, err = svc.Register(badEmail)
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestRegisterInvalidOptionalMember(t *testing.T) {
	db := newTestDB(t)
	svc := NewRegistrationService(db, newTestConfig())

	input := validInput(1)
	input.P3 = "Member 3"
	input.P3Phone = "0000000000" // 首位非6-9

	_, err := svc.Register(input)
	assert.ErrorIs(t, err, ErrInvalidPhone)

	input2 := validInput(2)
	input2.P2Email = "broken@"
	_, err = svc.Register(input2)
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestRegisterDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := NewRegistrationService(db, newTestConfig())

	_, err := svc.Register(validInput(1))
	require.NoError(t, err)

	// 手机号相同，邮箱不同
	byPhone := validInput(2)
	byPhone.P1Phone = validInput(1).P1Phone
	_, err = svc.Register(byPhone)
	assert.ErrorIs(t, err, ErrDuplicate)

	// 邮箱相同，手机号不同
	byEmail := validInput(3)
	byEmail.P1Email = validInput(1).P1Email
	_, err = svc.Register(byEmail)
	assert.ErrorIs(t, err, ErrDuplicate)

	var count int64
	require.NoError(t, db.Model(&models.Registration{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestListSearchAndOrder(t *testing.T) {
	db := newTestDB(t)
	svc := NewRegistrationService(db, newTestConfig())

	alpha := validInput(1)
	alpha.Team = "Alpha Squad"
	alpha.College = "ACME Institute"
	_, err := svc.Register(alpha)
	require.NoError(t, err)

	beta := validInput(2)
	beta.Team = "Beta Crew"
	beta.P1 = "Priya Nair"
	_, err = svc.Register(beta)
	require.NoError(t, err)

	// 无搜索词：全部返回，ID倒序
	rows, err := svc.List("")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Beta Crew", rows[0].Team)
	assert.Equal(t, "Alpha Squad", rows[1].Team)

	// 大小写不敏感，匹配学校
	rows, err = svc.List("acme")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Alpha Squad", rows[0].Team)

	// 匹配1号位姓名
	rows, err = svc.List("PRIYA")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Beta Crew", rows[0].Team)

	// 匹配报名编号
	rows, err = svc.List("tb3-0002")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Beta Crew", rows[0].Team)

	// 无命中
	rows, err = svc.List("nothing-matches")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestListForExportOrder(t *testing.T) {
	db := newTestDB(t)
	svc := NewRegistrationService(db, newTestConfig())

	for n := 1; n <= 3; n++ {
		_, err := svc.Register(validInput(n))
		require.NoError(t, err)
	}

	rows, err := svc.ListForExport()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Team 1", rows[0].Team)
	assert.Equal(t, "Team 3", rows[2].Team)
}

// 两种统计口径在同一数据集上的差异：
// 第一行 p1/p2 均为素食（按槽位计2，按行计1），第二行 p1 为非素。
func TestStatsFormulasDiverge(t *testing.T) {
	db := newTestDB(t)
	svc := NewRegistrationService(db, newTestConfig())

	double := validInput(1)
	double.TeamSize = float64(2)
	double.P1Food = "Vegetarian"
	double.P2 = "Member 2"
	double.P2Phone = "9123456789"
	double.P2Email = "member2@example.com"
	double.P2Food = "Vegetarian"
	_, err := svc.Register(double)
	require.NoError(t, err)

	solo := validInput(2)
	solo.P1Food = "Non-Vegetarian"
	_, err = svc.Register(solo)
	require.NoError(t, err)

	perSlot, err := svc.StatsPerSlot()
	require.NoError(t, err)
	assert.EqualValues(t, 2, perSlot.TotalTeams)
	assert.EqualValues(t, 3, perSlot.TotalMembers)
	assert.EqualValues(t, 2, perSlot.Veg)
	assert.EqualValues(t, 1, perSlot.Nonveg)

	perTeam, err := svc.StatsPerTeam()
	require.NoError(t, err)
	assert.EqualValues(t, 2, perTeam.TotalTeams)
	assert.EqualValues(t, 3, perTeam.TotalMembers)
	assert.EqualValues(t, 1, perTeam.Veg)
	assert.EqualValues(t, 1, perTeam.Nonveg)
}

func TestStatsEmptyTable(t *testing.T) {
	db := newTestDB(t)
	svc := NewRegistrationService(db, newTestConfig())

	stats, err := svc.StatsPerSlot()
	require.NoError(t, err)
	assert.Zero(t, stats.TotalTeams)
	assert.Zero(t, stats.TotalMembers)
	assert.Zero(t, stats.Veg)
	assert.Zero(t, stats.Nonveg)
}
