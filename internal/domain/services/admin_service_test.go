package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techblaze-registration-service/internal/domain/models"
)

func TestEnsureDefaultAdmin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db, newTestConfig())

	require.NoError(t, svc.EnsureDefaultAdmin())

	admin, err := svc.GetAdminByUsername("admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Username)
	assert.NotEqual(t, "password", admin.Password, "密码必须以哈希形式存储")
	assert.True(t, svc.CheckPassword("password", admin.Password))
	assert.False(t, svc.CheckPassword("wrong", admin.Password))

	// 幂等：再次调用不会重复创建
	require.NoError(t, svc.EnsureDefaultAdmin())
	var count int64
	require.NoError(t, db.Model(&models.Admin{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestGetAdminByUsernameMissing(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db, newTestConfig())

	_, err := svc.GetAdminByUsername("ghost")
	assert.Error(t, err)
}
