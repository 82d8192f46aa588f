// Package dbtest 为单元测试提供已迁移（可选已写入种子数据）的内存 sqlite 数据库
package dbtest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/narasux/chemreact/data"
	"github.com/narasux/chemreact/pkg/infras/database"
	"github.com/narasux/chemreact/pkg/loader"
	// load migration package to register migrations
	_ "github.com/narasux/chemreact/pkg/migration"
	"github.com/narasux/chemreact/pkg/storage"
)

// NewDB 创建内存数据库、执行全部迁移，并设置为全局数据库客户端
func NewDB(t testing.TB) *gorm.DB {
	client, err := database.NewSqliteClient(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(client, ""))

	database.SetClient(client)
	t.Cleanup(func() {
		if sqlDB, err := client.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return client
}

// NewSeededDB 在 NewDB 的基础上写入内置种子数据
func NewSeededDB(t testing.TB) *gorm.DB {
	client := NewDB(t)
	catalog, err := loader.New(data.FS).Exec()
	require.NoError(t, err)
	_, err = storage.SeedCatalog(context.Background(), client, catalog)
	require.NoError(t, err)
	return client
}
