package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/narasux/chemreact/pkg/envs"
	"github.com/narasux/chemreact/pkg/logging"
)

var (
	db         *gorm.DB
	dbInitOnce sync.Once
)

const (
	// string 类型字段的默认长度
	defaultStringSize = 256
	// 默认批量创建数量
	defaultBatchSize = 100
	// 默认最大空闲连接
	defaultMaxIdleConns = 20
	// 默认最大连接数
	defaultMaxOpenConns = 100
)

const (
	TypeMysql  = "mysql"
	TypeSqlite = "sqlite"
)

// Client 获取数据库客户端
func Client(ctx context.Context) *gorm.DB {
	if db == nil {
		log.Fatal("database client not init")
	}
	// 设置上下文目的：让 sql 日志带上 Request ID
	return db.WithContext(ctx)
}

// SetClient 直接设置数据库客户端（单元测试使用）
func SetClient(client *gorm.DB) {
	db = client
}

// InitDBClient 初始化数据库客户端
func InitDBClient(ctx context.Context) {
	if db != nil {
		return
	}
	dbInitOnce.Do(func() {
		var err error
		if db, err = newClient(ctx); err != nil {
			log.Fatalf("failed to connect database %s: %s", dbInfo(), err)
		} else {
			logging.GetSystemLogger().Infof("database: %s connected", dbInfo())
		}
	})
}

func dbInfo() string {
	if envs.DBType == TypeMysql {
		return fmt.Sprintf("mysql %s:%s/%s", envs.MysqlHost, envs.MysqlPort, envs.MysqlDatabase)
	}
	return fmt.Sprintf("sqlite %s", envs.SqlitePath)
}

func newClient(ctx context.Context) (*gorm.DB, error) {
	switch envs.DBType {
	case TypeMysql:
		return newMysqlClient(ctx)
	case TypeSqlite:
		return NewSqliteClient(envs.SqlitePath)
	default:
		return nil, errors.Errorf("unsupported database type: %s", envs.DBType)
	}
}

func newGormConfig() *gorm.Config {
	return &gorm.Config{
		// 禁用默认事务（需要手动管理）
		SkipDefaultTransaction: true,
		// 缓存预编译语句
		PrepareStmt: true,
		// Mysql 本身即不支持嵌套事务
		DisableNestedTransaction: true,
		// 批量操作数量
		CreateBatchSize: defaultBatchSize,
		// 数据库迁移时，忽略外键约束
		DisableForeignKeyConstraintWhenMigrating: true,
		// sql 日志输出到 sql logger
		Logger: newGormLogger(logging.GetSqlLogger()),
	}
}

// 初始化 Mysql Client
func newMysqlClient(ctx context.Context) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=true",
		envs.MysqlUser,
		envs.MysqlPassword,
		envs.MysqlHost,
		envs.MysqlPort,
		envs.MysqlDatabase,
		envs.MysqlCharSet,
	)

	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(defaultMaxIdleConns)
	sqlDB.SetMaxOpenConns(defaultMaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	cCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// 检查 DB 是否可用
	if err = sqlDB.PingContext(cCtx); err != nil {
		return nil, err
	}

	mysqlCfg := mysql.Config{
		Conn:                      sqlDB,
		DefaultStringSize:         defaultStringSize,
		SkipInitializeWithVersion: false,
	}
	return gorm.Open(mysql.New(mysqlCfg), newGormConfig())
}

// NewSqliteClient 初始化 sqlite Client，path 为 ":memory:" 时使用内存数据库
func NewSqliteClient(path string) (*gorm.DB, error) {
	client, err := gorm.Open(sqlite.Open(path), newGormConfig())
	if err != nil {
		return nil, err
	}
	sqlDB, err := client.DB()
	if err != nil {
		return nil, err
	}
	// sqlite 仅支持单写，内存数据库在多连接下也不共享数据
	sqlDB.SetMaxOpenConns(1)
	return client, nil
}
