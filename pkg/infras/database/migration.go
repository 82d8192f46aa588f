package database

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// 迁移记录表，与 gormigrate 默认配置保持一致
const migrationTableName = "migrations"

type migrationSet struct {
	sync.Mutex
	mapping map[string]*gormigrate.Migration
}

func (s *migrationSet) register(m *gormigrate.Migration) error {
	s.Lock()
	defer s.Unlock()

	if m.ID == "" {
		return errors.New("migration id is required")
	}
	if _, ok := s.mapping[m.ID]; ok {
		return errors.Errorf("migration %s already registered", m.ID)
	}
	s.mapping[m.ID] = m
	return nil
}

// 按 ID（时间顺序）排列的迁移列表
func (s *migrationSet) sorted() []*gormigrate.Migration {
	s.Lock()
	defer s.Unlock()

	migrations := make([]*gormigrate.Migration, 0, len(s.mapping))
	for _, m := range s.mapping {
		migrations = append(migrations, m)
	}
	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].ID < migrations[j].ID
	})
	return migrations
}

var (
	migSet         *migrationSet
	migSetInitOnce sync.Once
)

// 初始化数据库迁移集
func getMigrationSet() *migrationSet {
	migSetInitOnce.Do(func() {
		migSet = &migrationSet{
			mapping: map[string]*gormigrate.Migration{},
		}
	})
	return migSet
}

// RegisterMigration 注册迁移文件
func RegisterMigration(m *gormigrate.Migration) {
	if err := getMigrationSet().register(m); err != nil {
		log.Fatalf("failed to register migration: %s", err)
	}
}

// RunMigrate 执行迁移，migrationID 为空时迁移到最新版本
func RunMigrate(ctx context.Context, migrationID string) error {
	return Migrate(Client(ctx), migrationID)
}

// Migrate 在指定的数据库上执行已注册的迁移
func Migrate(client *gorm.DB, migrationID string) error {
	migrations := getMigrationSet().sorted()
	if len(migrations) == 0 {
		return errors.New("no migration registered")
	}

	opts := *gormigrate.DefaultOptions
	opts.TableName = migrationTableName
	m := gormigrate.New(client, &opts, migrations)

	if migrationID == "" {
		return errors.Wrap(m.Migrate(), "migrate to latest")
	}
	return errors.Wrapf(m.MigrateTo(migrationID), "migrate to %s", migrationID)
}

// Version 获取当前数据库版本（最近一次执行的迁移 ID）
func Version(ctx context.Context) (string, error) {
	var version string
	err := Client(ctx).Table(migrationTableName).Select("id").Order("id DESC").Limit(1).Scan(&version).Error
	if err != nil {
		return "", errors.Wrap(err, "query database version")
	}
	return version, nil
}

// GenMigrationID 生成迁移 ID（时间戳）
func GenMigrationID() string {
	return time.Now().Format("20060102_150405")
}
