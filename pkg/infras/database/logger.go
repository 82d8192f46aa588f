package database

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/narasux/chemreact/pkg/utils/ctxx"
)

// 慢查询阈值
const slowSQLThreshold = 200 * time.Millisecond

// gormLogger 将 gorm 日志输出到 logrus（sql logger）
type gormLogger struct {
	logger *logrus.Logger
	level  gormlogger.LogLevel
}

func newGormLogger(logger *logrus.Logger) gormlogger.Interface {
	level := gormlogger.Warn
	if logger.IsLevelEnabled(logrus.DebugLevel) {
		level = gormlogger.Info
	}
	return &gormLogger{logger: logger, level: level}
}

// LogMode ...
func (l *gormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	newLogger := *l
	newLogger.level = level
	return &newLogger
}

// Info ...
func (l *gormLogger) Info(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Info {
		l.entry(ctx).Infof(msg, args...)
	}
}

// Warn ...
func (l *gormLogger) Warn(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Warn {
		l.entry(ctx).Warnf(msg, args...)
	}
}

// Error ...
func (l *gormLogger) Error(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Error {
		l.entry(ctx).Errorf(msg, args...)
	}
}

// Trace 记录 sql 执行情况：出错 / 慢查询 / 调试模式下的全部语句
func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	entry := l.entry(ctx).WithFields(logrus.Fields{
		"sql":     sql,
		"rows":    rows,
		"latency": float64(elapsed.Microseconds()) / 1000,
	})

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormlogger.Error:
		entry.WithError(err).Error("sql error")
	case elapsed > slowSQLThreshold && l.level >= gormlogger.Warn:
		entry.Warn("slow sql")
	case l.level >= gormlogger.Info:
		entry.Info("-")
	}
}

func (l *gormLogger) entry(ctx context.Context) *logrus.Entry {
	return l.logger.WithField("requestID", ctxx.GetRequestID(ctx))
}
