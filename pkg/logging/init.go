package logging

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/narasux/chemreact/pkg/envs"
)

var initOnce sync.Once

// 访问日志
var accessLogger *logrus.Logger

// API 业务日志（Handler / Service）
var apiLogger *logrus.Logger

// AI Provider 调用日志（耗时、token 数、降级原因）
var aiLogger *logrus.Logger

// sql 日志
var sqlLogger *logrus.Logger

const (
	LogTypeSystem = "system"
	LogTypeAccess = "access"
	LogTypeAPI    = "api"
	LogTypeAI     = "ai"
	LogTypeSql    = "sql"
)

func InitLogger() {
	initSystemLogger()

	initOnce.Do(func() {
		accessLogger = newJsonLogger(LogTypeAccess)
		apiLogger = newJsonLogger(LogTypeAPI)
		aiLogger = newJsonLogger(LogTypeAI)
		sqlLogger = newJsonLogger(LogTypeSql)
	})
}

func GetSystemLogger() *logrus.Logger {
	return logrus.StandardLogger()
}

func GetAccessLogger() *logrus.Logger {
	if accessLogger == nil {
		return GetSystemLogger()
	}
	return accessLogger
}

func GetAPILogger() *logrus.Logger {
	if apiLogger == nil {
		return GetSystemLogger()
	}
	return apiLogger
}

func GetAILogger() *logrus.Logger {
	if aiLogger == nil {
		return GetSystemLogger()
	}
	return aiLogger
}

func GetSqlLogger() *logrus.Logger {
	if sqlLogger == nil {
		return GetSystemLogger()
	}
	return sqlLogger
}

func initSystemLogger() {
	// 设置日志输出
	writer, err := getWriter(LogTypeSystem)
	if err != nil {
		panic(err)
	}
	logrus.SetOutput(writer)

	// 设置日志格式
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: time.DateTime,
	})

	logrus.SetLevel(parseLevel(envs.LogLevel))
}

func newJsonLogger(logType string) *logrus.Logger {
	logger := logrus.New()
	// 设置日志输出
	writer, err := getWriter(logType)
	if err != nil {
		panic(err)
	}
	logger.SetOutput(writer)

	// 设置日志格式
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.DateTime,
		PrettyPrint:     false,
	})

	logger.SetLevel(parseLevel(envs.LogLevel))

	return logger
}

// 解析日志级别，不合法时使用 info
func parseLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
