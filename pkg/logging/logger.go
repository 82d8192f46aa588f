package logging

import (
	"io"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/narasux/chemreact/pkg/envs"
)

// 日志切割参数（单位：MB / 天）
const (
	maxLogFileSizeMB = 128
	maxLogBackups    = 10
	maxLogAgeDays    = 14
)

// 获取日志 Writer：默认双写（stdout & file），LOG_FILE_BASE_DIR 置空时仅输出到 stdout
func getWriter(logType string) (io.Writer, error) {
	if envs.LogFileBaseDir == "" {
		return os.Stdout, nil
	}
	fileWriter, err := getFileWriter(logType)
	if err != nil {
		return nil, err
	}
	return io.MultiWriter(os.Stdout, fileWriter), nil
}

// 不同的日志类型分目录存储，使用 lumberjack 实现切割归档
func getFileWriter(logType string) (io.Writer, error) {
	dir := filepath.Join(envs.LogFileBaseDir, logType)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, err
	}
	return &lumberjack.Logger{
		Filename:   filepath.Join(dir, logType+".log"),
		MaxSize:    maxLogFileSizeMB,
		MaxBackups: maxLogBackups,
		MaxAge:     maxLogAgeDays,
		LocalTime:  true,
	}, nil
}
