package logging

import (
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/narasux/chemreact/pkg/envs"
)

func TestGetLoggersFallbackToSystem(t *testing.T) {
	// 未初始化时，所有 logger 退化为系统 logger
	assert.Same(t, GetSystemLogger(), GetAccessLogger())
	assert.Same(t, GetSystemLogger(), GetAPILogger())
	assert.Same(t, GetSystemLogger(), GetAILogger())
	assert.Same(t, GetSystemLogger(), GetSqlLogger())
}

func TestGetFileWriter(t *testing.T) {
	origin := envs.LogFileBaseDir
	envs.LogFileBaseDir = t.TempDir()
	defer func() { envs.LogFileBaseDir = origin }()

	writer, err := getFileWriter(LogTypeAI)
	require.NoError(t, err)

	lj, ok := writer.(*lumberjack.Logger)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(envs.LogFileBaseDir, LogTypeAI, "ai.log"), lj.Filename)
	assert.DirExists(t, filepath.Join(envs.LogFileBaseDir, LogTypeAI))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, parseLevel("debug"))
	assert.Equal(t, logrus.InfoLevel, parseLevel("verbose"))
}
