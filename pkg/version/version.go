package version

import (
	"fmt"
	"runtime"
)

// 以下变量值可通过 --ldflags 的方式修改
var (
	// Version 版本号
	Version = "1.0.0"
	// GitCommit 提交 ID
	GitCommit = "--"
	// BuildTime 构建时间
	BuildTime = "--"
	// GoVersion 构建使用的 Go 版本
	GoVersion = runtime.Version()
)

// GetVersion 获取版本信息
func GetVersion() string {
	return fmt.Sprintf(
		"Version: %s, GitCommit: %s, BuildTime: %s, GoVersion: %s",
		Version, GitCommit, BuildTime, GoVersion,
	)
}
