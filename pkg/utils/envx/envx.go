package envx

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Get 读取环境变量，不存在时返回默认值
func Get(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

// GetInt 读取整型环境变量，不存在或不合法时返回默认值
func GetInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(strings.TrimSpace(Get(key, "")))
	if err != nil {
		return defaultValue
	}
	return value
}

// GetDuration 读取时长类型的环境变量（如 10m / 30s）
func GetDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(strings.TrimSpace(Get(key, "")))
	if err != nil {
		return defaultValue
	}
	return value
}

// GetList 读取以逗号分隔的列表，空值会被忽略
func GetList(key, defaultValue string) []string {
	var items []string
	for _, item := range strings.Split(Get(key, defaultValue), ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
