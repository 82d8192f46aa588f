package envs

import (
	"path/filepath"
	"time"

	"github.com/narasux/chemreact/pkg/common/runmode"
	"github.com/narasux/chemreact/pkg/utils/envx"
	"github.com/narasux/chemreact/pkg/utils/pathx"
)

// BaseDir 项目根目录
var BaseDir = filepath.Join(pathx.GetCurPKGPath(), "../..")

// 以下变量值可通过环境变量指定
var (
	// Domain 服务域名
	Domain = envx.Get("DOMAIN", "localhost:8080")

	// DomainScheme 服务域名协议
	DomainScheme = envx.Get("DOMAIN_SCHEME", "http")

	// ServerPort web 服务启用端口
	ServerPort = envx.Get("SERVER_PORT", "8080")

	// GinRunMode web 服务运行模式
	GinRunMode = envx.Get("GIN_RUN_MODE", runmode.Release)

	// CatalogDataDir 元素 / 分子 / 反应数据目录，为空则使用内置数据
	CatalogDataDir = envx.Get("CATALOG_DATA_DIR", "")

	// LogFileBaseDir 日志存放目录
	LogFileBaseDir = envx.Get("LOG_FILE_BASE_DIR", filepath.Join(BaseDir, "logs"))

	// LogLevel 日志等级（panic/fatal/error/warn/info/debug/trace）
	LogLevel = envx.Get("LOG_LEVEL", "info")

	// RealClientIPHeaderKey 反向代理透传真实 IP 的请求头
	RealClientIPHeaderKey = envx.Get("REAL_CLIENT_IP_HEADER_KEY", "")

	// CorsAllowOrigins 允许跨域访问的来源（前端 SPA 地址）
	CorsAllowOrigins = envx.GetList("CORS_ALLOW_ORIGINS", "http://localhost:5173,http://localhost:3000")
)

// 数据库相关
var (
	// DBType 数据库类型（mysql / sqlite）
	DBType = envx.Get("DB_TYPE", "sqlite")

	// SqlitePath sqlite 数据库文件路径
	SqlitePath = envx.Get("SQLITE_PATH", filepath.Join(BaseDir, "chemreact.db"))

	MysqlHost     = envx.Get("MYSQL_HOST", "127.0.0.1")
	MysqlPort     = envx.Get("MYSQL_PORT", "3306")
	MysqlUser     = envx.Get("MYSQL_USER", "root")
	MysqlPassword = envx.Get("MYSQL_PASSWORD", "")
	MysqlDatabase = envx.Get("MYSQL_DATABASE", "chemreact")
	MysqlCharSet  = envx.Get("MYSQL_CHARSET", "utf8mb4")
)

// AI 解释相关（Provider 配置见 ai.go）
var (
	// AIRateLimitPerMinute 单个客户端每分钟可调用 AI 接口的次数
	AIRateLimitPerMinute = envx.GetInt("AI_RATE_LIMIT_PER_MINUTE", 10)

	// AICacheTTL AI 解释结果缓存时长
	AICacheTTL = envx.GetDuration("AI_CACHE_TTL", 6*time.Hour)
)
