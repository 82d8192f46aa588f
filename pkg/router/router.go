package router

import (
	"github.com/gin-gonic/gin"

	"github.com/narasux/chemreact/pkg/envs"
	"github.com/narasux/chemreact/pkg/handler"
	"github.com/narasux/chemreact/pkg/middleware"
)

// NewRouter 注册中间件与全部路由
func NewRouter() *gin.Engine {
	gin.SetMode(envs.GinRunMode)
	router := gin.New()
	_ = router.SetTrustedProxies(nil)

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Cors(envs.CorsAllowOrigins))
	router.Use(gin.Recovery())

	// 404
	router.NoRoute(handler.Get404)
	// 存活检查
	router.GET("ping", handler.Ping)

	apiRg := router.Group("api")
	apiRg.GET("", handler.GetAPIRoot)

	// 元素（静态路径需在 :key 之前注册）
	{
		elementRg := apiRg.Group("elements")
		elementRg.GET("", handler.ListElements)
		elementRg.GET("periodic-table", handler.GetPeriodicTable)
		elementRg.GET("3d-data", handler.GetElements3D)
		elementRg.GET("categories", handler.ListCategories)
		elementRg.GET("search", handler.SearchElements)
		elementRg.GET(":key", handler.RetrieveElement)
		elementRg.GET(":key/atom-model", handler.GetAtomModel)
	}

	// 反应
	{
		reactionRg := apiRg.Group("reactions")
		reactionRg.GET("", handler.ListReactions)
		reactionRg.GET("feed", handler.GetReactionFeed)
		reactionRg.GET("by-type/:type", handler.ListReactionsByType)
		reactionRg.POST("validate", handler.ValidateElements)
		reactionRg.GET(":id", handler.RetrieveReaction)
		reactionRg.GET(":id/animation", handler.GetReactionAnimation)
	}

	// 分子
	{
		moleculeRg := apiRg.Group("molecules")
		moleculeRg.GET("", handler.ListMolecules)
		moleculeRg.GET("search", handler.SearchMolecules)
		moleculeRg.GET(":formula", handler.RetrieveMolecule)
		moleculeRg.GET(":formula/scene", handler.GetMoleculeScene)
	}

	// AI 解释（生成接口按客户端 IP 限流）
	{
		aiRg := apiRg.Group("ai")
		aiRg.GET("status", handler.GetAIStatus)

		limited := aiRg.Group("", middleware.RateLimit(envs.AIRateLimitPerMinute))
		limited.POST("explain-reaction", handler.ExplainReaction)
		limited.POST("explain-element", handler.ExplainElement)
	}

	return router
}

// Run 启动 web 服务（阻塞）
func Run() error {
	return NewRouter().Run(":" + envs.ServerPort)
}
