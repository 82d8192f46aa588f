package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/narasux/chemreact/pkg/model"
	"github.com/narasux/chemreact/pkg/service"
	"github.com/narasux/chemreact/pkg/utils/ginx"
)

// ReactionPage 分页的反应列表
type ReactionPage struct {
	Count    int64                     `json:"count"`
	Page     int                       `json:"page"`
	PageSize int                       `json:"page_size"`
	Results  []service.ReactionSummary `json:"results"`
}

// ValidateRequest 元素组合校验请求，element_symbols 为 elements 的别名
type ValidateRequest struct {
	Elements       []string `json:"elements"`
	ElementSymbols []string `json:"element_symbols"`
}

func toReactionSummaries(reactions model.Reactions) []service.ReactionSummary {
	return lo.Map(reactions, func(r model.Reaction, _ int) service.ReactionSummary {
		return service.NewReactionSummary(&r)
	})
}

// ListReactions 已验证的反应列表
func ListReactions(c *gin.Context) {
	difficulty, err := service.ParseDifficulty(c.Query("difficulty"))
	if err != nil {
		respondError(c, err)
		return
	}
	filter := service.ReactionFilter{Type: c.Query("type"), Difficulty: difficulty}
	page := ginx.GetPagination(c)

	reactions, total, err := service.ListReactions(c.Request.Context(), filter, page)
	if err != nil {
		respondError(c, err)
		return
	}
	ginx.SetResp(c, http.StatusOK, ReactionPage{
		Count:    total,
		Page:     page.Page,
		PageSize: page.PageSize,
		Results:  toReactionSummaries(reactions),
	})
}

// RetrieveReaction 反应详情
func RetrieveReaction(c *gin.Context) {
	id, err := service.ParseReactionID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	detail, err := service.GetReactionDetail(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	ginx.SetResp(c, http.StatusOK, detail)
}

// GetReactionAnimation 反应动画与场景
func GetReactionAnimation(c *gin.Context) {
	id, err := service.ParseReactionID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	animation, err := service.GetReactionAnimation(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	ginx.SetResp(c, http.StatusOK, animation)
}

// ListReactionsByType 指定类型的反应
func ListReactionsByType(c *gin.Context) {
	reactions, err := service.ReactionsByType(c.Request.Context(), c.Param("type"))
	if err != nil {
		respondError(c, err)
		return
	}
	ginx.SetResp(c, http.StatusOK, toReactionSummaries(reactions))
}

// ValidateElements 校验用户选择的元素能否发生已知反应
func ValidateElements(c *gin.Context) {
	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	symbols := req.Elements
	if len(symbols) == 0 {
		symbols = req.ElementSymbols
	}

	result, err := service.ValidateElements(c.Request.Context(), symbols)
	if err != nil {
		respondError(c, err)
		return
	}
	ginx.SetResp(c, http.StatusOK, result)
}
