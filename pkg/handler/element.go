package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/narasux/chemreact/pkg/model"
	"github.com/narasux/chemreact/pkg/service"
	"github.com/narasux/chemreact/pkg/utils/ginx"
)

func toElementSummaries(elements model.Elements) []service.ElementSummary {
	return lo.Map(elements, func(e model.Element, _ int) service.ElementSummary {
		return service.NewElementSummary(&e)
	})
}

// ListElements 元素列表
func ListElements(c *gin.Context) {
	period, err := service.ParsePeriod(c.Query("period"))
	if err != nil {
		respondError(c, err)
		return
	}
	filter := service.ElementFilter{Category: c.Query("category"), Block: c.Query("block"), Period: period}

	elements, err := service.ListElements(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	ginx.SetResp(c, http.StatusOK, toElementSummaries(elements))
}

// GetPeriodicTable 按周期 / 族组织的周期表
func GetPeriodicTable(c *gin.Context) {
	table, err := service.GetPeriodicTable(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	ginx.SetResp(c, http.StatusOK, table)
}

// GetElements3D 全部元素的可视化数据
func GetElements3D(c *gin.Context) {
	elements, err := service.Elements3D(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	ginx.SetResp(c, http.StatusOK, elements)
}

// ListCategories 元素分类及数量
func ListCategories(c *gin.Context) {
	categories, err := service.CategoryCounts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	ginx.SetResp(c, http.StatusOK, categories)
}

// SearchElements 按符号 / 名称搜索元素
func SearchElements(c *gin.Context) {
	elements, err := service.SearchElements(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	ginx.SetResp(c, http.StatusOK, toElementSummaries(elements))
}

// RetrieveElement 元素详情（符号或原子序数）
func RetrieveElement(c *gin.Context) {
	detail, err := service.GetElementDetail(c.Request.Context(), c.Param("key"))
	if err != nil {
		respondError(c, err)
		return
	}
	ginx.SetResp(c, http.StatusOK, detail)
}

// GetAtomModel 元素的原子模型
func GetAtomModel(c *gin.Context) {
	atomModel, err := service.GetAtomModel(c.Request.Context(), c.Param("key"))
	if err != nil {
		respondError(c, err)
		return
	}
	ginx.SetResp(c, http.StatusOK, atomModel)
}
