package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/narasux/chemreact/pkg/model"
	"github.com/narasux/chemreact/pkg/service"
	"github.com/narasux/chemreact/pkg/utils/ginx"
)

func toMoleculeSummaries(molecules model.Molecules) []service.MoleculeSummary {
	return lo.Map(molecules, func(m model.Molecule, _ int) service.MoleculeSummary {
		return service.NewMoleculeSummary(&m)
	})
}

// ListMolecules 分子列表
func ListMolecules(c *gin.Context) {
	molecules, err := service.AllMolecules(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	ginx.SetResp(c, http.StatusOK, toMoleculeSummaries(molecules))
}

// SearchMolecules 按化学式 / 名称搜索分子
func SearchMolecules(c *gin.Context) {
	molecules, err := service.SearchMolecules(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	ginx.SetResp(c, http.StatusOK, toMoleculeSummaries(molecules))
}

// RetrieveMolecule 分子详情（含结构数据）
func RetrieveMolecule(c *gin.Context) {
	molecule, err := service.GetMolecule(c.Request.Context(), c.Param("formula"))
	if err != nil {
		respondError(c, err)
		return
	}
	ginx.SetResp(c, http.StatusOK, molecule)
}

// GetMoleculeScene 分子的 3D 场景
func GetMoleculeScene(c *gin.Context) {
	moleculeScene, err := service.GetMoleculeScene(c.Request.Context(), c.Param("formula"))
	if err != nil {
		respondError(c, err)
		return
	}
	ginx.SetResp(c, http.StatusOK, moleculeScene)
}
