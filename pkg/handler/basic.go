package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/narasux/chemreact/pkg/common/errcode"
	"github.com/narasux/chemreact/pkg/utils/ginx"
	"github.com/narasux/chemreact/pkg/version"
)

// Endpoint API 入口列表中的一项
type Endpoint struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

// Endpoints 对外提供的 API
var Endpoints = []Endpoint{
	{http.MethodGet, "/api/elements", "Lista de elementos (filtros: category, block, period)"},
	{http.MethodGet, "/api/elements/periodic-table", "Tabla periódica organizada por período y grupo"},
	{http.MethodGet, "/api/elements/3d-data", "Datos de visualización 3D de los elementos"},
	{http.MethodGet, "/api/elements/categories", "Categorías de elementos con su cantidad"},
	{http.MethodGet, "/api/elements/search", "Búsqueda de elementos (q)"},
	{http.MethodGet, "/api/elements/:key", "Detalle de un elemento por símbolo o número atómico"},
	{http.MethodGet, "/api/elements/:key/atom-model", "Modelo atómico 3D de un elemento"},
	{http.MethodGet, "/api/reactions", "Lista de reacciones verificadas (filtros: type, difficulty)"},
	{http.MethodGet, "/api/reactions/feed", "Feed Atom de reacciones"},
	{http.MethodGet, "/api/reactions/by-type/:type", "Reacciones de un tipo"},
	{http.MethodPost, "/api/reactions/validate", "Validar una combinación de elementos"},
	{http.MethodGet, "/api/reactions/:id", "Detalle de una reacción"},
	{http.MethodGet, "/api/reactions/:id/animation", "Datos de animación 3D de una reacción"},
	{http.MethodGet, "/api/molecules", "Lista de moléculas"},
	{http.MethodGet, "/api/molecules/search", "Búsqueda de moléculas (q)"},
	{http.MethodGet, "/api/molecules/:formula", "Detalle de una molécula"},
	{http.MethodGet, "/api/molecules/:formula/scene", "Escena 3D de una molécula"},
	{http.MethodPost, "/api/ai/explain-element", "Explicación de un elemento"},
	{http.MethodPost, "/api/ai/explain-reaction", "Explicación de una reacción"},
	{http.MethodGet, "/api/ai/status", "Estado de los servicios de IA"},
}

// GetAPIRoot API 入口：版本与接口列表
func GetAPIRoot(c *gin.Context) {
	ginx.SetResp(c, http.StatusOK, gin.H{
		"name":      "chemreact",
		"version":   version.Version,
		"endpoints": Endpoints,
	})
}

// Ping 存活检查
func Ping(c *gin.Context) {
	ginx.SetResp(c, http.StatusOK, "pong")
}

// Get404 未匹配的路由
func Get404(c *gin.Context) {
	ginx.SetErrResp(c, http.StatusNotFound, errcode.NotFound, "resource not found")
}
