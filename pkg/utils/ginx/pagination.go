package ginx

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

const (
	// MaxPageSize 单页最大数量
	MaxPageSize = 50
	// DefaultPageSize 默认单页数量
	DefaultPageSize = 20
	// MinPageSize 单页最小数量
	MinPageSize = 1
	// MinPage 最小页码数
	MinPage = 1
)

// Pagination 分页参数
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// Offset 计算偏移量
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// GetPageSizeFromQuery ...
func GetPageSizeFromQuery(c *gin.Context) int {
	pageSize, err := strconv.Atoi(c.Query("page_size"))
	if err != nil {
		return DefaultPageSize
	}
	pageSize = lo.Min([]int{MaxPageSize, pageSize})
	return lo.Max([]int{MinPageSize, pageSize})
}

// GetPageNumFromQuery ...
func GetPageNumFromQuery(c *gin.Context) int {
	pageNum, _ := strconv.Atoi(c.Query("page"))
	return lo.Max([]int{MinPage, pageNum})
}

// GetPagination 从 query 中获取分页参数
func GetPagination(c *gin.Context) Pagination {
	return Pagination{Page: GetPageNumFromQuery(c), PageSize: GetPageSizeFromQuery(c)}
}

// Paginate 对内存中的列表进行分页
func Paginate[T any](items []T, p Pagination) []T {
	start := lo.Min([]int{p.Offset(), len(items)})
	end := lo.Min([]int{start + p.PageSize, len(items)})
	return items[start:end]
}
