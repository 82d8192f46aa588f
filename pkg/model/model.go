// Package model 定义元素、分子、反应等领域模型（同时用于数据库与种子数据）
package model

import "time"

// BaseModel 基础模型
type BaseModel struct {
	CreatedAt time.Time `json:"created_at" yaml:"-"`
	UpdatedAt time.Time `json:"updated_at" yaml:"-"`
}
