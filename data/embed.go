// Package data 内置的元素 / 分子 / 反应种子数据
package data

import "embed"

// FS 内置数据文件系统
//
//go:embed *.yaml
var FS embed.FS

const (
	ElementsFile  = "elements.yaml"
	MoleculesFile = "molecules.yaml"
	ReactionsFile = "reactions.yaml"
)
