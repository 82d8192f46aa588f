package model

// Catalog 种子数据目录：元素、分子、反应
type Catalog struct {
	Elements   Elements  `json:"elements"`
	Molecules  Molecules `json:"molecules"`
	Reactions  Reactions `json:"reactions"`
	Categories []string  `json:"categories"`
}
