package model

// Choice 枚举值及其展示名称（前端为西班牙语界面）
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Choices 枚举列表
type Choices []Choice

// Has 是否包含指定值
func (cs Choices) Has(value string) bool {
	for _, c := range cs {
		if c.Value == value {
			return true
		}
	}
	return false
}

// Label 获取展示名称，不存在时返回值本身
func (cs Choices) Label(value string) string {
	for _, c := range cs {
		if c.Value == value {
			return c.Label
		}
	}
	return value
}

// Values ...
func (cs Choices) Values() []string {
	values := make([]string, 0, len(cs))
	for _, c := range cs {
		values = append(values, c.Value)
	}
	return values
}

// 元素分类
const (
	CategoryAlkaliMetal         = "alkali-metal"
	CategoryAlkalineEarth       = "alkaline-earth"
	CategoryTransitionMetal     = "transition-metal"
	CategoryPostTransitionMetal = "post-transition-metal"
	CategoryMetalloid           = "metalloid"
	CategoryNonmetal            = "nonmetal"
	CategoryHalogen             = "halogen"
	CategoryNobleGas            = "noble-gas"
	CategoryLanthanide          = "lanthanide"
	CategoryActinide            = "actinide"
	CategoryUnknown             = "unknown"
)

// ElementCategories 元素分类
var ElementCategories = Choices{
	{CategoryAlkaliMetal, "Metal alcalino"},
	{CategoryAlkalineEarth, "Metal alcalinotérreo"},
	{CategoryTransitionMetal, "Metal de transición"},
	{CategoryPostTransitionMetal, "Metal post-transición"},
	{CategoryMetalloid, "Metaloide"},
	{CategoryNonmetal, "No metal"},
	{CategoryHalogen, "Halógeno"},
	{CategoryNobleGas, "Gas noble"},
	{CategoryLanthanide, "Lantánido"},
	{CategoryActinide, "Actínido"},
	{CategoryUnknown, "Desconocido"},
}

// 元素分区
var ElementBlocks = []string{"s", "p", "d", "f"}

// ReactionTypes 反应类型
var ReactionTypes = Choices{
	{"synthesis", "Síntesis"},
	{"decomposition", "Descomposición"},
	{"single_replacement", "Sustitución Simple"},
	{"double_replacement", "Sustitución Doble"},
	{"combustion", "Combustión"},
	{"redox", "Oxidación-Reducción"},
	{"acid_base", "Ácido-Base"},
	{"precipitation", "Precipitación"},
	{"complexation", "Complejación"},
	{"organic", "Reacción Orgánica"},
}

// EnergyTypes 能量变化类型
var EnergyTypes = Choices{
	{"exothermic", "Exotérmica"},
	{"endothermic", "Endotérmica"},
	{"neutral", "Neutral"},
}

// 难度范围
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// DifficultyLabels 难度等级名称
var DifficultyLabels = map[int]string{
	1: "Básico",
	2: "Intermedio",
	3: "Avanzado",
	4: "Universitario",
	5: "Profesional",
}

// 反应参与角色
const (
	RoleReactant = "reactant"
	RoleProduct  = "product"
	RoleCatalyst = "catalyst"
)

// ParticipantRoles ...
var ParticipantRoles = Choices{
	{RoleReactant, "Reactivo"},
	{RoleProduct, "Producto"},
	{RoleCatalyst, "Catalizador"},
}

// MoleculeStates 常温状态
var MoleculeStates = Choices{
	{"solid", "Sólido"},
	{"liquid", "Líquido"},
	{"gas", "Gas"},
}
