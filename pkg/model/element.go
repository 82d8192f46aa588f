package model

// Element 化学元素
type Element struct {
	BaseModel
	AtomicNumber int    `json:"atomic_number" yaml:"atomic_number" gorm:"primaryKey;autoIncrement:false"`
	Symbol       string `json:"symbol" yaml:"symbol" gorm:"type:varchar(3);uniqueIndex;not null"`
	Name         string `json:"name" yaml:"name" gorm:"type:varchar(50);not null"`
	NameEs       string `json:"name_es" yaml:"name_es" gorm:"type:varchar(50);not null"`
	Category     string `json:"category" yaml:"category" gorm:"type:varchar(25);index;not null"`

	// 物理性质
	AtomicMass   float64  `json:"atomic_mass" yaml:"atomic_mass"`
	Density      *float64 `json:"density" yaml:"density"`
	MeltingPoint *float64 `json:"melting_point" yaml:"melting_point"`
	BoilingPoint *float64 `json:"boiling_point" yaml:"boiling_point"`

	// 电子性质
	Electronegativity *float64 `json:"electronegativity" yaml:"electronegativity"`
	ElectronAffinity  *float64 `json:"electron_affinity" yaml:"electron_affinity"`
	IonizationEnergy  *float64 `json:"ionization_energy" yaml:"ionization_energy"`
	ElectronConfig    string   `json:"electron_config" yaml:"electron_config" gorm:"type:varchar(100)"`
	// 常见氧化态，逗号分隔，如 "+1,-1"
	OxidationStates string `json:"oxidation_states" yaml:"oxidation_states" gorm:"type:varchar(100)"`

	// 周期表位置（group 为 SQL 关键字）
	Group  int    `json:"group" yaml:"group" gorm:"column:group_number"`
	Period int    `json:"period" yaml:"period" gorm:"index"`
	Block  string `json:"block" yaml:"block" gorm:"type:varchar(2)"`

	// 可视化
	ColorHex          string   `json:"color_hex" yaml:"color_hex" gorm:"type:varchar(7);default:'#CCCCCC'"`
	CpkColor          string   `json:"cpk_color" yaml:"cpk_color" gorm:"type:varchar(7);default:'#CCCCCC'"`
	AtomicRadius      *float64 `json:"atomic_radius" yaml:"atomic_radius"`
	CovalentRadius    *float64 `json:"covalent_radius" yaml:"covalent_radius"`
	VanDerWaalsRadius *float64 `json:"van_der_waals_radius" yaml:"van_der_waals_radius"`

	DiscoveredBy   string `json:"discovered_by" yaml:"discovered_by" gorm:"type:varchar(200)"`
	YearDiscovered *int   `json:"year_discovered" yaml:"year_discovered"`
	Description    string `json:"description" yaml:"description" gorm:"type:text"`
}

// TableName ...
func (Element) TableName() string {
	return "elements"
}

// DisplayColor 可视化使用的颜色，优先 CPK 颜色
func (e *Element) DisplayColor() string {
	if e.CpkColor != "" {
		return e.CpkColor
	}
	if e.ColorHex != "" {
		return e.ColorHex
	}
	return DefaultColor
}

// DefaultColor 未配置颜色时使用的灰色
const DefaultColor = "#CCCCCC"

// Elements 元素列表
type Elements []Element

// GetBySymbol 根据符号获取元素（符号需已规范化）
func (es Elements) GetBySymbol(symbol string) *Element {
	for idx := range es {
		if es[idx].Symbol == symbol {
			return &es[idx]
		}
	}
	return nil
}

// FilterByCategory ...
func (es Elements) FilterByCategory(category string) Elements {
	filtered := Elements{}
	for _, e := range es {
		if e.Category == category {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
