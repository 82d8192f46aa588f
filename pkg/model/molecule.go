package model

// AtomPosition 分子 / 动画中的单个原子
type AtomPosition struct {
	Element  string `json:"element" yaml:"element"`
	Position Vec3   `json:"position" yaml:"position"`
}

// Bond 化学键，From / To 为 Atoms 下标
type Bond struct {
	From  int    `json:"from" yaml:"from"`
	To    int    `json:"to" yaml:"to"`
	Type  string `json:"type" yaml:"type"`
	Order int    `json:"order" yaml:"order"`
}

const (
	BondCovalent = "covalent"
	BondIonic    = "ionic"
	BondMetallic = "metallic"
)

// Structure3D 分子三维结构
type Structure3D struct {
	Atoms    []AtomPosition `json:"atoms" yaml:"atoms"`
	Bonds    []Bond         `json:"bonds" yaml:"bonds"`
	Geometry string         `json:"geometry" yaml:"geometry"`
}

// Molecule 常见分子
type Molecule struct {
	BaseModel
	ID              int64       `json:"id" yaml:"-" gorm:"primaryKey"`
	Formula         string      `json:"formula" yaml:"formula" gorm:"type:varchar(50);uniqueIndex;not null"`
	Name            string      `json:"name" yaml:"name" gorm:"type:varchar(100);not null"`
	NameEs          string      `json:"name_es" yaml:"name_es" gorm:"type:varchar(100);not null"`
	Structure       Structure3D `json:"structure_3d" yaml:"structure_3d" gorm:"serializer:json;type:text"`
	MolecularWeight *float64    `json:"molecular_weight" yaml:"molecular_weight"`
	IsPolar         *bool       `json:"is_polar" yaml:"is_polar"`
	StateAtRoomTemp string      `json:"state_at_room_temp" yaml:"state_at_room_temp" gorm:"type:varchar(20)"`
}

// TableName ...
func (Molecule) TableName() string {
	return "molecules"
}

// Molecules 分子列表
type Molecules []Molecule

// GetByFormula ...
func (ms Molecules) GetByFormula(formula string) *Molecule {
	for idx := range ms {
		if ms[idx].Formula == formula {
			return &ms[idx]
		}
	}
	return nil
}
