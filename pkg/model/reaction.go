package model

import (
	"github.com/TencentBlueKing/gopkg/collection/set"
)

// AnimationGroup 动画中的一组分子
type AnimationGroup struct {
	Molecule string         `json:"molecule" yaml:"molecule"`
	Count    int            `json:"count" yaml:"count"`
	Atoms    []AtomPosition `json:"atoms" yaml:"atoms"`
}

// BondChange 动画中的断键 / 成键
type BondChange struct {
	Type  string `json:"type" yaml:"type"`
	Atoms []int  `json:"atoms" yaml:"atoms"`
	Step  int    `json:"step" yaml:"step"`
}

// AnimationStep 动画步骤
type AnimationStep struct {
	Step        int    `json:"step" yaml:"step"`
	DurationMs  int    `json:"duration_ms" yaml:"duration_ms"`
	Description string `json:"description" yaml:"description"`
}

// AnimationData 反应动画数据
type AnimationData struct {
	Reactants       []AnimationGroup `json:"reactants,omitempty" yaml:"reactants"`
	Products        []AnimationGroup `json:"products,omitempty" yaml:"products"`
	BondChanges     []BondChange     `json:"bond_changes,omitempty" yaml:"bond_changes"`
	Steps           []AnimationStep  `json:"animation_steps,omitempty" yaml:"animation_steps"`
	TotalDurationMs int              `json:"total_duration_ms" yaml:"total_duration_ms"`
}

// ReactionParticipant 参与反应的物质（反应物 / 生成物 / 催化剂）
type ReactionParticipant struct {
	ID             int64    `json:"id" yaml:"-" gorm:"primaryKey"`
	ReactionID     int64    `json:"-" yaml:"-" gorm:"index;not null"`
	Role           string   `json:"role" yaml:"role" gorm:"type:varchar(20);not null"`
	Formula        string   `json:"formula" yaml:"formula" gorm:"type:varchar(50);not null"`
	Coefficient    int      `json:"coefficient" yaml:"coefficient"`
	OxidationState *int     `json:"oxidation_state" yaml:"oxidation_state"`
	Elements       []string `json:"elements" yaml:"elements" gorm:"serializer:json;type:text"`
}

// TableName ...
func (ReactionParticipant) TableName() string {
	return "reaction_participants"
}

// Reaction 化学反应
type Reaction struct {
	BaseModel
	ID           int64  `json:"id" yaml:"-" gorm:"primaryKey"`
	Name         string `json:"name" yaml:"name" gorm:"type:varchar(200);not null"`
	Equation     string `json:"equation" yaml:"equation" gorm:"type:varchar(255);uniqueIndex;not null"`
	ReactionType string `json:"reaction_type" yaml:"reaction_type" gorm:"type:varchar(20);index;not null"`
	IsReversible bool   `json:"is_reversible" yaml:"is_reversible"`

	// 热力学
	EnergyChange     string   `json:"energy_change" yaml:"energy_change" gorm:"type:varchar(20);default:neutral"`
	EnthalpyChange   *float64 `json:"enthalpy_change" yaml:"enthalpy_change"`
	ActivationEnergy *float64 `json:"activation_energy" yaml:"activation_energy"`

	// 反应条件
	RequiresCatalyst   bool   `json:"requires_catalyst" yaml:"requires_catalyst"`
	Catalyst           string `json:"catalyst" yaml:"catalyst" gorm:"type:varchar(100)"`
	TemperatureRange   string `json:"temperature_range" yaml:"temperature_range" gorm:"type:varchar(50)"`
	PressureConditions string `json:"pressure_conditions" yaml:"pressure_conditions" gorm:"type:varchar(50)"`

	AnimationData AnimationData `json:"animation_data" yaml:"animation_data" gorm:"serializer:json;type:text"`

	// 教学信息
	DifficultyLevel   int    `json:"difficulty_level" yaml:"difficulty_level" gorm:"index;default:1"`
	EducationalNotes  string `json:"educational_notes" yaml:"educational_notes" gorm:"type:text"`
	RealWorldExamples string `json:"real_world_examples" yaml:"real_world_examples" gorm:"type:text"`
	SafetyWarnings    string `json:"safety_warnings" yaml:"safety_warnings" gorm:"type:text"`
	IsVerified        bool   `json:"is_verified" yaml:"is_verified" gorm:"index"`

	Participants []ReactionParticipant `json:"participants" yaml:"participants" gorm:"foreignKey:ReactionID;constraint:OnDelete:CASCADE"`
}

// TableName ...
func (Reaction) TableName() string {
	return "reactions"
}

// ParticipantsByRole 指定角色的参与物质
func (r *Reaction) ParticipantsByRole(role string) []ReactionParticipant {
	participants := []ReactionParticipant{}
	for _, p := range r.Participants {
		if p.Role == role {
			participants = append(participants, p)
		}
	}
	return participants
}

// ReactantElements 反应物中的元素集合（按首次出现顺序）
func (r *Reaction) ReactantElements() []string {
	return r.elementsOf(RoleReactant)
}

// ProductElements 生成物中的元素集合（按首次出现顺序）
func (r *Reaction) ProductElements() []string {
	return r.elementsOf(RoleProduct)
}

// ElementSymbols 参与反应的全部元素（不含催化剂）
func (r *Reaction) ElementSymbols() []string {
	return r.elementsOf(RoleReactant, RoleProduct)
}

func (r *Reaction) elementsOf(roles ...string) []string {
	roleSet := set.NewStringSetWithValues(roles)
	seen := set.NewStringSet()
	symbols := []string{}
	for _, p := range r.Participants {
		if !roleSet.Has(p.Role) {
			continue
		}
		for _, symbol := range p.Elements {
			if seen.Has(symbol) {
				continue
			}
			seen.Add(symbol)
			symbols = append(symbols, symbol)
		}
	}
	return symbols
}

// Reactions 反应列表
type Reactions []Reaction

// GetByID ...
func (rs Reactions) GetByID(id int64) *Reaction {
	for idx := range rs {
		if rs[idx].ID == id {
			return &rs[idx]
		}
	}
	return nil
}
