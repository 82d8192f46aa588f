package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/narasux/chemreact/pkg/chem"
	"github.com/narasux/chemreact/pkg/infras/database"
	"github.com/narasux/chemreact/pkg/model"
	"github.com/narasux/chemreact/pkg/scene"
	"github.com/narasux/chemreact/pkg/utils/textx"
)

// MinMoleculeQueryLength 分子搜索关键字最小长度
const MinMoleculeQueryLength = 2

// MoleculeSummary 分子列表中的精简字段
type MoleculeSummary struct {
	ID              int64    `json:"id"`
	Formula         string   `json:"formula"`
	FormulaHTML     string   `json:"formula_html"`
	Name            string   `json:"name"`
	NameEs          string   `json:"name_es"`
	MolecularWeight *float64 `json:"molecular_weight"`
	StateAtRoomTemp string   `json:"state_at_room_temp"`
}

// MoleculeScene 分子场景
type MoleculeScene struct {
	Molecule MoleculeSummary `json:"molecule"`
	Scene    scene.Scene     `json:"scene"`
}

// AllMolecules 按化学式排序的全部分子
func AllMolecules(ctx context.Context) (model.Molecules, error) {
	molecules := model.Molecules{}
	if err := database.Client(ctx).Order("formula").Find(&molecules).Error; err != nil {
		return nil, errors.Wrap(err, "list molecules")
	}
	return molecules, nil
}

// GetMolecule 根据化学式获取分子，支持 Unicode 下标（H₂O）
func GetMolecule(ctx context.Context, formula string) (*model.Molecule, error) {
	formula = chem.ASCIIFormula(formula)
	if formula == "" {
		return nil, invalidParams("formula is required")
	}

	var molecule model.Molecule
	err := database.Client(ctx).Where("formula = ?", formula).Take(&molecule).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMoleculeNotFound
	} else if err != nil {
		return nil, errors.Wrapf(err, "get molecule %s", formula)
	}
	return &molecule, nil
}

// SearchMolecules 按化学式 / 名称搜索（忽略大小写与变音符号）
func SearchMolecules(ctx context.Context, query string) (model.Molecules, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinMoleculeQueryLength {
		return nil, invalidParams("search query requires at least %d characters", MinMoleculeQueryLength)
	}
	molecules, err := AllMolecules(ctx)
	if err != nil {
		return nil, err
	}

	formula := chem.ASCIIFormula(query)
	return lo.Filter(molecules, func(m model.Molecule, _ int) bool {
		return textx.ContainsFold(m.Formula, formula) ||
			textx.ContainsFold(m.Name, query) ||
			textx.ContainsFold(m.NameEs, query)
	}), nil
}

// GetMoleculeScene 分子的三维场景
func GetMoleculeScene(ctx context.Context, formula string) (*MoleculeScene, error) {
	molecule, err := GetMolecule(ctx, formula)
	if err != nil {
		return nil, err
	}
	elements, err := AllElements(ctx)
	if err != nil {
		return nil, err
	}
	return &MoleculeScene{
		Molecule: NewMoleculeSummary(molecule),
		Scene:    scene.MoleculeScene(molecule, elements.GetBySymbol),
	}, nil
}

// NewMoleculeSummary ...
func NewMoleculeSummary(m *model.Molecule) MoleculeSummary {
	return MoleculeSummary{
		ID:              m.ID,
		Formula:         m.Formula,
		FormulaHTML:     chem.EquationHTML(m.Formula),
		Name:            m.Name,
		NameEs:          m.NameEs,
		MolecularWeight: m.MolecularWeight,
		StateAtRoomTemp: m.StateAtRoomTemp,
	}
}
