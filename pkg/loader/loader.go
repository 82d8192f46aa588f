package loader

import (
	"bytes"
	"io/fs"
	"os"

	"github.com/TencentBlueKing/gopkg/collection/set"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/narasux/chemreact/data"
	"github.com/narasux/chemreact/pkg/chem"
	"github.com/narasux/chemreact/pkg/envs"
	"github.com/narasux/chemreact/pkg/model"
)

// ErrInvalidCatalog 种子数据不合法
var ErrInvalidCatalog = errors.New("invalid catalog")

// CatalogLoader 元素 / 分子 / 反应种子数据加载器
type CatalogLoader struct {
	fsys    fs.FS
	catalog model.Catalog
}

// New ...
func New(fsys fs.FS) *CatalogLoader {
	return &CatalogLoader{fsys: fsys, catalog: model.Catalog{}}
}

// NewDefault 优先使用 CATALOG_DATA_DIR 指定的目录，否则使用内置数据
func NewDefault() *CatalogLoader {
	if envs.CatalogDataDir != "" {
		return New(os.DirFS(envs.CatalogDataDir))
	}
	return New(data.FS)
}

// Exec 依次执行加载步骤，任一步骤失败即返回
func (l *CatalogLoader) Exec() (*model.Catalog, error) {
	for _, f := range []func() error{
		l.loadElements,
		l.loadMolecules,
		l.loadReactions,
		l.applyDefaults,
		l.deriveParticipantElements,
		l.fillMolecularWeights,
		l.validateReferences,
		l.collectCategories,
	} {
		if err := f(); err != nil {
			return nil, err
		}
	}
	return &l.catalog, nil
}

// 加载元素数据
func (l *CatalogLoader) loadElements() error {
	return l.decodeFile(data.ElementsFile, &l.catalog.Elements)
}

// 加载分子数据
func (l *CatalogLoader) loadMolecules() error {
	return l.decodeFile(data.MoleculesFile, &l.catalog.Molecules)
}

// 加载反应数据
func (l *CatalogLoader) loadReactions() error {
	return l.decodeFile(data.ReactionsFile, &l.catalog.Reactions)
}

func (l *CatalogLoader) decodeFile(name string, out any) error {
	content, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return errors.Wrapf(err, "read %s", name)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	// 拒绝未知字段，避免拼写错误被静默忽略
	decoder.KnownFields(true)
	if err = decoder.Decode(out); err != nil {
		return errors.Wrapf(err, "decode %s", name)
	}
	return nil
}

// 补全缺省值
func (l *CatalogLoader) applyDefaults() error {
	for idx := range l.catalog.Reactions {
		r := &l.catalog.Reactions[idx]
		if r.EnergyChange == "" {
			r.EnergyChange = "neutral"
		}
		if r.DifficultyLevel == 0 {
			r.DifficultyLevel = model.MinDifficulty
		}
		for pIdx := range r.Participants {
			if r.Participants[pIdx].Coefficient == 0 {
				r.Participants[pIdx].Coefficient = 1
			}
		}
	}
	return nil
}

// 未显式指定元素的参与物质，从化学式中解析出元素
func (l *CatalogLoader) deriveParticipantElements() error {
	for idx := range l.catalog.Reactions {
		r := &l.catalog.Reactions[idx]
		for pIdx := range r.Participants {
			p := &r.Participants[pIdx]
			if len(p.Elements) != 0 {
				p.Elements, _ = chem.NormalizeSymbols(p.Elements)
				continue
			}
			comp, err := chem.ParseFormula(p.Formula)
			if err != nil {
				return errors.Wrapf(err, "reaction %q participant %q", r.Equation, p.Formula)
			}
			p.Elements = comp.Symbols()
		}
	}
	return nil
}

// 未指定分子量的分子，根据元素原子质量计算
func (l *CatalogLoader) fillMolecularWeights() error {
	massOf := func(symbol string) (float64, bool) {
		if e := l.catalog.Elements.GetBySymbol(symbol); e != nil {
			return e.AtomicMass, true
		}
		return 0, false
	}
	for idx := range l.catalog.Molecules {
		m := &l.catalog.Molecules[idx]
		if m.MolecularWeight != nil {
			continue
		}
		comp, err := chem.ParseFormula(m.Formula)
		if err != nil {
			return errors.Wrapf(err, "molecule %q", m.Formula)
		}
		// 元素缺失由 validateReferences 统一报错
		if weight, err := chem.MolarMass(comp, massOf); err == nil {
			m.MolecularWeight = lo.ToPtr(weight)
		}
	}
	return nil
}

// 校验数据间的引用关系
func (l *CatalogLoader) validateReferences() error {
	symbols := set.NewStringSet()
	atomicNumbers := map[int]bool{}
	for _, e := range l.catalog.Elements {
		if chem.NormalizeSymbol(e.Symbol) != e.Symbol {
			return errors.Wrapf(ErrInvalidCatalog, "element %d: malformed symbol %q", e.AtomicNumber, e.Symbol)
		}
		if symbols.Has(e.Symbol) || atomicNumbers[e.AtomicNumber] {
			return errors.Wrapf(ErrInvalidCatalog, "element %s: duplicated", e.Symbol)
		}
		if !model.ElementCategories.Has(e.Category) {
			return errors.Wrapf(ErrInvalidCatalog, "element %s: unknown category %q", e.Symbol, e.Category)
		}
		symbols.Add(e.Symbol)
		atomicNumbers[e.AtomicNumber] = true
	}

	formulas := set.NewStringSet()
	for _, m := range l.catalog.Molecules {
		if formulas.Has(m.Formula) {
			return errors.Wrapf(ErrInvalidCatalog, "molecule %s: duplicated", m.Formula)
		}
		formulas.Add(m.Formula)

		atoms := m.Structure.Atoms
		for _, atom := range atoms {
			if !symbols.Has(atom.Element) {
				return errors.Wrapf(ErrInvalidCatalog, "molecule %s: unknown element %q", m.Formula, atom.Element)
			}
		}
		for _, bond := range m.Structure.Bonds {
			if bond.From < 0 || bond.From >= len(atoms) || bond.To < 0 || bond.To >= len(atoms) || bond.From == bond.To {
				return errors.Wrapf(ErrInvalidCatalog, "molecule %s: bond %d-%d out of range", m.Formula, bond.From, bond.To)
			}
			if bond.Order < 1 || bond.Order > 3 {
				return errors.Wrapf(ErrInvalidCatalog, "molecule %s: bond order %d", m.Formula, bond.Order)
			}
		}
	}

	equations := set.NewStringSet()
	for _, r := range l.catalog.Reactions {
		if equations.Has(r.Equation) {
			return errors.Wrapf(ErrInvalidCatalog, "reaction %q: duplicated", r.Equation)
		}
		equations.Add(r.Equation)

		if !model.ReactionTypes.Has(r.ReactionType) {
			return errors.Wrapf(ErrInvalidCatalog, "reaction %q: unknown type %q", r.Equation, r.ReactionType)
		}
		if !model.EnergyTypes.Has(r.EnergyChange) {
			return errors.Wrapf(ErrInvalidCatalog, "reaction %q: unknown energy change %q", r.Equation, r.EnergyChange)
		}
		if r.DifficultyLevel < model.MinDifficulty || r.DifficultyLevel > model.MaxDifficulty {
			return errors.Wrapf(ErrInvalidCatalog, "reaction %q: difficulty %d", r.Equation, r.DifficultyLevel)
		}
		if len(r.ParticipantsByRole(model.RoleReactant)) == 0 {
			return errors.Wrapf(ErrInvalidCatalog, "reaction %q: no reactants", r.Equation)
		}
		for _, p := range r.Participants {
			if !model.ParticipantRoles.Has(p.Role) {
				return errors.Wrapf(ErrInvalidCatalog, "reaction %q: unknown role %q", r.Equation, p.Role)
			}
			for _, symbol := range p.Elements {
				if !symbols.Has(symbol) {
					return errors.Wrapf(ErrInvalidCatalog, "reaction %q: unknown element %q", r.Equation, symbol)
				}
			}
		}
	}
	return nil
}

// 采集元素分类（按分类定义顺序）
func (l *CatalogLoader) collectCategories() error {
	categories := set.NewStringSet()
	for _, e := range l.catalog.Elements {
		categories.Add(e.Category)
	}
	l.catalog.Categories = lo.Filter(model.ElementCategories.Values(), func(c string, _ int) bool {
		return categories.Has(c)
	})
	return nil
}
