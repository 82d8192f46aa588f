package service

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/narasux/chemreact/pkg/atom"
	"github.com/narasux/chemreact/pkg/chem"
	"github.com/narasux/chemreact/pkg/infras/database"
	"github.com/narasux/chemreact/pkg/model"
	"github.com/narasux/chemreact/pkg/scene"
	"github.com/narasux/chemreact/pkg/utils/textx"
)

// 元素周期数范围
const (
	MinPeriod = 1
	MaxPeriod = 7
)

// ElementSummary 元素列表中的精简字段
type ElementSummary struct {
	AtomicNumber  int     `json:"atomic_number"`
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	NameEs        string  `json:"name_es"`
	Category      string  `json:"category"`
	CategoryLabel string  `json:"category_label"`
	AtomicMass    float64 `json:"atomic_mass"`
	Group         int     `json:"group"`
	Period        int     `json:"period"`
	Block         string  `json:"block"`
	ColorHex      string  `json:"color_hex"`
	CpkColor      string  `json:"cpk_color"`
}

// ElementDetail 元素详情，附带计算得到的字段
type ElementDetail struct {
	model.Element
	CategoryLabel       string `json:"category_label"`
	ValenceElectrons    int    `json:"valence_electrons"`
	OxidationStatesList []int  `json:"oxidation_states_list"`
	ElectronShells      []int  `json:"electron_shells"`
}

// Element3D 三维可视化所需的元素字段
type Element3D struct {
	AtomicNumber     int      `json:"atomic_number"`
	Symbol           string   `json:"symbol"`
	NameEs           string   `json:"name_es"`
	CpkColor         string   `json:"cpk_color"`
	AtomicRadius     *float64 `json:"atomic_radius"`
	CovalentRadius   *float64 `json:"covalent_radius"`
	ElectronShells   []int    `json:"electron_shells"`
	ValenceElectrons int      `json:"valence_electrons"`
}

// CategoryCount 元素分类及数量
type CategoryCount struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// PeriodicTable 周期表布局：organized[周期][族]，镧系 / 锕系单独成列
type PeriodicTable struct {
	Elements  []ElementSummary               `json:"elements"`
	Organized map[int]map[int]ElementSummary `json:"organized"`
	Series    map[string][]ElementSummary    `json:"series"`
}

// ShellInfo 单个电子层
type ShellInfo struct {
	Name      string  `json:"name"`
	Electrons int     `json:"electrons"`
	Radius    float64 `json:"radius"`
}

// AtomModel 玻尔模型：电子层、原子核布局与场景
type AtomModel struct {
	Element ElementSummary `json:"element"`
	Shells  []ShellInfo    `json:"shells"`
	Nucleus atom.Nucleus   `json:"nucleus"`
	Scene   scene.Scene    `json:"scene"`
}

// ElementFilter 元素列表过滤条件，零值表示不过滤
type ElementFilter struct {
	Category string
	Block    string
	Period   int
}

// Validate ...
func (f ElementFilter) Validate() error {
	if f.Category != "" && !model.ElementCategories.Has(f.Category) {
		return invalidParams("unknown category %q", f.Category)
	}
	if f.Block != "" && !lo.Contains(model.ElementBlocks, f.Block) {
		return invalidParams("unknown block %q", f.Block)
	}
	if f.Period != 0 && (f.Period < MinPeriod || f.Period > MaxPeriod) {
		return invalidParams("period must be between %d and %d", MinPeriod, MaxPeriod)
	}
	return nil
}

// ParsePeriod 解析周期参数，空字符串表示不过滤
func ParsePeriod(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	period, err := strconv.Atoi(raw)
	if err != nil {
		return 0, invalidParams("invalid period %q", raw)
	}
	return period, nil
}

// AllElements 按原子序数排序的全部元素
func AllElements(ctx context.Context) (model.Elements, error) {
	elements := model.Elements{}
	if err := database.Client(ctx).Order("atomic_number").Find(&elements).Error; err != nil {
		return nil, errors.Wrap(err, "list elements")
	}
	return elements, nil
}

// ListElements 按条件过滤元素
func ListElements(ctx context.Context, filter ElementFilter) (model.Elements, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	db := database.Client(ctx).Order("atomic_number")
	if filter.Category != "" {
		db = db.Where("category = ?", filter.Category)
	}
	if filter.Block != "" {
		db = db.Where("block = ?", filter.Block)
	}
	if filter.Period != 0 {
		db = db.Where("period = ?", filter.Period)
	}

	elements := model.Elements{}
	if err := db.Find(&elements).Error; err != nil {
		return nil, errors.Wrap(err, "list elements")
	}
	return elements, nil
}

// GetElement 根据符号（忽略大小写）或原子序数获取元素
func GetElement(ctx context.Context, key string) (*model.Element, error) {
	key = strings.TrimSpace(key)
	db := database.Client(ctx)

	var element model.Element
	var err error
	if number, convErr := strconv.Atoi(key); convErr == nil {
		if number < 1 || number > atom.MaxAtomicNumber {
			return nil, invalidParams("atomic number must be between 1 and %d", atom.MaxAtomicNumber)
		}
		err = db.Where("atomic_number = ?", number).Take(&element).Error
	} else {
		symbol := chem.NormalizeSymbol(key)
		if symbol == "" {
			return nil, invalidParams("invalid element %q", key)
		}
		err = db.Where("symbol = ?", symbol).Take(&element).Error
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrElementNotFound
	} else if err != nil {
		return nil, errors.Wrapf(err, "get element %s", key)
	}
	return &element, nil
}

// SearchElements 按符号 / 英文名 / 西班牙语名搜索（忽略大小写与变音符号），符号完全匹配的排在前面
func SearchElements(ctx context.Context, query string) (model.Elements, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, invalidParams("search query is required")
	}
	elements, err := AllElements(ctx)
	if err != nil {
		return nil, err
	}

	folded := textx.Fold(query)
	matched := lo.Filter(elements, func(e model.Element, _ int) bool {
		return textx.ContainsFold(e.Symbol, folded) ||
			textx.ContainsFold(e.Name, folded) ||
			textx.ContainsFold(e.NameEs, folded)
	})
	sort.SliceStable(matched, func(i, j int) bool {
		return textx.Fold(matched[i].Symbol) == folded && textx.Fold(matched[j].Symbol) != folded
	})
	return matched, nil
}

// CategoryCounts 各分类的元素数量（按分类定义顺序，不含空分类）
func CategoryCounts(ctx context.Context) ([]CategoryCount, error) {
	type row struct {
		Category string
		Count    int
	}
	rows := []row{}
	err := database.Client(ctx).Model(&model.Element{}).
		Select("category, count(*) as count").
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "count element categories")
	}

	counts := map[string]int{}
	for _, r := range rows {
		counts[r.Category] = r.Count
	}
	result := []CategoryCount{}
	for _, c := range model.ElementCategories {
		if n := counts[c.Value]; n > 0 {
			result = append(result, CategoryCount{Value: c.Value, Label: c.Label, Count: n})
		}
	}
	return result, nil
}

// GetPeriodicTable 周期表布局
func GetPeriodicTable(ctx context.Context) (*PeriodicTable, error) {
	elements, err := AllElements(ctx)
	if err != nil {
		return nil, err
	}

	table := &PeriodicTable{
		Elements:  lo.Map(elements, func(e model.Element, _ int) ElementSummary { return NewElementSummary(&e) }),
		Organized: map[int]map[int]ElementSummary{},
		Series: map[string][]ElementSummary{
			model.CategoryLanthanide: {},
			model.CategoryActinide:   {},
		},
	}
	for _, summary := range table.Elements {
		if _, ok := table.Series[summary.Category]; ok {
			table.Series[summary.Category] = append(table.Series[summary.Category], summary)
			continue
		}
		if summary.Group == 0 {
			continue
		}
		if table.Organized[summary.Period] == nil {
			table.Organized[summary.Period] = map[int]ElementSummary{}
		}
		table.Organized[summary.Period][summary.Group] = summary
	}
	return table, nil
}

// Elements3D 全部元素的可视化字段
func Elements3D(ctx context.Context) ([]Element3D, error) {
	elements, err := AllElements(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(elements, func(e model.Element, _ int) Element3D {
		shells, _ := atom.Shells(e.AtomicNumber)
		return Element3D{
			AtomicNumber:     e.AtomicNumber,
			Symbol:           e.Symbol,
			NameEs:           e.NameEs,
			CpkColor:         e.DisplayColor(),
			AtomicRadius:     e.AtomicRadius,
			CovalentRadius:   e.CovalentRadius,
			ElectronShells:   shells,
			ValenceElectrons: chem.ValenceElectrons(e.Block, e.Group),
		}
	}), nil
}

// GetElementDetail 元素详情
func GetElementDetail(ctx context.Context, key string) (*ElementDetail, error) {
	element, err := GetElement(ctx, key)
	if err != nil {
		return nil, err
	}
	return NewElementDetail(element), nil
}

// GetAtomModel 元素的玻尔模型
func GetAtomModel(ctx context.Context, key string) (*AtomModel, error) {
	element, err := GetElement(ctx, key)
	if err != nil {
		return nil, err
	}
	shells, err := atom.Shells(element.AtomicNumber)
	if err != nil {
		return nil, errors.Wrapf(err, "shells of %s", element.Symbol)
	}

	nucleus := atom.NucleusLayout(element.AtomicNumber, atom.Neutrons(element.AtomicMass, element.AtomicNumber))
	infos := make([]ShellInfo, 0, len(shells))
	for idx, n := range shells {
		infos = append(infos, ShellInfo{
			Name:      atom.ShellNames[idx],
			Electrons: n,
			Radius:    atom.ShellRadius(idx, nucleus.Radius),
		})
	}
	return &AtomModel{
		Element: NewElementSummary(element),
		Shells:  infos,
		Nucleus: nucleus,
		Scene:   scene.AtomScene(element, shells, nucleus),
	}, nil
}

// NewElementSummary ...
func NewElementSummary(e *model.Element) ElementSummary {
	return ElementSummary{
		AtomicNumber:  e.AtomicNumber,
		Symbol:        e.Symbol,
		Name:          e.Name,
		NameEs:        e.NameEs,
		Category:      e.Category,
		CategoryLabel: model.ElementCategories.Label(e.Category),
		AtomicMass:    e.AtomicMass,
		Group:         e.Group,
		Period:        e.Period,
		Block:         e.Block,
		ColorHex:      e.ColorHex,
		CpkColor:      e.CpkColor,
	}
}

// NewElementDetail ...
func NewElementDetail(e *model.Element) *ElementDetail {
	shells, _ := atom.Shells(e.AtomicNumber)
	return &ElementDetail{
		Element:             *e,
		CategoryLabel:       model.ElementCategories.Label(e.Category),
		ValenceElectrons:    chem.ValenceElectrons(e.Block, e.Group),
		OxidationStatesList: chem.ParseOxidationStates(e.OxidationStates),
		ElectronShells:      shells,
	}
}
