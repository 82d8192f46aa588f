package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/narasux/chemreact/pkg/chem"
	"github.com/narasux/chemreact/pkg/infras/database"
	"github.com/narasux/chemreact/pkg/model"
	"github.com/narasux/chemreact/pkg/scene"
	"github.com/narasux/chemreact/pkg/utils/ginx"
)

// ReactionSummary 反应列表中的精简字段
type ReactionSummary struct {
	ID                int64    `json:"id"`
	Name              string   `json:"name"`
	Equation          string   `json:"equation"`
	EquationHTML      string   `json:"equation_html"`
	ReactionType      string   `json:"reaction_type"`
	ReactionTypeLabel string   `json:"reaction_type_label"`
	EnergyChange      string   `json:"energy_change"`
	EnergyChangeLabel string   `json:"energy_change_label"`
	EnthalpyChange    *float64 `json:"enthalpy_change"`
	DifficultyLevel   int      `json:"difficulty_level"`
	DifficultyLabel   string   `json:"difficulty_label"`
	IsReversible      bool     `json:"is_reversible"`
	Elements          []string `json:"elements"`
}

// ReactionDetail 反应详情
type ReactionDetail struct {
	model.Reaction
	EquationHTML      string   `json:"equation_html"`
	ReactionTypeLabel string   `json:"reaction_type_label"`
	EnergyChangeLabel string   `json:"energy_change_label"`
	DifficultyLabel   string   `json:"difficulty_label"`
	ReactantElements  []string `json:"reactant_elements"`
	ProductElements   []string `json:"product_elements"`
}

// ReactionAnimation 反应动画数据与场景
type ReactionAnimation struct {
	ReactionID    int64               `json:"reaction_id"`
	Name          string              `json:"name"`
	Equation      string              `json:"equation"`
	EquationHTML  string              `json:"equation_html"`
	AnimationData model.AnimationData `json:"animation_data"`
	Scene         scene.Scene         `json:"scene"`
}

// ReactionFilter 反应列表过滤条件，零值表示不过滤
type ReactionFilter struct {
	Type       string
	Difficulty int
}

// Validate ...
func (f ReactionFilter) Validate() error {
	if f.Type != "" && !model.ReactionTypes.Has(f.Type) {
		return invalidParams("unknown reaction type %q", f.Type)
	}
	if f.Difficulty != 0 && (f.Difficulty < model.MinDifficulty || f.Difficulty > model.MaxDifficulty) {
		return invalidParams("difficulty must be between %d and %d", model.MinDifficulty, model.MaxDifficulty)
	}
	return nil
}

// ParseDifficulty 解析难度参数，空字符串表示不过滤
func ParseDifficulty(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	difficulty, err := strconv.Atoi(raw)
	if err != nil {
		return 0, invalidParams("invalid difficulty %q", raw)
	}
	return difficulty, nil
}

// ParseReactionID ...
func ParseReactionID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, invalidParams("invalid reaction id %q", raw)
	}
	return id, nil
}

// 已验证的反应（含参与物质），按 ID 排序
func verifiedReactions(ctx context.Context) *gorm.DB {
	return database.Client(ctx).
		Preload("Participants", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Where("is_verified = ?", true).
		Order("id")
}

// VerifiedReactions 全部已验证的反应
func VerifiedReactions(ctx context.Context) (model.Reactions, error) {
	reactions := model.Reactions{}
	if err := verifiedReactions(ctx).Find(&reactions).Error; err != nil {
		return nil, errors.Wrap(err, "list verified reactions")
	}
	return reactions, nil
}

// 过滤条件
func (f ReactionFilter) scope(db *gorm.DB) *gorm.DB {
	if f.Type != "" {
		db = db.Where("reaction_type = ?", f.Type)
	}
	if f.Difficulty != 0 {
		db = db.Where("difficulty_level = ?", f.Difficulty)
	}
	return db
}

// ListReactions 已验证反应的分页列表，返回当前页与总数
func ListReactions(ctx context.Context, filter ReactionFilter, page ginx.Pagination) (model.Reactions, int64, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, err
	}

	var total int64
	err := database.Client(ctx).Model(&model.Reaction{}).
		Where("is_verified = ?", true).
		Scopes(filter.scope).
		Count(&total).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "count reactions")
	}

	reactions := model.Reactions{}
	err = verifiedReactions(ctx).
		Scopes(filter.scope).
		Offset(page.Offset()).
		Limit(page.PageSize).
		Find(&reactions).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "list reactions")
	}
	return reactions, total, nil
}

// GetReaction 获取反应详情（未验证的反应同样可以查询）
func GetReaction(ctx context.Context, id int64) (*model.Reaction, error) {
	var reaction model.Reaction
	err := database.Client(ctx).
		Preload("Participants", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Where("id = ?", id).
		Take(&reaction).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrReactionNotFound
	} else if err != nil {
		return nil, errors.Wrapf(err, "get reaction %d", id)
	}
	return &reaction, nil
}

// GetReactionDetail ...
func GetReactionDetail(ctx context.Context, id int64) (*ReactionDetail, error) {
	reaction, err := GetReaction(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewReactionDetail(reaction), nil
}

// ReactionsByType 指定类型的已验证反应：类型未定义返回参数错误，没有反应返回 ErrReactionNotFound
func ReactionsByType(ctx context.Context, reactionType string) (model.Reactions, error) {
	if !model.ReactionTypes.Has(reactionType) {
		return nil, invalidParams("unknown reaction type %q", reactionType)
	}
	reactions := model.Reactions{}
	if err := verifiedReactions(ctx).Where("reaction_type = ?", reactionType).Find(&reactions).Error; err != nil {
		return nil, errors.Wrapf(err, "list %s reactions", reactionType)
	}
	if len(reactions) == 0 {
		return nil, ErrReactionNotFound
	}
	return reactions, nil
}

// GetReactionAnimation 反应动画数据，附带由参与物质与分子结构生成的场景
func GetReactionAnimation(ctx context.Context, id int64) (*ReactionAnimation, error) {
	reaction, err := GetReaction(ctx, id)
	if err != nil {
		return nil, err
	}
	molecules, err := AllMolecules(ctx)
	if err != nil {
		return nil, err
	}
	elements, err := AllElements(ctx)
	if err != nil {
		return nil, err
	}

	return &ReactionAnimation{
		ReactionID:    reaction.ID,
		Name:          reaction.Name,
		Equation:      reaction.Equation,
		EquationHTML:  chem.EquationHTML(reaction.Equation),
		AnimationData: reaction.AnimationData,
		Scene:         scene.ReactionScene(reaction, molecules.GetByFormula, elements.GetBySymbol),
	}, nil
}

// ValidateElements 校验提交的元素组合，返回匹配的反应或建议
func ValidateElements(ctx context.Context, raws []string) (*ValidationResult, error) {
	symbols, invalid := chem.NormalizeSymbols(raws)
	if len(invalid) != 0 {
		return nil, invalidParams("invalid element symbols: %s", strings.Join(invalid, ", "))
	}
	if len(symbols) < MinSelection || len(symbols) > MaxSelection {
		return nil, invalidParams("between %d and %d elements are required", MinSelection, MaxSelection)
	}

	elements, err := AllElements(ctx)
	if err != nil {
		return nil, err
	}
	unknown := []string{}
	for _, s := range symbols {
		if elements.GetBySymbol(s) == nil {
			unknown = append(unknown, s)
		}
	}
	if len(unknown) != 0 {
		return nil, &UnknownElementsError{Symbols: unknown}
	}

	reactions, err := VerifiedReactions(ctx)
	if err != nil {
		return nil, err
	}
	result := MatchReactions(symbols, reactions, elements)
	return &result, nil
}

// NewReactionSummary ...
func NewReactionSummary(r *model.Reaction) ReactionSummary {
	return ReactionSummary{
		ID:                r.ID,
		Name:              r.Name,
		Equation:          r.Equation,
		EquationHTML:      chem.EquationHTML(r.Equation),
		ReactionType:      r.ReactionType,
		ReactionTypeLabel: model.ReactionTypes.Label(r.ReactionType),
		EnergyChange:      r.EnergyChange,
		EnergyChangeLabel: model.EnergyTypes.Label(r.EnergyChange),
		EnthalpyChange:    r.EnthalpyChange,
		DifficultyLevel:   r.DifficultyLevel,
		DifficultyLabel:   model.DifficultyLabels[r.DifficultyLevel],
		IsReversible:      r.IsReversible,
		Elements:          r.ElementSymbols(),
	}
}

// NewReactionDetail ...
func NewReactionDetail(r *model.Reaction) *ReactionDetail {
	return &ReactionDetail{
		Reaction:          *r,
		EquationHTML:      chem.EquationHTML(r.Equation),
		ReactionTypeLabel: model.ReactionTypes.Label(r.ReactionType),
		EnergyChangeLabel: model.EnergyTypes.Label(r.EnergyChange),
		DifficultyLabel:   model.DifficultyLabels[r.DifficultyLevel],
		ReactantElements:  r.ReactantElements(),
		ProductElements:   r.ProductElements(),
	}
}
