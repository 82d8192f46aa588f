package scene

import (
	"fmt"
	"strings"

	"github.com/narasux/chemreact/pkg/chem"
	"github.com/narasux/chemreact/pkg/model"
)

// MoleculeLookup 根据化学式查询分子结构
type MoleculeLookup func(formula string) *model.Molecule

const (
	// 同一侧相邻物质的间距
	participantSpacing = 3.0
	// 系数对应的副本最多绘制数量
	maxCopies = 4
	// 副本之间的纵向间距
	copySpacing = 1.8
	// 没有分子结构时，原子排成一行的间距
	atomRowSpacing = 0.7
	// 默认动画总时长
	DefaultTotalDurationMs = 5000
)

// ReactionScene 反应场景：反应物在左、生成物在右，中间为箭头；同时给出动画步骤
func ReactionScene(reaction *model.Reaction, molecules MoleculeLookup, elements ElementLookup) Scene {
	reactants := reaction.ParticipantsByRole(model.RoleReactant)
	products := reaction.ParticipantsByRole(model.RoleProduct)

	nodes := []Node{}
	extent := 2.0
	for idx, p := range reactants {
		x := -participantSpacing * float64(len(reactants)-idx)
		nodes = append(nodes, participantNode(fmt.Sprintf("reactant-%d", idx), p, x, molecules, elements))
		if idx > 0 {
			nodes = append(nodes, plusNode(fmt.Sprintf("reactant-plus-%d", idx), x-participantSpacing/2))
		}
		extent = max(extent, -x+1.5)
	}

	arrowEnd := model.Vec3{1, 0, 0}
	arrowText := "→"
	if reaction.IsReversible {
		arrowText = "⇌"
	}
	nodes = append(nodes,
		Node{ID: "arrow", Kind: KindCylinder, Position: model.Vec3{-1, 0, 0}, End: &arrowEnd, Color: ColorArrow, Radius: 0.05},
		Node{ID: "arrow-label", Kind: KindLabel, Position: model.Vec3{0, 0.4, 0}, Color: ColorLabel, Text: arrowText},
	)
	if reaction.Catalyst != "" {
		nodes = append(nodes, Node{
			ID: "catalyst", Kind: KindLabel, Position: model.Vec3{0, 0.9, 0}, Color: ColorLabel, Text: reaction.Catalyst,
		})
	}

	for idx, p := range products {
		x := participantSpacing * float64(idx+1)
		nodes = append(nodes, participantNode(fmt.Sprintf("product-%d", idx), p, x, molecules, elements))
		if idx > 0 {
			nodes = append(nodes, plusNode(fmt.Sprintf("product-plus-%d", idx), x-participantSpacing/2))
		}
		extent = max(extent, x+1.5)
	}

	steps, total := AnimationSteps(reaction.AnimationData)
	camera, controls := newView(extent, false)
	return Scene{
		Camera:          camera,
		Controls:        controls,
		Nodes:           nodes,
		AnimationSteps:  steps,
		TotalDurationMs: total,
	}
}

// AnimationSteps 返回动画步骤与总时长；未配置步骤时生成默认的三步（接近、重排、生成）
func AnimationSteps(data model.AnimationData) ([]model.AnimationStep, int) {
	if len(data.Steps) != 0 {
		total := data.TotalDurationMs
		if total <= 0 {
			for _, s := range data.Steps {
				total += s.DurationMs
			}
		}
		return data.Steps, total
	}

	total := data.TotalDurationMs
	if total <= 0 {
		total = DefaultTotalDurationMs
	}
	approach := total * 3 / 10
	form := total * 3 / 10
	return []model.AnimationStep{
		{Step: 1, DurationMs: approach, Description: "Los reactivos se acercan"},
		{Step: 2, DurationMs: total - approach - form, Description: "Ruptura y reorganización de enlaces"},
		{Step: 3, DurationMs: form, Description: "Formación de los productos"},
	}, total
}

// 单个参与物质：按系数绘制多个副本，纵向排列
func participantNode(id string, p model.ReactionParticipant, x float64, molecules MoleculeLookup, elements ElementLookup) Node {
	structure := participantStructure(p, molecules)
	copies := min(max(p.Coefficient, 1), maxCopies)

	node := Node{ID: id, Kind: KindGroup, Position: model.Vec3{x, 0, 0}, Text: formulaLabel(p)}
	top := copySpacing * float64(copies-1) / 2
	for c := 0; c < copies; c++ {
		offset := model.Vec3{0, top - copySpacing*float64(c), 0}
		node.Children = append(node.Children, moleculeGroup(fmt.Sprintf("%s-copy-%d", id, c), structure, offset, elements))
	}
	node.Children = append(node.Children, Node{
		ID:       id + "-label",
		Kind:     KindLabel,
		Position: model.Vec3{0, round4(-top - 1.2), 0},
		Color:    ColorLabel,
		Text:     formulaLabel(p),
	})
	return node
}

// 优先使用分子库中的结构，否则将化学式中的原子排成一行
func participantStructure(p model.ReactionParticipant, molecules MoleculeLookup) model.Structure3D {
	if molecules != nil {
		if m := molecules(p.Formula); m != nil && len(m.Structure.Atoms) != 0 {
			return m.Structure
		}
	}

	symbols := []string{}
	if comp, err := chem.ParseFormula(p.Formula); err == nil {
		for _, ec := range comp {
			for i := 0; i < ec.Count; i++ {
				symbols = append(symbols, ec.Symbol)
			}
		}
	} else {
		symbols = p.Elements
	}

	structure := model.Structure3D{Geometry: "row"}
	start := -atomRowSpacing * float64(len(symbols)-1) / 2
	for idx, symbol := range symbols {
		structure.Atoms = append(structure.Atoms, model.AtomPosition{
			Element:  symbol,
			Position: model.Vec3{round4(start + atomRowSpacing*float64(idx)), 0, 0},
		})
	}
	return structure
}

func formulaLabel(p model.ReactionParticipant) string {
	label := chem.SubscriptFormula(p.Formula)
	if p.Coefficient > 1 {
		label = fmt.Sprintf("%d%s", p.Coefficient, label)
	}
	return strings.TrimSpace(label)
}

func plusNode(id string, x float64) Node {
	return Node{ID: id, Kind: KindLabel, Position: model.Vec3{round4(x), 0, 0}, Color: ColorLabel, Text: "+"}
}
