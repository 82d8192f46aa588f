package scene

import (
	"fmt"

	"github.com/narasux/chemreact/pkg/model"
)

// ElementLookup 根据符号查询元素（颜色、半径）
type ElementLookup func(symbol string) *model.Element

const (
	// 共价半径（pm）到场景单位的换算系数
	covalentRadiusScale = 0.005
	defaultAtomRadius   = 0.35
	minAtomRadius       = 0.2
	bondRadius          = 0.06
	multiBondRadius     = 0.045
	multiBondSpacing    = 0.12
)

// MoleculeScene 分子模型：每个原子一个球体，每个化学键一个圆柱；
// 双键 / 三键使用平行偏移的多根圆柱，离子键使用虚线
func MoleculeScene(molecule *model.Molecule, lookup ElementLookup) Scene {
	group := moleculeGroup("molecule", molecule.Structure, model.Vec3{}, lookup)
	camera, controls := newView(extentOf(molecule.Structure.Atoms), true)
	return Scene{Camera: camera, Controls: controls, Nodes: []Node{group}}
}

// 生成分子节点分组，offset 为分组整体位置
func moleculeGroup(id string, structure model.Structure3D, offset model.Vec3, lookup ElementLookup) Node {
	group := Node{ID: id, Kind: KindGroup, Position: roundVec(offset)}

	for idx, a := range structure.Atoms {
		color, radius := atomAppearance(a.Element, lookup)
		group.Children = append(group.Children, Node{
			ID:       fmt.Sprintf("%s-atom-%d", id, idx),
			Kind:     KindSphere,
			Position: roundVec(a.Position),
			Color:    color,
			Radius:   radius,
			Text:     a.Element,
		})
	}

	for idx, bond := range structure.Bonds {
		if bond.From < 0 || bond.From >= len(structure.Atoms) || bond.To < 0 || bond.To >= len(structure.Atoms) {
			continue
		}
		from, to := structure.Atoms[bond.From].Position, structure.Atoms[bond.To].Position
		for cIdx, offset := range bondOffsets(from, to, bond.Order) {
			start, end := roundVec(from.Add(offset)), roundVec(to.Add(offset))
			radius := bondRadius
			if bond.Order > 1 {
				radius = multiBondRadius
			}
			group.Children = append(group.Children, Node{
				ID:       fmt.Sprintf("%s-bond-%d-%d", id, idx, cIdx),
				Kind:     KindCylinder,
				Position: start,
				End:      &end,
				Color:    ColorBond,
				Radius:   radius,
				Dashed:   bond.Type == model.BondIonic,
			})
		}
	}
	return group
}

// 原子的颜色与渲染半径
func atomAppearance(symbol string, lookup ElementLookup) (string, float64) {
	var element *model.Element
	if lookup != nil {
		element = lookup(symbol)
	}
	if element == nil {
		return model.DefaultColor, defaultAtomRadius
	}
	radius := defaultAtomRadius
	if element.CovalentRadius != nil {
		radius = max(round4(*element.CovalentRadius*covalentRadiusScale), minAtomRadius)
	}
	return element.DisplayColor(), radius
}

// 多重键中每根圆柱相对键轴的偏移
func bondOffsets(from, to model.Vec3, order int) []model.Vec3 {
	if order <= 1 {
		return []model.Vec3{{}}
	}
	dir := to.Sub(from)
	up := model.Vec3{0, 1, 0}
	perp := cross(dir, up)
	// 键轴与 y 轴平行时改用 x 轴
	if norm(perp) < 1e-9 {
		perp = cross(dir, model.Vec3{1, 0, 0})
	}
	if n := norm(perp); n > 0 {
		perp = perp.Scale(1 / n)
	}

	if order == 2 {
		return []model.Vec3{perp.Scale(-multiBondSpacing / 2), perp.Scale(multiBondSpacing / 2)}
	}
	return []model.Vec3{perp.Scale(-multiBondSpacing), {}, perp.Scale(multiBondSpacing)}
}

// 原子坐标到原点的最大距离
func extentOf(atoms []model.AtomPosition) float64 {
	extent := 0.0
	for _, a := range atoms {
		extent = max(extent, norm(a.Position))
	}
	return extent
}
