package scene

import (
	"fmt"

	"github.com/narasux/chemreact/pkg/atom"
	"github.com/narasux/chemreact/pkg/model"
)

// AtomScene 原子模型：原子核（质子 / 中子粒子）+ 每个电子层一条轨道，电子在轨道上均匀分布
func AtomScene(element *model.Element, shells []int, nucleus atom.Nucleus) Scene {
	protons, neutrons := []model.Vec3{}, []model.Vec3{}
	for _, p := range nucleus.Particles {
		if p.Kind == atom.ParticleProton {
			protons = append(protons, p.Position)
		} else {
			neutrons = append(neutrons, p.Position)
		}
	}

	nucleusNode := Node{
		ID:   "nucleus",
		Kind: KindGroup,
		Children: []Node{
			{ID: "protons", Kind: KindParticles, Color: ColorProton, Radius: atom.NucleonRadius, Points: protons},
			{ID: "neutrons", Kind: KindParticles, Color: ColorNeutron, Radius: atom.NucleonRadius, Points: neutrons},
		},
	}
	nodes := []Node{nucleusNode}

	outer := nucleus.Radius
	for idx, electrons := range shells {
		name := atom.ShellNames[idx]
		radius := atom.ShellRadius(idx, nucleus.Radius)
		outer = radius

		orbit := Node{
			ID:     "shell-" + name,
			Kind:   KindOrbit,
			Color:  ColorOrbit,
			Radius: radius,
			Text:   fmt.Sprintf("%s: %d", name, electrons),
		}
		for eIdx, pos := range atom.ElectronPositions(electrons, radius) {
			orbit.Children = append(orbit.Children, Node{
				ID:       fmt.Sprintf("shell-%s-e%d", name, eIdx),
				Kind:     KindSphere,
				Position: pos,
				Color:    ColorElectron,
				Radius:   0.08,
			})
		}
		nodes = append(nodes, orbit)
	}

	nodes = append(nodes, Node{
		ID:       "label",
		Kind:     KindLabel,
		Position: model.Vec3{0, round4(outer + 0.6), 0},
		Color:    element.DisplayColor(),
		Text:     element.Symbol,
	})

	camera, controls := newView(outer, true)
	return Scene{Camera: camera, Controls: controls, Nodes: nodes}
}
