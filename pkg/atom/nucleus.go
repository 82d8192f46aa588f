package atom

import (
	"math"

	"github.com/narasux/chemreact/pkg/model"
)

const (
	// MaxRenderedNucleons 最多渲染的核子数，超出时按比例缩减
	MaxRenderedNucleons = 250
	// NucleonRadius 单个核子的渲染半径
	NucleonRadius = 0.12
	// 原子核半径系数：R = k * A^(1/3)
	nucleusRadiusFactor = 0.18
)

// 黄金角（弧度）
var goldenAngle = math.Pi * (3 - math.Sqrt(5))

const (
	ParticleProton  = "proton"
	ParticleNeutron = "neutron"
)

// Particle 原子核中的单个粒子
type Particle struct {
	Kind     string     `json:"kind"`
	Position model.Vec3 `json:"position"`
}

// Nucleus 原子核布局
type Nucleus struct {
	Protons   int        `json:"protons"`
	Neutrons  int        `json:"neutrons"`
	Rendered  int        `json:"rendered"`
	Scaled    bool       `json:"scaled"`
	Radius    float64    `json:"radius"`
	Particles []Particle `json:"particles"`
}

// NucleusLayout 使用黄金角（Fibonacci 球面）分布计算原子核中质子 / 中子的位置，
// 结果是确定性的：同样的输入总是得到同样的布局
func NucleusLayout(protons, neutrons int) Nucleus {
	protons = max(protons, 0)
	neutrons = max(neutrons, 0)
	nucleus := Nucleus{Protons: protons, Neutrons: neutrons}

	renderedProtons, renderedNeutrons := protons, neutrons
	if total := protons + neutrons; total > MaxRenderedNucleons {
		ratio := float64(MaxRenderedNucleons) / float64(total)
		renderedProtons = max(int(math.Round(float64(protons)*ratio)), min(protons, 1))
		renderedNeutrons = MaxRenderedNucleons - renderedProtons
		nucleus.Scaled = true
	}

	count := renderedProtons + renderedNeutrons
	nucleus.Rendered = count
	if count == 0 {
		return nucleus
	}
	radius := nucleusRadiusFactor * math.Cbrt(float64(count))
	nucleus.Radius = round4(radius)

	nucleus.Particles = make([]Particle, 0, count)
	for i := 0; i < count; i++ {
		kind := ParticleNeutron
		// 按 Bresenham 方式交错分配质子，保证质子总数精确
		if (i+1)*renderedProtons/count > i*renderedProtons/count {
			kind = ParticleProton
		}
		nucleus.Particles = append(nucleus.Particles, Particle{
			Kind:     kind,
			Position: fibonacciPoint(i, count, radius),
		})
	}
	return nucleus
}

// 第 i 个点：方向取 Fibonacci 球面，距离按体积均匀分布
func fibonacciPoint(i, count int, radius float64) model.Vec3 {
	if count == 1 {
		return model.Vec3{0, 0, 0}
	}
	y := 1 - 2*(float64(i)+0.5)/float64(count)
	r := math.Sqrt(1 - y*y)
	theta := goldenAngle * float64(i)
	dist := radius * math.Cbrt((float64(i)+0.5)/float64(count))
	return model.Vec3{
		round4(math.Cos(theta) * r * dist),
		round4(y * dist),
		round4(math.Sin(theta) * r * dist),
	}
}

// ElectronPositions 将 n 个电子均匀分布在半径为 radius 的 XZ 平面圆环上
func ElectronPositions(n int, radius float64) []model.Vec3 {
	positions := make([]model.Vec3, 0, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		positions = append(positions, model.Vec3{
			round4(math.Cos(angle) * radius),
			0,
			round4(math.Sin(angle) * radius),
		})
	}
	return positions
}

// ShellRadius 第 idx 个电子层（从 0 开始）的轨道半径
func ShellRadius(idx int, nucleusRadius float64) float64 {
	return round4(nucleusRadius + 0.8 + 0.6*float64(idx))
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
