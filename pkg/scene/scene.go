// Package scene 生成供前端 3D 渲染器使用的声明式场景描述
//
// 后端只负责场景的组合（球体、圆柱、轨道、粒子、分组、标签），不做渲染
package scene

import (
	"math"

	"github.com/narasux/chemreact/pkg/model"
)

// 节点类型
const (
	KindSphere    = "sphere"
	KindCylinder  = "cylinder"
	KindOrbit     = "orbit"
	KindParticles = "particles"
	KindGroup     = "group"
	KindLabel     = "label"
)

// 默认配色
const (
	ColorProton   = "#FF4444"
	ColorNeutron  = "#4488FF"
	ColorElectron = "#FFFF66"
	ColorOrbit    = "#88AACC"
	ColorBond     = "#BBBBBB"
	ColorArrow    = "#FFFFFF"
	ColorLabel    = "#FFFFFF"
)

// Node 场景节点
type Node struct {
	ID       string     `json:"id"`
	Kind     string     `json:"kind"`
	Position model.Vec3 `json:"position"`
	Color    string     `json:"color,omitempty"`
	Radius   float64    `json:"radius,omitempty"`
	// 圆柱终点（圆柱从 Position 延伸到 End）
	End    *model.Vec3 `json:"end,omitempty"`
	Dashed bool        `json:"dashed,omitempty"`
	// 粒子系统中的各粒子位置（相对 Position）
	Points   []model.Vec3 `json:"points,omitempty"`
	Text     string       `json:"text,omitempty"`
	Children []Node       `json:"children,omitempty"`
}

// Camera 相机参数
type Camera struct {
	Position model.Vec3 `json:"position"`
	Target   model.Vec3 `json:"target"`
	Fov      float64    `json:"fov"`
}

// Controls 轨道控制器参数（与渲染器属性同名）
type Controls struct {
	AutoRotate      bool    `json:"autoRotate"`
	AutoRotateSpeed float64 `json:"autoRotateSpeed"`
	EnableZoom      bool    `json:"enableZoom"`
	MinDistance     float64 `json:"minDistance"`
	MaxDistance     float64 `json:"maxDistance"`
}

// Scene 场景
type Scene struct {
	Camera          Camera                `json:"camera"`
	Controls        Controls              `json:"controls"`
	Nodes           []Node                `json:"nodes"`
	AnimationSteps  []model.AnimationStep `json:"animation_steps,omitempty"`
	TotalDurationMs int                   `json:"total_duration_ms,omitempty"`
}

// 根据场景半径生成相机与控制器参数
func newView(extent float64, autoRotate bool) (Camera, Controls) {
	dist := round4(max(extent, 1)*2.5 + 2)
	camera := Camera{
		Position: model.Vec3{0, round4(dist * 0.4), dist},
		Target:   model.Vec3{0, 0, 0},
		Fov:      50,
	}
	controls := Controls{
		AutoRotate:      autoRotate,
		AutoRotateSpeed: 1.0,
		EnableZoom:      true,
		MinDistance:     round4(max(extent, 1)),
		MaxDistance:     round4(dist * 4),
	}
	return camera, controls
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}

func roundVec(v model.Vec3) model.Vec3 {
	return model.Vec3{round4(v[0]), round4(v[1]), round4(v[2])}
}

func norm(v model.Vec3) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

func cross(a, b model.Vec3) model.Vec3 {
	return model.Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}
