// Package atom 提供原子模型数据：电子层分布（静态表）与原子核粒子布局
package atom

import (
	"github.com/pkg/errors"
)

// MaxAtomicNumber 支持的最大原子序数
const MaxAtomicNumber = 118

// ErrUnknownAtomicNumber 原子序数超出范围
var ErrUnknownAtomicNumber = errors.New("unknown atomic number")

// ShellNames 电子层名称
var ShellNames = []string{"K", "L", "M", "N", "O", "P", "Q"}

// Shells 返回基态原子每个电子层的电子数（K 层在前）
func Shells(z int) ([]int, error) {
	if z < 1 || z > MaxAtomicNumber {
		return nil, errors.Wrapf(ErrUnknownAtomicNumber, "z=%d", z)
	}
	// 返回副本，避免调用方修改静态表
	return append([]int(nil), shellTable[z-1]...), nil
}

// Neutrons 根据原子质量估算最常见同位素的中子数
func Neutrons(atomicMass float64, z int) int {
	n := int(atomicMass+0.5) - z
	if n < 0 {
		return 0
	}
	return n
}

// 基态电子层分布，下标为 Z-1
var shellTable = [MaxAtomicNumber][]int{
	{1},                       // 1
	{2},                       // 2
	{2, 1},                    // 3
	{2, 2},                    // 4
	{2, 3},                    // 5
	{2, 4},                    // 6
	{2, 5},                    // 7
	{2, 6},                    // 8
	{2, 7},                    // 9
	{2, 8},                    // 10
	{2, 8, 1},                 // 11
	{2, 8, 2},                 // 12
	{2, 8, 3},                 // 13
	{2, 8, 4},                 // 14
	{2, 8, 5},                 // 15
	{2, 8, 6},                 // 16
	{2, 8, 7},                 // 17
	{2, 8, 8},                 // 18
	{2, 8, 8, 1},              // 19
	{2, 8, 8, 2},              // 20
	{2, 8, 9, 2},              // 21
	{2, 8, 10, 2},             // 22
	{2, 8, 11, 2},             // 23
	{2, 8, 13, 1},             // 24
	{2, 8, 13, 2},             // 25
	{2, 8, 14, 2},             // 26
	{2, 8, 15, 2},             // 27
	{2, 8, 16, 2},             // 28
	{2, 8, 18, 1},             // 29
	{2, 8, 18, 2},             // 30
	{2, 8, 18, 3},             // 31
	{2, 8, 18, 4},             // 32
	{2, 8, 18, 5},             // 33
	{2, 8, 18, 6},             // 34
	{2, 8, 18, 7},             // 35
	{2, 8, 18, 8},             // 36
	{2, 8, 18, 8, 1},          // 37
	{2, 8, 18, 8, 2},          // 38
	{2, 8, 18, 9, 2},          // 39
	{2, 8, 18, 10, 2},         // 40
	{2, 8, 18, 12, 1},         // 41
	{2, 8, 18, 13, 1},         // 42
	{2, 8, 18, 13, 2},         // 43
	{2, 8, 18, 15, 1},         // 44
	{2, 8, 18, 16, 1},         // 45
	{2, 8, 18, 18},            // 46
	{2, 8, 18, 18, 1},         // 47
	{2, 8, 18, 18, 2},         // 48
	{2, 8, 18, 18, 3},         // 49
	{2, 8, 18, 18, 4},         // 50
	{2, 8, 18, 18, 5},         // 51
	{2, 8, 18, 18, 6},         // 52
	{2, 8, 18, 18, 7},         // 53
	{2, 8, 18, 18, 8},         // 54
	{2, 8, 18, 18, 8, 1},      // 55
	{2, 8, 18, 18, 8, 2},      // 56
	{2, 8, 18, 18, 9, 2},      // 57
	{2, 8, 18, 19, 9, 2},      // 58
	{2, 8, 18, 21, 8, 2},      // 59
	{2, 8, 18, 22, 8, 2},      // 60
	{2, 8, 18, 23, 8, 2},      // 61
	{2, 8, 18, 24, 8, 2},      // 62
	{2, 8, 18, 25, 8, 2},      // 63
	{2, 8, 18, 25, 9, 2},      // 64
	{2, 8, 18, 27, 8, 2},      // 65
	{2, 8, 18, 28, 8, 2},      // 66
	{2, 8, 18, 29, 8, 2},      // 67
	{2, 8, 18, 30, 8, 2},      // 68
	{2, 8, 18, 31, 8, 2},      // 69
	{2, 8, 18, 32, 8, 2},      // 70
	{2, 8, 18, 32, 9, 2},      // 71
	{2, 8, 18, 32, 10, 2},     // 72
	{2, 8, 18, 32, 11, 2},     // 73
	{2, 8, 18, 32, 12, 2},     // 74
	{2, 8, 18, 32, 13, 2},     // 75
	{2, 8, 18, 32, 14, 2},     // 76
	{2, 8, 18, 32, 15, 2},     // 77
	{2, 8, 18, 32, 17, 1},     // 78
	{2, 8, 18, 32, 18, 1},     // 79
	{2, 8, 18, 32, 18, 2},     // 80
	{2, 8, 18, 32, 18, 3},     // 81
	{2, 8, 18, 32, 18, 4},     // 82
	{2, 8, 18, 32, 18, 5},     // 83
	{2, 8, 18, 32, 18, 6},     // 84
	{2, 8, 18, 32, 18, 7},     // 85
	{2, 8, 18, 32, 18, 8},     // 86
	{2, 8, 18, 32, 18, 8, 1},  // 87
	{2, 8, 18, 32, 18, 8, 2},  // 88
	{2, 8, 18, 32, 18, 9, 2},  // 89
	{2, 8, 18, 32, 18, 10, 2}, // 90
	{2, 8, 18, 32, 20, 9, 2},  // 91
	{2, 8, 18, 32, 21, 9, 2},  // 92
	{2, 8, 18, 32, 22, 9, 2},  // 93
	{2, 8, 18, 32, 24, 8, 2},  // 94
	{2, 8, 18, 32, 25, 8, 2},  // 95
	{2, 8, 18, 32, 25, 9, 2},  // 96
	{2, 8, 18, 32, 27, 8, 2},  // 97
	{2, 8, 18, 32, 28, 8, 2},  // 98
	{2, 8, 18, 32, 29, 8, 2},  // 99
	{2, 8, 18, 32, 30, 8, 2},  // 100
	{2, 8, 18, 32, 31, 8, 2},  // 101
	{2, 8, 18, 32, 32, 8, 2},  // 102
	{2, 8, 18, 32, 32, 8, 3},  // 103
	{2, 8, 18, 32, 32, 10, 2}, // 104
	{2, 8, 18, 32, 32, 11, 2}, // 105
	{2, 8, 18, 32, 32, 12, 2}, // 106
	{2, 8, 18, 32, 32, 13, 2}, // 107
	{2, 8, 18, 32, 32, 14, 2}, // 108
	{2, 8, 18, 32, 32, 15, 2}, // 109
	{2, 8, 18, 32, 32, 16, 2}, // 110
	{2, 8, 18, 32, 32, 17, 2}, // 111
	{2, 8, 18, 32, 32, 18, 2}, // 112
	{2, 8, 18, 32, 32, 18, 3}, // 113
	{2, 8, 18, 32, 32, 18, 4}, // 114
	{2, 8, 18, 32, 32, 18, 5}, // 115
	{2, 8, 18, 32, 32, 18, 6}, // 116
	{2, 8, 18, 32, 32, 18, 7}, // 117
	{2, 8, 18, 32, 32, 18, 8}, // 118
}
