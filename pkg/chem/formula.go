package chem

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// ErrInvalidFormula 化学式不合法
var ErrInvalidFormula = errors.New("invalid formula")

// ElementCount 化学式中某元素的原子数
type ElementCount struct {
	Symbol string `json:"symbol"`
	Count  int    `json:"count"`
}

// Composition 化学式组成，按元素首次出现顺序排列
type Composition []ElementCount

// Symbols 组成中的元素符号
func (c Composition) Symbols() []string {
	symbols := make([]string, 0, len(c))
	for _, ec := range c {
		symbols = append(symbols, ec.Symbol)
	}
	return symbols
}

// Count 指定元素的原子数
func (c Composition) Count(symbol string) int {
	for _, ec := range c {
		if ec.Symbol == symbol {
			return ec.Count
		}
	}
	return 0
}

// TotalAtoms 原子总数
func (c Composition) TotalAtoms() int {
	total := 0
	for _, ec := range c {
		total += ec.Count
	}
	return total
}

func (c Composition) add(symbol string, count int) Composition {
	for i := range c {
		if c[i].Symbol == symbol {
			c[i].Count += count
			return c
		}
	}
	return append(c, ElementCount{Symbol: symbol, Count: count})
}

func (c Composition) merge(other Composition, factor int) Composition {
	for _, ec := range other {
		c = c.add(ec.Symbol, ec.Count*factor)
	}
	return c
}

// 化学式解析器，支持括号嵌套、结晶水（· 或 .）以及 Unicode 下标数字
type formulaParser struct {
	runes []rune
	pos   int
}

// ParseFormula 解析化学式，如 "Ca(OH)2"、"CuSO4·5H2O"、"H₂O"
func ParseFormula(formula string) (Composition, error) {
	p := &formulaParser{runes: []rune(strings.TrimSpace(formula))}
	if len(p.runes) == 0 {
		return nil, errors.Wrap(ErrInvalidFormula, "empty formula")
	}

	var comp Composition
	for {
		factor := 1
		// 结晶水等部分允许前置系数
		if len(comp) > 0 {
			factor = p.readCount(1)
		}
		part, err := p.parseGroup(0)
		if err != nil {
			return nil, errors.Wrapf(err, "parse %q", formula)
		}
		if len(part) == 0 {
			return nil, errors.Wrapf(ErrInvalidFormula, "parse %q: empty part at %d", formula, p.pos)
		}
		comp = comp.merge(part, factor)

		if p.eof() {
			return comp, nil
		}
		if !isHydrateDot(p.peek()) {
			return nil, errors.Wrapf(ErrInvalidFormula, "parse %q: unexpected %q at %d", formula, p.peek(), p.pos)
		}
		p.pos++
	}
}

func (p *formulaParser) parseGroup(depth int) (Composition, error) {
	var comp Composition
	for !p.eof() {
		r := p.peek()
		switch {
		case r == '(' || r == '[':
			p.pos++
			inner, err := p.parseGroup(depth + 1)
			if err != nil {
				return nil, err
			}
			if p.eof() || !isClosing(r, p.peek()) {
				return nil, errors.Wrapf(ErrInvalidFormula, "unbalanced %q", r)
			}
			p.pos++
			comp = comp.merge(inner, p.readCount(1))
		case r == ')' || r == ']':
			if depth == 0 {
				return nil, errors.Wrapf(ErrInvalidFormula, "unexpected %q", r)
			}
			return comp, nil
		case unicode.IsUpper(r) && r <= unicode.MaxASCII:
			symbol := p.readSymbol()
			comp = comp.add(symbol, p.readCount(1))
		case isHydrateDot(r):
			if depth > 0 {
				return nil, errors.Wrapf(ErrInvalidFormula, "unexpected %q inside group", r)
			}
			return comp, nil
		default:
			return nil, errors.Wrapf(ErrInvalidFormula, "unexpected %q at %d", r, p.pos)
		}
	}
	return comp, nil
}

func (p *formulaParser) readSymbol() string {
	start := p.pos
	p.pos++
	for !p.eof() && unicode.IsLower(p.peek()) && p.peek() <= unicode.MaxASCII && p.pos-start < MaxSymbolLength {
		p.pos++
	}
	return string(p.runes[start:p.pos])
}

// 读取数字（普通或下标），没有数字时返回默认值
func (p *formulaParser) readCount(defaultValue int) int {
	count, found := 0, false
	for !p.eof() {
		digit, ok := digitValue(p.peek())
		if !ok {
			break
		}
		count = count*10 + digit
		found = true
		p.pos++
	}
	if !found || count == 0 {
		return defaultValue
	}
	return count
}

func (p *formulaParser) peek() rune {
	return p.runes[p.pos]
}

func (p *formulaParser) eof() bool {
	return p.pos >= len(p.runes)
}

func isClosing(open, r rune) bool {
	return (open == '(' && r == ')') || (open == '[' && r == ']')
}

func isHydrateDot(r rune) bool {
	return r == '·' || r == '.' || r == '•' || r == '*'
}

// digitValue 支持 ASCII 数字与 Unicode 下标数字（₀-₉）
func digitValue(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= '₀' && r <= '₉':
		return int(r - '₀'), true
	}
	return 0, false
}

// MolarMass 计算摩尔质量（g/mol），massOf 用于查询元素原子量
func MolarMass(comp Composition, massOf func(symbol string) (float64, bool)) (float64, error) {
	total := 0.0
	for _, ec := range comp {
		mass, ok := massOf(ec.Symbol)
		if !ok {
			return 0, errors.Errorf("unknown element %s", ec.Symbol)
		}
		total += mass * float64(ec.Count)
	}
	return total, nil
}
