package tools

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// calculatorTool evaluates arithmetic expressions so agents do not have to
// do math inside a completion.
type calculatorTool struct{}

// NewCalculatorTool returns the calculator tool.
func NewCalculatorTool() Tool {
	return calculatorTool{}
}

func (calculatorTool) Name() string { return "calculator" }

func (calculatorTool) Description() string {
	return "Evaluate an arithmetic expression. Supports + - * / % ^, " +
		"parentheses, and the functions sqrt, abs, log, log10, exp, " +
		"sin, cos, round, floor, ceil."
}

func (calculatorTool) InputSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []any{"expression"},
		"properties": map[string]any{
			"expression": map[string]any{"type": "string"},
		},
	}
}

func (calculatorTool) Execute(_ context.Context, _ string, args map[string]any) (any, error) {
	expr, err := stringArg(args, "expression")
	if err != nil {
		return nil, err
	}
	value, err := evalExpression(expr)
	if err != nil {
		return nil, err
	}
	return map[string]any{"expression": expr, "result": value}, nil
}

// evalExpression parses and evaluates an arithmetic expression with a small
// recursive descent parser. Precedence, lowest to highest: additive,
// multiplicative, unary minus, exponentiation.
func evalExpression(expr string) (float64, error) {
	p := &exprParser{input: expr}
	value, err := p.parseAdditive()
	if err != nil {
		return 0, err
	}
	p.skipSpaces()
	if p.pos < len(p.input) {
		return 0, fmt.Errorf("%w: unexpected %q at position %d", ErrInvalidArguments, p.input[p.pos], p.pos)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: expression does not evaluate to a finite number", ErrInvalidArguments)
	}
	return value, nil
}

type exprParser struct {
	input string
	pos   int
}

func (p *exprParser) skipSpaces() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}

func (p *exprParser) peek() byte {
	p.skipSpaces()
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *exprParser) parseAdditive() (float64, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case '+':
			p.pos++
			right, err := p.parseMultiplicative()
			if err != nil {
				return 0, err
			}
			left += right
		case '-':
			p.pos++
			right, err := p.parseMultiplicative()
			if err != nil {
				return 0, err
			}
			left -= right
		default:
			return left, nil
		}
	}
}

func (p *exprParser) parseMultiplicative() (float64, error) {
	left, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case '*':
			p.pos++
			right, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			left *= right
		case '/':
			p.pos++
			right, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			if right == 0 {
				return 0, fmt.Errorf("%w: division by zero", ErrInvalidArguments)
			}
			left /= right
		case '%':
			p.pos++
			right, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			if right == 0 {
				return 0, fmt.Errorf("%w: division by zero", ErrInvalidArguments)
			}
			left = math.Mod(left, right)
		default:
			return left, nil
		}
	}
}

func (p *exprParser) parseUnary() (float64, error) {
	if p.peek() == '-' {
		p.pos++
		value, err := p.parseUnary()
		return -value, err
	}
	return p.parsePower()
}

func (p *exprParser) parsePower() (float64, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return 0, err
	}
	if p.peek() == '^' {
		p.pos++
		// Right associative.
		exp, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		return math.Pow(base, exp), nil
	}
	return base, nil
}

func (p *exprParser) parsePrimary() (float64, error) {
	ch := p.peek()
	switch {
	case ch == '(':
		p.pos++
		value, err := p.parseAdditive()
		if err != nil {
			return 0, err
		}
		if p.peek() != ')' {
			return 0, fmt.Errorf("%w: missing closing parenthesis", ErrInvalidArguments)
		}
		p.pos++
		return value, nil
	case ch >= '0' && ch <= '9' || ch == '.':
		return p.parseNumber()
	case unicode.IsLetter(rune(ch)):
		return p.parseFunction()
	case ch == 0:
		return 0, fmt.Errorf("%w: unexpected end of expression", ErrInvalidArguments)
	default:
		return 0, fmt.Errorf("%w: unexpected %q at position %d", ErrInvalidArguments, ch, p.pos)
	}
}

func (p *exprParser) parseNumber() (float64, error) {
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if (c >= '0' && c <= '9') || c == '.' || c == 'e' || c == 'E' ||
			((c == '+' || c == '-') && p.pos > start && (p.input[p.pos-1] == 'e' || p.input[p.pos-1] == 'E')) {
			p.pos++
			continue
		}
		break
	}
	value, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid number %q", ErrInvalidArguments, p.input[start:p.pos])
	}
	return value, nil
}

var calcFunctions = map[string]func(float64) float64{
	"sqrt":  math.Sqrt,
	"abs":   math.Abs,
	"log":   math.Log,
	"log10": math.Log10,
	"exp":   math.Exp,
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"round": math.Round,
	"floor": math.Floor,
	"ceil":  math.Ceil,
}

func (p *exprParser) parseFunction() (float64, error) {
	start := p.pos
	for p.pos < len(p.input) && (unicode.IsLetter(rune(p.input[p.pos])) || unicode.IsDigit(rune(p.input[p.pos]))) {
		p.pos++
	}
	name := strings.ToLower(p.input[start:p.pos])

	if name == "pi" {
		return math.Pi, nil
	}
	if name == "e" {
		return math.E, nil
	}

	fn, ok := calcFunctions[name]
	if !ok {
		return 0, fmt.Errorf("%w: unknown function %q", ErrInvalidArguments, name)
	}
	if p.peek() != '(' {
		return 0, fmt.Errorf("%w: expected ( after %s", ErrInvalidArguments, name)
	}
	p.pos++
	arg, err := p.parseAdditive()
	if err != nil {
		return 0, err
	}
	if p.peek() != ')' {
		return 0, fmt.Errorf("%w: missing closing parenthesis", ErrInvalidArguments)
	}
	p.pos++
	return fn(arg), nil
}
