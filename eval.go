package smartledger

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// This file implements the arithmetic evaluator behind the keypad. The
// grammar is the four binary operators over decimal literals with the usual
// precedence, plus unary sign:
//
//	expr    = term { ("+"|"-") term }
//	term    = factor { ("*"|"/") factor }
//	factor  = ["+"|"-"] number
//
// Arithmetic is exact decimal. Any malformed expression or division by zero
// evaluates to zero: the keypad never surfaces an error, a bad expression is
// simply worth nothing.

var (
	errBadExpression  = errors.New("malformed expression")
	errDivisionByZero = errors.New("division by zero")
)

// Evaluate computes an arithmetic expression over major currency units and
// returns the result rounded to minor units. Characters outside digits,
// operators and the decimal point are dropped before evaluation.
func Evaluate(expr string) int64 {
	v, err := evaluate(sanitize(expr))
	if err != nil {
		return 0
	}
	// Round half away from zero to the minor unit.
	return v.Shift(2).Round(0).IntPart()
}

// sanitize keeps only the characters the grammar knows about.
func sanitize(expr string) string {
	var b strings.Builder
	for _, r := range expr {
		switch {
		case r >= '0' && r <= '9', r == '+', r == '-', r == '*', r == '/', r == '.':
			b.WriteRune(r)
		}
	}
	return b.String()
}

type token struct {
	op  byte            // one of + - * /, or 0 for a number
	num decimal.Decimal // valid when op == 0
}

func tokenize(expr string) ([]token, error) {
	var toks []token
	for i := 0; i < len(expr); {
		c := expr[i]
		switch c {
		case '+', '-', '*', '/':
			toks = append(toks, token{op: c})
			i++
		default:
			j := i
			for j < len(expr) && (expr[j] == '.' || (expr[j] >= '0' && expr[j] <= '9')) {
				j++
			}
			d, err := decimal.NewFromString(expr[i:j])
			if err != nil {
				return nil, errBadExpression
			}
			toks = append(toks, token{num: d})
			i = j
		}
	}
	return toks, nil
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.toks) {
		return token{}, false
	}
	return p.toks[p.pos], true
}

func precedence(op byte) int {
	switch op {
	case '+', '-':
		return 1
	case '*', '/':
		return 2
	}
	return 0
}

// parse is a precedence climbing parser over the token stream.
func (p *parser) parse(minPrec int) (decimal.Decimal, error) {
	left, err := p.factor()
	if err != nil {
		return decimal.Zero, err
	}
	for {
		t, ok := p.peek()
		if !ok || t.op == 0 {
			break
		}
		prec := precedence(t.op)
		if prec < minPrec {
			break
		}
		p.pos++
		// Left associative: the right side binds one level tighter.
		right, err := p.parse(prec + 1)
		if err != nil {
			return decimal.Zero, err
		}
		switch t.op {
		case '+':
			left = left.Add(right)
		case '-':
			left = left.Sub(right)
		case '*':
			left = left.Mul(right)
		case '/':
			if right.IsZero() {
				return decimal.Zero, errDivisionByZero
			}
			left = left.Div(right)
		}
	}
	return left, nil
}

// factor parses an optionally signed number.
func (p *parser) factor() (decimal.Decimal, error) {
	t, ok := p.peek()
	if !ok {
		return decimal.Zero, errBadExpression
	}
	if t.op == '+' || t.op == '-' {
		p.pos++
		v, err := p.factor()
		if err != nil {
			return decimal.Zero, err
		}
		if t.op == '-' {
			v = v.Neg()
		}
		return v, nil
	}
	if t.op != 0 {
		return decimal.Zero, errBadExpression
	}
	p.pos++
	return t.num, nil
}

func evaluate(expr string) (decimal.Decimal, error) {
	if expr == "" {
		return decimal.Zero, nil
	}
	toks, err := tokenize(expr)
	if err != nil {
		return decimal.Zero, err
	}
	p := parser{toks: toks}
	v, err := p.parse(1)
	if err != nil {
		return decimal.Zero, err
	}
	if p.pos != len(p.toks) {
		return decimal.Zero, errBadExpression
	}
	return v, nil
}
