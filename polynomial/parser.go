// SPDX-License-Identifier: MIT

package polynomial

import (
	"fmt"
	"math"
)

// MaxExponent bounds '^' so a typo cannot request a huge convolution chain.
const MaxExponent = 64

// exponentTol is how far an exponent may sit from an integer and still count as one.
const exponentTol = 1e-9

// precedence of binary operators; '^' binds tightest.
func precedence(op rune) int {
	switch op {
	case '^':
		return 3
	case '*':
		return 2
	case '+', '-':
		return 1
	}

	return 0
}

func rightAssociative(op rune) bool { return op == '^' }

// ToRPN converts infix tokens to postfix with the shunting-yard algorithm.
//
// Brackets must match by type: '(' closes with ')', '[' with ']', '{' with '}'.
// Errors: ErrMismatchedParen, ErrEmptyExpression.
func ToRPN(tokens []Token) ([]Token, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("ToRPN: %w", ErrEmptyExpression)
	}
	out := make([]Token, 0, len(tokens))
	stack := make([]Token, 0, len(tokens)/2+1)

	for _, t := range tokens {
		switch t.Kind {
		case TokenNumber, TokenVariable:
			out = append(out, t)
		case TokenOperator:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind != TokenOperator {
					break
				}
				pt, pc := precedence(top.Op), precedence(t.Op)
				if pt > pc || (pt == pc && !rightAssociative(t.Op)) {
					out = append(out, top)
					stack = stack[:len(stack)-1]
					continue
				}
				break
			}
			stack = append(stack, t)
		case TokenOpen:
			stack = append(stack, t)
		case TokenClose:
			matched := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == TokenOpen {
					if closerOf[top.Op] != t.Op {
						return nil, fmt.Errorf("ToRPN: %q at offset %d closes %q: %w", t.Op, t.Pos, top.Op, ErrMismatchedParen)
					}
					matched = true
					break
				}
				out = append(out, top)
			}
			if !matched {
				return nil, fmt.Errorf("ToRPN: unopened %q at offset %d: %w", t.Op, t.Pos, ErrMismatchedParen)
			}
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == TokenOpen {
			return nil, fmt.Errorf("ToRPN: unclosed %q at offset %d: %w", top.Op, top.Pos, ErrMismatchedParen)
		}
		out = append(out, top)
	}

	return out, nil
}

// EvalRPN evaluates a postfix token stream over Poly.
//
// Numbers become constants, x becomes [0 1]; + - * map to Poly arithmetic.
// '^' requires its right operand to be a constant non-negative integer no
// larger than MaxExponent.
// Errors: ErrMalformedExpression, ErrMalformedExponent.
func EvalRPN(rpn []Token) (Poly, error) {
	stack := make([]Poly, 0, len(rpn))
	for _, t := range rpn {
		switch t.Kind {
		case TokenNumber:
			stack = append(stack, Constant(t.Value).Trim())
		case TokenVariable:
			stack = append(stack, Variable())
		case TokenOperator:
			if len(stack) < 2 {
				return nil, fmt.Errorf("EvalRPN: operator %q at offset %d lacks operands: %w", t.Op, t.Pos, ErrMalformedExpression)
			}
			a, b := stack[len(stack)-2], stack[len(stack)-1]
			stack = stack[:len(stack)-2]
			r, err := apply(t, a, b)
			if err != nil {
				return nil, err
			}
			stack = append(stack, r)
		default:
			return nil, fmt.Errorf("EvalRPN: %s %q: %w", t.Kind, t.Op, ErrUnexpectedToken)
		}
	}
	if len(stack) != 1 {
		return nil, fmt.Errorf("EvalRPN: %d operands left: %w", len(stack), ErrMalformedExpression)
	}

	return stack[0], nil
}

func apply(t Token, a, b Poly) (Poly, error) {
	switch t.Op {
	case '+':
		return a.Add(b), nil
	case '-':
		return a.Sub(b), nil
	case '*':
		return a.Mul(b), nil
	case '^':
		n, err := integerExponent(b)
		if err != nil {
			return nil, fmt.Errorf("EvalRPN: '^' at offset %d: %w", t.Pos, err)
		}
		return a.Pow(n), nil
	}

	return nil, fmt.Errorf("EvalRPN: %q: %w", t.Op, ErrUnexpectedToken)
}

// integerExponent extracts n from a constant polynomial n ∈ {0..MaxExponent}.
func integerExponent(p Poly) (int, error) {
	if !p.IsConstant() {
		return 0, fmt.Errorf("exponent depends on x: %w", ErrMalformedExponent)
	}
	v := p.ConstantTerm()
	r := math.Round(v)
	if math.Abs(v-r) > exponentTol || r < 0 || r > MaxExponent {
		return 0, fmt.Errorf("exponent %g: %w", v, ErrMalformedExponent)
	}

	return int(r), nil
}

// Parse tokenizes, converts and evaluates expr into an ascending Poly.
func Parse(expr string) (Poly, error) {
	tokens, err := Tokenize(expr)
	if err != nil {
		return nil, err
	}
	rpn, err := ToRPN(tokens)
	if err != nil {
		return nil, err
	}

	return EvalRPN(rpn)
}
