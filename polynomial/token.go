// SPDX-License-Identifier: MIT

package polynomial

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// TokenKind classifies a lexical token.
type TokenKind int

const (
	TokenNumber TokenKind = iota
	TokenVariable
	TokenOperator
	TokenOpen
	TokenClose
)

// String names the kind for error messages.
func (k TokenKind) String() string {
	switch k {
	case TokenNumber:
		return "number"
	case TokenVariable:
		return "variable"
	case TokenOperator:
		return "operator"
	case TokenOpen:
		return "open bracket"
	case TokenClose:
		return "close bracket"
	default:
		return "unknown"
	}
}

// Token is one lexical unit. Op holds the operator or bracket rune;
// Value holds the number for TokenNumber. Pos is the byte offset in the input,
// or -1 for tokens synthesized by the tokenizer.
type Token struct {
	Kind  TokenKind
	Op    rune
	Value float64
	Pos   int
}

// String renders the token as it would appear in an expression.
func (t Token) String() string {
	switch t.Kind {
	case TokenNumber:
		return strconv.FormatFloat(t.Value, 'f', -1, 64)
	case TokenVariable:
		return "x"
	default:
		return string(t.Op)
	}
}

// closerOf maps each opening bracket to its closing partner.
var closerOf = map[rune]rune{'(': ')', '[': ']', '{': '}'}

// normalizeRune folds typographic aliases onto the ASCII grammar.
func normalizeRune(r rune) rune {
	switch r {
	case '·', '×', '⋅':
		return '*'
	case '−', '–':
		return '-'
	case 'λ', 'X':
		return 'x'
	}

	return r
}

// Tokenize scans expr into tokens.
//
// Implementation:
//   - Stage 1: scan numbers (digits with at most one '.'), the variable x,
//     operators + - * ^ and the brackets ( ) [ ] { }. Whitespace is skipped.
//   - Stage 2: insert an explicit '*' between a number, variable or closing
//     bracket and a following number, variable or opening bracket.
//   - Stage 3: a '-' in unary position (start, after an operator, after an
//     opening bracket) becomes the pair (-1) '*'; a unary '+' is dropped.
//
// Bracket balance is checked by the parser, not here.
// Errors: ErrEmptyExpression, ErrUnexpectedToken.
func Tokenize(expr string) ([]Token, error) {
	raw := make([]Token, 0, len(expr))
	var (
		pos int
		r   rune
		w   int
	)
	for pos < len(expr) {
		r, w = utf8.DecodeRuneInString(expr[pos:])
		r = normalizeRune(r)
		switch {
		case unicode.IsSpace(r):
			pos += w
		case r == '.' || (r >= '0' && r <= '9'):
			end := scanNumber(expr, pos)
			lit := expr[pos:end]
			v, err := strconv.ParseFloat(lit, 64)
			if err != nil {
				return nil, fmt.Errorf("Tokenize: number %q at offset %d: %w", lit, pos, ErrUnexpectedToken)
			}
			raw = append(raw, Token{Kind: TokenNumber, Value: v, Pos: pos})
			pos = end
		case r == 'x':
			raw = append(raw, Token{Kind: TokenVariable, Op: 'x', Pos: pos})
			pos += w
		case r == '+' || r == '-' || r == '*' || r == '^':
			raw = append(raw, Token{Kind: TokenOperator, Op: r, Pos: pos})
			pos += w
		case r == '(' || r == '[' || r == '{':
			raw = append(raw, Token{Kind: TokenOpen, Op: r, Pos: pos})
			pos += w
		case r == ')' || r == ']' || r == '}':
			raw = append(raw, Token{Kind: TokenClose, Op: r, Pos: pos})
			pos += w
		default:
			return nil, fmt.Errorf("Tokenize: %q at offset %d: %w", r, pos, ErrUnexpectedToken)
		}
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("Tokenize: %w", ErrEmptyExpression)
	}

	out := make([]Token, 0, len(raw)*2)
	var (
		prev    Token
		hasPrev bool
	)
	for _, cur := range raw {
		if hasPrev && endsOperand(prev) && startsOperand(cur) {
			out = append(out, Token{Kind: TokenOperator, Op: '*', Pos: -1})
		}
		if cur.Kind == TokenOperator && (cur.Op == '-' || cur.Op == '+') && unaryPosition(prev, hasPrev) {
			if cur.Op == '-' {
				out = append(out,
					Token{Kind: TokenNumber, Value: -1, Pos: cur.Pos},
					Token{Kind: TokenOperator, Op: '*', Pos: -1})
				prev, hasPrev = out[len(out)-1], true
			}
			continue
		}
		out = append(out, cur)
		prev, hasPrev = cur, true
	}

	return out, nil
}

// scanNumber returns the end offset of the numeric literal starting at pos.
func scanNumber(s string, pos int) int {
	end := pos
	for end < len(s) && (s[end] == '.' || (s[end] >= '0' && s[end] <= '9')) {
		end++
	}

	return end
}

func endsOperand(t Token) bool {
	return t.Kind == TokenNumber || t.Kind == TokenVariable || t.Kind == TokenClose
}

func startsOperand(t Token) bool {
	return t.Kind == TokenNumber || t.Kind == TokenVariable || t.Kind == TokenOpen
}

func unaryPosition(prev Token, hasPrev bool) bool {
	return !hasPrev || prev.Kind == TokenOperator || prev.Kind == TokenOpen
}
