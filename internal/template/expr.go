package template

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Grammar, lowest precedence first:
//
//	expr     := equality ( '?' expr ':' expr )?
//	equality := concat ( ('==' | '!=') concat )*
//	concat   := postfix ( '+' postfix )*
//	postfix  := primary ( '.' ident )*
//	primary  := number | string | 'true' | 'false' | 'null' | ident | '(' expr ')'

type node interface {
	eval(vars map[string]any) (any, error)
}

type litNode struct{ val any }

type identNode struct{ name string }

type memberNode struct {
	base node
	name string
}

type binaryNode struct {
	op          string
	left, right node
}

type condNode struct {
	cond, then, els node
}

func (n litNode) eval(map[string]any) (any, error) { return n.val, nil }

func (n identNode) eval(vars map[string]any) (any, error) {
	v, ok := vars[n.name]
	if !ok {
		return nil, fmt.Errorf("unknown variable %q", n.name)
	}
	return v, nil
}

// Member access is tolerant: reaching into an absent or non-object value
// yields nil so templates survive events that lack optional sub-objects.
func (n memberNode) eval(vars map[string]any) (any, error) {
	base, err := n.base.eval(vars)
	if err != nil {
		return nil, err
	}
	m, ok := base.(map[string]any)
	if !ok {
		return nil, nil
	}
	return m[n.name], nil
}

func (n binaryNode) eval(vars map[string]any) (any, error) {
	left, err := n.left.eval(vars)
	if err != nil {
		return nil, err
	}
	right, err := n.right.eval(vars)
	if err != nil {
		return nil, err
	}
	switch n.op {
	case "+":
		if lf, lok := numeric(left); lok {
			if rf, rok := numeric(right); rok {
				return lf + rf, nil
			}
		}
		return stringify(left) + stringify(right), nil
	case "==":
		return looseEqual(left, right), nil
	case "!=":
		return !looseEqual(left, right), nil
	}
	return nil, fmt.Errorf("unsupported operator %q", n.op)
}

func (n condNode) eval(vars map[string]any) (any, error) {
	cond, err := n.cond.eval(vars)
	if err != nil {
		return nil, err
	}
	if truthy(cond) {
		return n.then.eval(vars)
	}
	return n.els.eval(vars)
}

func numeric(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}

func looseEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if af, aok := numeric(a); aok {
		if bf, bok := numeric(b); bok {
			return af == bf
		}
	}
	return stringify(a) == stringify(b)
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case int:
		return x != 0
	case float64:
		return x != 0
	case map[string]any:
		return len(x) > 0
	case []any:
		return len(x) > 0
	}
	return true
}

// --- lexer ---

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokNumber
	tokString
	tokOp // punctuation and operators
)

type token struct {
	kind tokenKind
	text string
}

func lex(src string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '\'' || c == '"':
			quote := c
			j := i + 1
			var sb strings.Builder
			for j < len(src) && src[j] != quote {
				if src[j] == '\\' && j+1 < len(src) {
					j++
				}
				sb.WriteByte(src[j])
				j++
			}
			if j >= len(src) {
				return nil, fmt.Errorf("unterminated string literal")
			}
			toks = append(toks, token{tokString, sb.String()})
			i = j + 1
		case c >= '0' && c <= '9':
			j := i
			for j < len(src) && (src[j] >= '0' && src[j] <= '9' || src[j] == '.') {
				j++
			}
			toks = append(toks, token{tokNumber, src[i:j]})
			i = j
		case isIdentStart(rune(c)):
			j := i
			for j < len(src) && isIdentPart(rune(src[j])) {
				j++
			}
			toks = append(toks, token{tokIdent, src[i:j]})
			i = j
		case c == '=' || c == '!':
			if i+1 < len(src) && src[i+1] == '=' {
				toks = append(toks, token{tokOp, src[i : i+2]})
				i += 2
			} else {
				return nil, fmt.Errorf("unexpected character %q", c)
			}
		case c == '+' || c == '.' || c == '?' || c == ':' || c == '(' || c == ')':
			toks = append(toks, token{tokOp, string(c)})
			i++
		default:
			return nil, fmt.Errorf("unexpected character %q", c)
		}
	}
	return append(toks, token{tokEOF, ""}), nil
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// --- parser ---

type parser struct {
	toks []token
	pos  int
}

func parse(src string) (node, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	n, err := p.expr()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokEOF {
		return nil, fmt.Errorf("unexpected trailing token %q", p.peek().text)
	}
	return n, nil
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) acceptOp(text string) bool {
	if t := p.peek(); t.kind == tokOp && t.text == text {
		p.pos++
		return true
	}
	return false
}

func (p *parser) expectOp(text string) error {
	if !p.acceptOp(text) {
		return fmt.Errorf("expected %q, found %q", text, p.peek().text)
	}
	return nil
}

func (p *parser) expr() (node, error) {
	cond, err := p.equality()
	if err != nil {
		return nil, err
	}
	if !p.acceptOp("?") {
		return cond, nil
	}
	then, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err := p.expectOp(":"); err != nil {
		return nil, err
	}
	els, err := p.expr()
	if err != nil {
		return nil, err
	}
	return condNode{cond: cond, then: then, els: els}, nil
}

func (p *parser) equality() (node, error) {
	left, err := p.concat()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		if t.kind != tokOp || (t.text != "==" && t.text != "!=") {
			return left, nil
		}
		p.next()
		right, err := p.concat()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: t.text, left: left, right: right}
	}
}

func (p *parser) concat() (node, error) {
	left, err := p.postfix()
	if err != nil {
		return nil, err
	}
	for p.acceptOp("+") {
		right, err := p.postfix()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: "+", left: left, right: right}
	}
	return left, nil
}

func (p *parser) postfix() (node, error) {
	n, err := p.primary()
	if err != nil {
		return nil, err
	}
	for p.acceptOp(".") {
		t := p.next()
		if t.kind != tokIdent {
			return nil, fmt.Errorf("expected field name after '.', found %q", t.text)
		}
		n = memberNode{base: n, name: t.text}
	}
	return n, nil
}

func (p *parser) primary() (node, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		f, err := strconv.ParseFloat(t.text, 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q", t.text)
		}
		if f == float64(int(f)) && !strings.Contains(t.text, ".") {
			return litNode{val: int(f)}, nil
		}
		return litNode{val: f}, nil
	case tokString:
		return litNode{val: t.text}, nil
	case tokIdent:
		switch t.text {
		case "true":
			return litNode{val: true}, nil
		case "false":
			return litNode{val: false}, nil
		case "null":
			return litNode{val: nil}, nil
		}
		return identNode{name: t.text}, nil
	case tokOp:
		if t.text == "(" {
			n, err := p.expr()
			if err != nil {
				return nil, err
			}
			if err := p.expectOp(")"); err != nil {
				return nil, err
			}
			return n, nil
		}
	}
	return nil, fmt.Errorf("unexpected token %q", t.text)
}
