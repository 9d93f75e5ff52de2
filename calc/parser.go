package calc

import (
	"fmt"

	"hamilton/quat"
)

type node interface {
	eval(s *Session) (quat.Quaternion, error)
}

type nodeNumber struct{ v quat.Quaternion }

type nodeIdent struct{ name string }

type nodeUnary struct {
	op byte
	x  node
}

type nodeBinary struct {
	op          byte
	left, right node
}

type nodeCall struct {
	name string
	args []node
}

type nodeAttr struct {
	x    node
	attr string
}

type actionKind uint8

const (
	actionEval actionKind = iota
	actionAssign
	actionAssignAttr
)

type action struct {
	kind actionKind
	expr node
	name string
	attr string
}

type parser struct {
	l   lexer
	cur token
}

func parseInput(s string) ([]action, error) {
	p := &parser{l: lexer{s: s}}
	p.cur = p.l.next()
	var out []action
	for {
		for p.cur.kind == tokSemi {
			p.next()
		}
		if p.cur.kind == tokEOF {
			return out, nil
		}
		act, err := p.parseTop()
		if err != nil {
			return nil, err
		}
		out = append(out, act)
		if p.cur.kind != tokSemi && p.cur.kind != tokEOF {
			return nil, fmt.Errorf("%w: unexpected %q", ErrParse, p.cur.text)
		}
	}
}

func (p *parser) next() { p.cur = p.l.next() }

func (p *parser) parseTop() (action, error) {
	if p.cur.kind != tokIdent {
		return p.parseEvalAction()
	}

	identTok := p.cur
	afterIdentPos := p.l.i
	p.next()

	switch p.cur.kind {
	case tokAssign:
		p.next()
		ex, err := p.parseExpr()
		if err != nil {
			return action{}, err
		}
		return action{kind: actionAssign, name: identTok.text, expr: ex}, nil
	case tokDot:
		// `x.attr = ...` is a write; anything else is an ordinary expression.
		p.next()
		if p.cur.kind == tokIdent {
			attr := p.cur.text
			p.next()
			if p.cur.kind == tokAssign {
				p.next()
				ex, err := p.parseExpr()
				if err != nil {
					return action{}, err
				}
				return action{kind: actionAssignAttr, name: identTok.text, attr: attr, expr: ex}, nil
			}
		}
	}

	p.l.i = afterIdentPos
	p.cur = identTok
	return p.parseEvalAction()
}

func (p *parser) parseEvalAction() (action, error) {
	ex, err := p.parseExpr()
	if err != nil {
		return action{}, err
	}
	return action{kind: actionEval, expr: ex}, nil
}

func (p *parser) parseExpr() (node, error) {
	return p.parseSum()
}

func (p *parser) parseSum() (node, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op := p.cur.text[0]
		p.next()
		right, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		left = nodeBinary{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseProduct() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokStar {
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = nodeBinary{op: '*', left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseUnary() (node, error) {
	if p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op := p.cur.text[0]
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return nodeUnary{op: op, x: x}, nil
	}
	return p.parsePostfix()
}

func (p *parser) parsePostfix() (node, error) {
	x, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokDot {
		p.next()
		if p.cur.kind != tokIdent {
			return nil, fmt.Errorf("%w: expected attribute name after '.'", ErrParse)
		}
		x = nodeAttr{x: x, attr: p.cur.text}
		p.next()
	}
	return x, nil
}

func (p *parser) parsePrimary() (node, error) {
	switch p.cur.kind {
	case tokNumber:
		v := literal(p.cur.num, p.cur.unit)
		p.next()
		return nodeNumber{v: v}, nil
	case tokIdent:
		name := p.cur.text
		p.next()
		if p.cur.kind != tokLParen {
			return nodeIdent{name: name}, nil
		}
		p.next()
		var args []node
		if p.cur.kind != tokRParen {
			for {
				ex, err := p.parseExpr()
				if err != nil {
					return nil, err
				}
				args = append(args, ex)
				if p.cur.kind == tokComma {
					p.next()
					continue
				}
				break
			}
		}
		if p.cur.kind != tokRParen {
			return nil, fmt.Errorf("%w: expected ')'", ErrParse)
		}
		p.next()
		return nodeCall{name: name, args: args}, nil
	case tokLParen:
		p.next()
		ex, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.cur.kind != tokRParen {
			return nil, fmt.Errorf("%w: expected ')'", ErrParse)
		}
		p.next()
		return ex, nil
	case tokEOF, tokSemi:
		return nil, fmt.Errorf("%w: unexpected end of input", ErrParse)
	default:
		return nil, fmt.Errorf("%w: unexpected %q", ErrParse, p.cur.text)
	}
}

func literal(f float64, unit byte) quat.Quaternion {
	switch unit {
	case 'i':
		return quat.New(0, f, 0, 0)
	case 'j':
		return quat.New(0, 0, f, 0)
	case 'k':
		return quat.New(0, 0, 0, f)
	}
	return quat.Real(f)
}
