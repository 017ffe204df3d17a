package main

import (
	"fmt"

	"github.com/isurf/ivaluate/cache"
	"github.com/isurf/ivaluate/opcode"
)

// parser is a hand-written recursive-descent parser over the token stream
// produced by lex, building nodes directly in a cache.Cache as it goes
// (spec.md's domain stack calls for a hand-rolled parser here, not a
// parser-combinator library — see DESIGN.md).
type parser struct {
	c    *cache.Cache
	toks []token
	pos  int
}

// parseExpression builds src's DAG in c and returns its root node.
func parseExpression(c *cache.Cache, src string) (cache.NodeID, error) {
	toks, err := lex(src)
	if err != nil {
		return 0, err
	}
	p := &parser{c: c, toks: toks}
	root, err := p.parseAddSub()
	if err != nil {
		return 0, err
	}
	if p.cur().kind != tokEOF {
		return 0, fmt.Errorf("parser: unexpected token %q at %d", p.cur().text, p.cur().pos)
	}
	return root, nil
}

func (p *parser) cur() token  { return p.toks[p.pos] }
func (p *parser) advance() token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) parseAddSub() (cache.NodeID, error) {
	lhs, err := p.parseMulDiv()
	if err != nil {
		return 0, err
	}
	for {
		switch p.cur().kind {
		case tokPlus:
			p.advance()
			rhs, err := p.parseMulDiv()
			if err != nil {
				return 0, err
			}
			if lhs, err = p.c.Operation(opcode.ADD, lhs, rhs); err != nil {
				return 0, err
			}
		case tokMinus:
			p.advance()
			rhs, err := p.parseMulDiv()
			if err != nil {
				return 0, err
			}
			if lhs, err = p.c.Operation(opcode.SUB, lhs, rhs); err != nil {
				return 0, err
			}
		default:
			return lhs, nil
		}
	}
}

func (p *parser) parseMulDiv() (cache.NodeID, error) {
	lhs, err := p.parsePow()
	if err != nil {
		return 0, err
	}
	for {
		switch p.cur().kind {
		case tokStar:
			p.advance()
			rhs, err := p.parsePow()
			if err != nil {
				return 0, err
			}
			if lhs, err = p.c.Operation(opcode.MUL, lhs, rhs); err != nil {
				return 0, err
			}
		case tokSlash:
			p.advance()
			rhs, err := p.parsePow()
			if err != nil {
				return 0, err
			}
			if lhs, err = p.c.Operation(opcode.DIV, lhs, rhs); err != nil {
				return 0, err
			}
		default:
			return lhs, nil
		}
	}
}

// parsePow is right-associative: x^y^z == x^(y^z).
func (p *parser) parsePow() (cache.NodeID, error) {
	base, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	if p.cur().kind == tokCaret {
		p.advance()
		exp, err := p.parsePow()
		if err != nil {
			return 0, err
		}
		return p.c.Operation(opcode.POW, base, exp)
	}
	return base, nil
}

func (p *parser) parseUnary() (cache.NodeID, error) {
	if p.cur().kind == tokMinus {
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		return p.c.Operation(opcode.NEG, operand, 0)
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (cache.NodeID, error) {
	t := p.cur()
	switch t.kind {
	case tokNumber:
		p.advance()
		return p.c.Constant(t.num), nil
	case tokLParen:
		p.advance()
		inner, err := p.parseAddSub()
		if err != nil {
			return 0, err
		}
		if p.cur().kind != tokRParen {
			return 0, fmt.Errorf("parser: expected ')' at %d", p.cur().pos)
		}
		p.advance()
		return inner, nil
	case tokIdent:
		p.advance()
		if p.cur().kind == tokLParen {
			return p.parseCall(t.text)
		}
		switch t.text {
		case "x":
			return p.c.X(), nil
		case "y":
			return p.c.Y(), nil
		case "z":
			return p.c.Z(), nil
		case "pi":
			return p.c.Constant(3.141592653589793), nil
		default:
			return 0, fmt.Errorf("parser: unknown identifier %q at %d", t.text, t.pos)
		}
	default:
		return 0, fmt.Errorf("parser: unexpected token %q at %d", t.text, t.pos)
	}
}

// callTable maps function names to opcodes. The opcode's Arity() must match
// the number of comma-separated arguments the call site supplies.
var callTable = map[string]opcode.Op{
	"sqrt":    opcode.SQRT,
	"square":  opcode.SQUARE,
	"abs":     opcode.ABS,
	"sin":     opcode.SIN,
	"cos":     opcode.COS,
	"tan":     opcode.TAN,
	"asin":    opcode.ASIN,
	"acos":    opcode.ACOS,
	"atan":    opcode.ATAN,
	"exp":     opcode.EXP,
	"min":     opcode.MIN,
	"max":     opcode.MAX,
	"atan2":   opcode.ATAN2,
	"pow":     opcode.POW,
	"nthroot": opcode.NTH_ROOT,
	"mod":     opcode.MOD,
	"nanfill": opcode.NANFILL,
}

func (p *parser) parseCall(name string) (cache.NodeID, error) {
	op, ok := callTable[name]
	if !ok {
		return 0, fmt.Errorf("parser: unknown function %q at %d", name, p.cur().pos)
	}
	p.advance() // consume '('
	args, err := p.parseArgs()
	if err != nil {
		return 0, err
	}
	if len(args) != op.Arity() {
		return 0, fmt.Errorf("parser: %s expects %d argument(s), got %d", name, op.Arity(), len(args))
	}
	rhs := cache.NodeID(0)
	if op.Arity() == 2 {
		rhs = args[1]
	}
	return p.c.Operation(op, args[0], rhs)
}

func (p *parser) parseArgs() ([]cache.NodeID, error) {
	var args []cache.NodeID
	if p.cur().kind == tokRParen {
		p.advance()
		return args, nil
	}
	for {
		arg, err := p.parseAddSub()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		switch p.cur().kind {
		case tokComma:
			p.advance()
		case tokRParen:
			p.advance()
			return args, nil
		default:
			return nil, fmt.Errorf("parser: expected ',' or ')' at %d", p.cur().pos)
		}
	}
}
