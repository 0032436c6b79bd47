package mpc

import "github.com/pkg/errors"

// evalState threads the few things a parse needs beyond the parser graph
// and the cursor: the optional trace logger and a recursion-depth counter
// used to turn unbounded left recursion into a reported error (§9 "Open
// question — left recursion", resolved here as option (b): detect and
// report, rather than diverge into a stack overflow).
type evalState struct {
	cfg   *Config
	depth int
	max   int
}

// ErrRecursionLimit's message is reported, as the expected label of the
// *ParseError built by recursionError, when a grammar recurses past
// Config.MaxDepth — the signature of an unrewritten left-recursive rule.
// The *ParseError does not wrap ErrRecursionLimit itself, so errors.Is does
// not match it; callers recognise the condition by its message text.
var ErrRecursionLimit = errors.New("mpc: recursion depth exceeded; grammar is likely left-recursive and must be rewritten as right recursion or repetition")

func recursionError(cur *Cursor) *ParseError {
	line, col, off := cur.Position()
	b, ok := cur.Peek()
	return NewParseError(cur.Filename(), line, col, off, b, !ok, ErrRecursionLimit.Error())
}

// Run evaluates p against cur using an optional Config, the single
// recursive function §4.6 describes. It dispatches on p's Kind, manages
// marks for backtracking, invokes the combinator's Fold/Apply, and merges
// errors — all in this one function plus the tiny per-Kind helpers below.
func Run(p *Parser, cur *Cursor, cfg *Config) (Value, *ParseError) {
	st := &evalState{cfg: cfg, max: cfg.maxDepth()}
	return eval(st, p, cur)
}

func eval(st *evalState, p *Parser, cur *Cursor) (v Value, err *ParseError) {
	st.depth++
	if st.depth > st.max {
		st.depth--
		return nil, recursionError(cur)
	}
	defer func() { st.depth-- }()

	trace := st.cfg.trace()
	if trace != nil {
		trace.WithField("kind", p.kind).WithField("name", p.name).Debug("mpc: enter")
		defer func() {
			trace.WithField("kind", p.kind).WithField("name", p.name).WithField("ok", err == nil).Debug("mpc: exit")
		}()
	}

	switch p.kind {
	case KindAny:
		return evalAny(cur)
	case KindChar:
		return evalChar(p, cur)
	case KindRange:
		return evalRange(p, cur)
	case KindOneOf:
		return evalOneOf(p, cur)
	case KindNoneOf:
		return evalNoneOf(p, cur)
	case KindSatisfy:
		return evalSatisfy(p, cur)
	case KindString:
		return evalString(p, cur)
	case KindPass:
		return nil, nil
	case KindFail:
		return nil, failAt(cur, p.str)
	case KindLift:
		return p.liftFn(), nil
	case KindLiftVal:
		return p.liftVal, nil
	case KindEOI:
		return evalEOI(cur)
	case KindSOI:
		return evalSOI(cur)
	case KindExpect:
		return evalExpect(st, p, cur)
	case KindApply:
		return evalApply(st, p, cur)
	case KindApplyTo:
		return evalApplyTo(st, p, cur)
	case KindNot:
		return evalNot(st, p, cur)
	case KindMaybe:
		return evalMaybe(st, p, cur)
	case KindMany:
		return evalMany(st, p, cur)
	case KindCount:
		return evalCount(st, p, cur)
	case KindElse:
		return evalElse(st, p, cur)
	case KindAlso:
		return evalAlso(st, p, cur)
	case KindAnd:
		return evalAnd(st, p, cur)
	case KindRetained:
		return evalRetained(st, p, cur)
	default:
		panic("mpc: unknown parser kind")
	}
}

func failAt(cur *Cursor, expected ...string) *ParseError {
	line, col, off := cur.Position()
	b, ok := cur.Peek()
	return NewParseError(cur.Filename(), line, col, off, b, !ok, expected...)
}

func evalAny(cur *Cursor) (Value, *ParseError) {
	b, ok := cur.Peek()
	if !ok {
		return nil, failAt(cur, "any character")
	}
	cur.Advance(1)
	return string(b), nil
}

func evalChar(p *Parser, cur *Cursor) (Value, *ParseError) {
	b, ok := cur.Peek()
	if !ok || b != p.ch {
		return nil, failAt(cur, p.name)
	}
	cur.Advance(1)
	return string(b), nil
}

func evalRange(p *Parser, cur *Cursor) (Value, *ParseError) {
	b, ok := cur.Peek()
	if !ok || b < p.lo || b > p.hi {
		return nil, failAt(cur, p.name)
	}
	cur.Advance(1)
	return string(b), nil
}

func evalOneOf(p *Parser, cur *Cursor) (Value, *ParseError) {
	b, ok := cur.Peek()
	if !ok || !byteIn(b, p.set) {
		return nil, failAt(cur, p.name)
	}
	cur.Advance(1)
	return string(b), nil
}

func evalNoneOf(p *Parser, cur *Cursor) (Value, *ParseError) {
	b, ok := cur.Peek()
	if !ok || byteIn(b, p.set) {
		return nil, failAt(cur, p.name)
	}
	cur.Advance(1)
	return string(b), nil
}

func byteIn(b byte, set string) bool {
	for i := 0; i < len(set); i++ {
		if set[i] == b {
			return true
		}
	}
	return false
}

func evalSatisfy(p *Parser, cur *Cursor) (Value, *ParseError) {
	b, ok := cur.Peek()
	if !ok || !p.pred(b) {
		return nil, failAt(cur, p.name)
	}
	cur.Advance(1)
	return string(b), nil
}

func evalString(p *Parser, cur *Cursor) (Value, *ParseError) {
	if !cur.HasPrefix(p.str) {
		return nil, failAt(cur, p.name)
	}
	cur.Advance(len(p.str))
	return p.str, nil
}

func evalEOI(cur *Cursor) (Value, *ParseError) {
	if !cur.AtEnd() {
		return nil, failAt(cur, "end of input")
	}
	return nil, nil
}

func evalSOI(cur *Cursor) (Value, *ParseError) {
	_, _, off := cur.Position()
	if off != 0 {
		return nil, failAt(cur, "start of input")
	}
	return nil, nil
}

func evalExpect(st *evalState, p *Parser, cur *Cursor) (Value, *ParseError) {
	v, err := eval(st, p.a, cur)
	if err != nil {
		return nil, err.WithExpected(p.str)
	}
	return v, nil
}

func evalApply(st *evalState, p *Parser, cur *Cursor) (Value, *ParseError) {
	v, err := eval(st, p.a, cur)
	if err != nil {
		return nil, err
	}
	return p.apply(v), nil
}

func evalApplyTo(st *evalState, p *Parser, cur *Cursor) (Value, *ParseError) {
	v, err := eval(st, p.a, cur)
	if err != nil {
		return nil, err
	}
	return p.applyTo(v, p.ctx), nil
}

func evalNot(st *evalState, p *Parser, cur *Cursor) (Value, *ParseError) {
	mark := cur.Mark()
	_, err := eval(st, p.a, cur)
	cur.Restore(mark)
	if err != nil {
		if p.lfold != nil {
			return p.lfold(), nil
		}
		return nil, nil
	}
	return nil, failAt(cur, "not "+p.a.name)
}

func evalMaybe(st *evalState, p *Parser, cur *Cursor) (Value, *ParseError) {
	mark := cur.Mark()
	v, err := eval(st, p.a, cur)
	if err != nil {
		cur.Restore(mark)
		if p.lfold != nil {
			return p.lfold(), nil
		}
		return nil, nil
	}
	return v, nil
}

func evalMany(st *evalState, p *Parser, cur *Cursor) (Value, *ParseError) {
	var acc Value
	if p.lfold != nil {
		acc = p.lfold()
	}
	count := 0
	var lastErr *ParseError
	for {
		mark := cur.Mark()
		v, err := eval(st, p.a, cur)
		if err != nil {
			if cur.offsetSince(mark) > 0 {
				return nil, err
			}
			cur.Restore(mark)
			lastErr = err
			break
		}
		acc = p.fold(acc, v)
		count++
	}
	if p.n >= 1 && count == 0 {
		return nil, lastErr
	}
	return acc, nil
}

func evalCount(st *evalState, p *Parser, cur *Cursor) (Value, *ParseError) {
	var acc Value
	for i := 0; i < p.n; i++ {
		v, err := eval(st, p.a, cur)
		if err != nil {
			if p.lfold != nil {
				return p.lfold(), nil
			}
			return nil, err
		}
		acc = p.fold(acc, v)
	}
	return acc, nil
}

func evalElse(st *evalState, p *Parser, cur *Cursor) (Value, *ParseError) {
	mark := cur.Mark()
	v, aErr := eval(st, p.a, cur)
	if aErr == nil {
		return v, nil
	}
	if cur.offsetSince(mark) > 0 {
		return nil, aErr
	}
	cur.Restore(mark)
	v, bErr := eval(st, p.b, cur)
	if bErr == nil {
		return v, nil
	}
	return nil, Merge(aErr, bErr)
}

func evalAlso(st *evalState, p *Parser, cur *Cursor) (Value, *ParseError) {
	av, aErr := eval(st, p.a, cur)
	if aErr != nil {
		return nil, aErr
	}
	bv, bErr := eval(st, p.b, cur)
	if bErr != nil {
		return nil, bErr
	}
	return p.fold(av, bv), nil
}

func evalAnd(st *evalState, p *Parser, cur *Cursor) (Value, *ParseError) {
	values := make([]Value, 0, len(p.children))
	for _, child := range p.children {
		v, err := eval(st, child, cur)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return p.afold(values), nil
}

func evalRetained(st *evalState, p *Parser, cur *Cursor) (Value, *ParseError) {
	if !p.defined || p.body == nil {
		panic("mpc: parser " + p.name + " was never defined")
	}
	return eval(st, p.body, cur)
}

// offsetSince reports how many bytes have been consumed since mark.
func (c *Cursor) offsetSince(mark Mark) int {
	return c.offset - mark.offset
}
