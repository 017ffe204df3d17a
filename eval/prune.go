package eval

import "github.com/isurf/ivaluate/opcode"

// classify sets each rank>=1 clause's prune state from its operands'
// current interval results — spec.md §4.4 step 1. Must run after an
// EvalInterval pass so e.iv holds fresh bounds for every clause.
func (e *Evaluator) classify() {
	for _, row := range e.rows {
		for _, idx := range row {
			cl := &e.clauses[idx]
			cl.prune = pruneNone
			if cl.op.Arity() != 2 {
				continue
			}
			ai, bi := e.iv[cl.a], e.iv[cl.b]
			switch cl.op {
			case opcode.MIN:
				switch {
				case ai.Hi < bi.Lo:
					cl.prune = pruneIgnoreB
				case bi.Hi < ai.Lo:
					cl.prune = pruneIgnoreA
				}
			case opcode.MAX:
				switch {
				case ai.Lo > bi.Hi:
					cl.prune = pruneIgnoreB
				case bi.Lo > ai.Hi:
					cl.prune = pruneIgnoreA
				}
			}
		}
	}
}

// Push disables every clause unreachable from the root given the prune
// classification computed from the last EvalInterval call — spec.md §4.4
// step 2. Every Push must be balanced by exactly one Pop.
func (e *Evaluator) Push() {
	e.classify()

	snapshot := make([]bool, len(e.disabled))
	copy(snapshot, e.disabled)
	e.stack = append(e.stack, snapshot)

	for i := range e.disabled {
		e.disabled[i] = true
	}
	e.disabled[e.root] = false

	for r := len(e.rows) - 1; r >= 0; r-- {
		for _, idx := range e.rows[r] {
			cl := e.clauses[idx]
			if e.disabled[idx] {
				continue
			}
			if cl.a != noOperand && cl.prune != pruneIgnoreA {
				e.disabled[cl.a] = false
			}
			if cl.b != noOperand && cl.prune != pruneIgnoreB {
				e.disabled[cl.b] = false
			}
		}
	}
}

// Pop restores the disabled set from the matching Push. Returns
// ErrUnbalancedStack if called with no outstanding Push (spec.md §7).
func (e *Evaluator) Pop() error {
	if len(e.stack) == 0 {
		return ErrUnbalancedStack
	}
	snapshot := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]
	copy(e.disabled, snapshot)
	return nil
}

// Utilization returns mean(active/size) across rows — spec.md §4.4's
// pruning-effectiveness diagnostic. Returns 1.0 for a tape with no rows.
func (e *Evaluator) Utilization() float64 {
	if len(e.rows) == 0 {
		return 1.0
	}
	sum := 0.0
	for _, row := range e.rows {
		if len(row) == 0 {
			sum += 1.0
			continue
		}
		active := 0
		for _, idx := range row {
			if !e.disabled[idx] {
				active++
			}
		}
		sum += float64(active) / float64(len(row))
	}
	return sum / float64(len(e.rows))
}

// effectiveOp returns the opcode a kernel should execute for cl, given
// whether its operands are currently disabled — spec.md §4.4 step 3.
func effectiveOp(cl clause, aDisabled, bDisabled bool) opcode.Op {
	if cl.op.Arity() != 2 {
		return cl.op
	}
	switch {
	case aDisabled:
		return opcode.DUMMY_B
	case bDisabled:
		return opcode.DUMMY_A
	default:
		return cl.op
	}
}
