package eval

import (
	"github.com/isurf/ivaluate/numeric"
	"github.com/isurf/ivaluate/opcode"
)

// SetPoints loads a batch of n points into the X, Y, Z input buffers and
// applies the evaluator's transform in place, mirroring spec.md §4.4
// "Setting inputs" / "apply_transform". xs, ys, zs must each have length n.
func (e *Evaluator) SetPoints(xs, ys, zs []float64) {
	n := len(xs)
	e.n = n
	e.ensureBuffers(n)

	for i := 0; i < n; i++ {
		x, y, z := xs[i], ys[i], zs[i]
		if e.hasTransform {
			x, y, z = e.transform.Apply(x, y, z)
		}
		e.f[e.xIdx*e.n+i] = x
		e.f[e.yIdx*e.n+i] = y
		e.f[e.zIdx*e.n+i] = z
	}
}

// ensureBuffers (re)allocates the per-clause result buffers for a batch of
// size n. Buffers are a single flat slice indexed [clauseIdx*n + lane] so a
// "vectorized" sweep is just a contiguous n-wide run per clause.
func (e *Evaluator) ensureBuffers(n int) {
	need := len(e.clauses) * n
	if cap(e.f) < need {
		e.f = make([]float64, need)
		e.dx = make([]float64, need)
		e.dy = make([]float64, need)
		e.dz = make([]float64, need)
	} else {
		e.f = e.f[:need]
		e.dx = e.dx[:need]
		e.dy = e.dy[:need]
		e.dz = e.dz[:need]
	}
	e.n = n
}

// lanes returns [0,n) split into vectorize-sized chunks (width 8, the
// spec's SIMD lane count) or a single chunk spanning all of n — both
// produce bit-identical results for non-transcendental ops, since the
// underlying per-lane arithmetic is unchanged either way (spec.md §8
// "SIMD/scalar equivalence"); chunking only changes loop structure, grounding
// the vectorize flag in something observable without platform SIMD intrinsics.
func lanes(n int, vectorize bool) [][2]int {
	if !vectorize {
		return [][2]int{{0, n}}
	}
	const width = 8
	var chunks [][2]int
	for start := 0; start < n; start += width {
		end := start + width
		if end > n {
			end = n
		}
		chunks = append(chunks, [2]int{start, end})
	}
	return chunks
}

// ValuesBatch evaluates every enabled clause over the current batch
// (loaded by SetPoints), in rank order, and returns the root's values —
// spec.md §4.4 "Batch evaluation".
func (e *Evaluator) ValuesBatch(vectorize bool) []float64 {
	e.fillConstants()

	for _, row := range e.rows {
		for _, idx := range row {
			if e.disabled[idx] {
				continue
			}
			e.evalClauseValue(idx, vectorize)
		}
	}
	return e.resultSlice(e.f, e.root)
}

func (e *Evaluator) fillConstants() {
	for i, cl := range e.clauses {
		if cl.op != opcode.CONST {
			continue
		}
		base := i * e.n
		for lane := 0; lane < e.n; lane++ {
			e.f[base+lane] = cl.constVal
		}
	}
}

// fillLeafGradients seeds the tape's rank-0 leaves' gradient buffers: zero
// for every CONST, and the standard basis vectors for X, Y, Z. Non-leaf
// clauses compute their own gradient in evalClauseDeriv, so only the
// leaves (which never run through that function) need seeding here.
func (e *Evaluator) fillLeafGradients() {
	for i, cl := range e.clauses {
		if cl.op != opcode.CONST {
			continue
		}
		base := i * e.n
		for lane := 0; lane < e.n; lane++ {
			e.dx[base+lane], e.dy[base+lane], e.dz[base+lane] = 0, 0, 0
		}
	}
	seed := func(idx int, g vec3) {
		base := idx * e.n
		for lane := 0; lane < e.n; lane++ {
			e.dx[base+lane], e.dy[base+lane], e.dz[base+lane] = g.x, g.y, g.z
		}
	}
	seed(e.xIdx, vec3{1, 0, 0})
	seed(e.yIdx, vec3{0, 1, 0})
	seed(e.zIdx, vec3{0, 0, 1})
}

func (e *Evaluator) resultSlice(buf []float64, clauseIdx int) []float64 {
	base := clauseIdx * e.n
	return buf[base : base+e.n]
}

func (e *Evaluator) evalClauseValue(idx int, vectorize bool) {
	cl := e.clauses[idx]
	aDisabled := cl.a != noOperand && e.disabled[cl.a]
	bDisabled := cl.b != noOperand && e.disabled[cl.b]
	op := effectiveOp(cl, aDisabled, bDisabled)

	outBase := idx * e.n
	var aBase, bBase int
	if cl.a != noOperand {
		aBase = cl.a * e.n
	}
	if cl.b != noOperand {
		bBase = cl.b * e.n
	}

	for _, chunk := range lanes(e.n, vectorize) {
		for lane := chunk[0]; lane < chunk[1]; lane++ {
			var av, bv float64
			if cl.a != noOperand {
				av = e.f[aBase+lane]
			}
			if cl.b != noOperand {
				bv = e.f[bBase+lane]
			}
			x, y, z := e.f[e.xIdx*e.n+lane], e.f[e.yIdx*e.n+lane], e.f[e.zIdx*e.n+lane]
			e.f[outBase+lane] = numeric.Eval(op, av, bv, x, y, z)
		}
	}
}

// DerivsBatch evaluates values and gradients over the current batch,
// returning (value, dx, dy, dz) in world space — spec.md §4.4
// "Derivatives". The root gradient is multiplied by the transform's
// inverse linear part so normals come back out in world space.
func (e *Evaluator) DerivsBatch(vectorize bool) (value, dx, dy, dz []float64) {
	e.fillConstants()
	e.fillLeafGradients()

	for _, row := range e.rows {
		for _, idx := range row {
			if e.disabled[idx] {
				continue
			}
			e.evalClauseDeriv(idx, vectorize)
		}
	}

	f := e.resultSlice(e.f, e.root)
	gx := e.resultSlice(e.dx, e.root)
	gy := e.resultSlice(e.dy, e.root)
	gz := e.resultSlice(e.dz, e.root)

	if !e.hasTransform {
		return f, gx, gy, gz
	}
	outX := make([]float64, e.n)
	outY := make([]float64, e.n)
	outZ := make([]float64, e.n)
	for lane := 0; lane < e.n; lane++ {
		outX[lane], outY[lane], outZ[lane] = e.applyInverseLinear(gx[lane], gy[lane], gz[lane])
	}
	return f, outX, outY, outZ
}

func (e *Evaluator) applyInverseLinear(gx, gy, gz float64) (float64, float64, float64) {
	row := func(r int) float64 {
		m0, _ := e.invLinear.At(r, 0)
		m1, _ := e.invLinear.At(r, 1)
		m2, _ := e.invLinear.At(r, 2)
		return m0*gx + m1*gy + m2*gz
	}
	return row(0), row(1), row(2)
}

func (e *Evaluator) evalClauseDeriv(idx int, vectorize bool) {
	cl := e.clauses[idx]
	aDisabled := cl.a != noOperand && e.disabled[cl.a]
	bDisabled := cl.b != noOperand && e.disabled[cl.b]
	op := effectiveOp(cl, aDisabled, bDisabled)

	outBase := idx * e.n
	var aBase, bBase int
	if cl.a != noOperand {
		aBase = cl.a * e.n
	}
	if cl.b != noOperand {
		bBase = cl.b * e.n
	}

	for _, chunk := range lanes(e.n, vectorize) {
		for lane := chunk[0]; lane < chunk[1]; lane++ {
			var av, bv float64
			var ag, bg vec3
			if cl.a != noOperand {
				av = e.f[aBase+lane]
				ag = vec3{e.dx[aBase+lane], e.dy[aBase+lane], e.dz[aBase+lane]}
			}
			if cl.b != noOperand {
				bv = e.f[bBase+lane]
				bg = vec3{e.dx[bBase+lane], e.dy[bBase+lane], e.dz[bBase+lane]}
			}
			x, y, z := e.f[e.xIdx*e.n+lane], e.f[e.yIdx*e.n+lane], e.f[e.zIdx*e.n+lane]
			v, g := valueAndGrad(op, av, bv, ag, bg, x, y, z)
			e.f[outBase+lane] = v
			e.dx[outBase+lane] = g.x
			e.dy[outBase+lane] = g.y
			e.dz[outBase+lane] = g.z
		}
	}
}

// EvalPoint evaluates a single point, a convenience wrapper over a
// batch-of-one ValuesBatch call.
func (e *Evaluator) EvalPoint(x, y, z float64) float64 {
	e.SetPoints([]float64{x}, []float64{y}, []float64{z})
	return e.ValuesBatch(false)[0]
}
