package matrix

// Transform4 is a 4x4 homogeneous transform: rows/cols 0-2 hold the linear
// (rotation/scale/shear) part, column 3 holds the translation, and row 3 is
// (0,0,0,1).
type Transform4 struct {
	m *Dense
}

// NewTransform4Identity returns the identity transform.
func NewTransform4Identity() Transform4 {
	id, _ := Identity(4)
	return Transform4{m: id}
}

// NewTransform4 wraps an existing 4x4 Dense as a Transform4. Returns
// ErrDimensionMismatch if m is not 4x4.
func NewTransform4(m *Dense) (Transform4, error) {
	if m.Rows() != 4 || m.Cols() != 4 {
		return Transform4{}, ErrDimensionMismatch
	}
	return Transform4{m: m}, nil
}

// IsIdentity reports whether t is (bit-exactly) the identity transform —
// the evaluator skips apply_transform entirely when this holds (spec.md §4.4).
func (t Transform4) IsIdentity() bool {
	id, _ := Identity(4)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			a, _ := t.m.At(i, j)
			b, _ := id.At(i, j)
			if a != b {
				return false
			}
		}
	}
	return true
}

// Apply transforms the point (x,y,z) by t, returning the transformed point.
func (t Transform4) Apply(x, y, z float64) (tx, ty, tz float64) {
	row := func(r int) float64 {
		m00, _ := t.m.At(r, 0)
		m01, _ := t.m.At(r, 1)
		m02, _ := t.m.At(r, 2)
		m03, _ := t.m.At(r, 3)
		return m00*x + m01*y + m02*z + m03
	}
	return row(0), row(1), row(2)
}

// Dense exposes the underlying 4x4 matrix for callers needing raw access
// (e.g. LinearPart).
func (t Transform4) Dense() *Dense { return t.m }

// LinearPart returns the upper-left 3x3 linear (rotation/scale) block,
// discarding translation — the block whose inverse the evaluator applies
// to gradients to carry them from evaluator space back to world space.
func (t Transform4) LinearPart() *Dense {
	lin, _ := NewDense(3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, _ := t.m.At(i, j)
			_ = lin.Set(i, j, v)
		}
	}
	return lin
}
