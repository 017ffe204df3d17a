package matrix

import "fmt"

// Dense is a row-major matrix of float64 values.
type Dense struct {
	r, c int
	data []float64
}

// denseErrorf wraps an underlying error with method/position context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// NewDense creates an r×c Dense matrix initialized to zeros.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf("At", row, col, ErrIndexOutOfBounds)
	}
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// Set assigns value v at (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}

// Clone returns a deep copy of m.
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)
	return &Dense{r: m.r, c: m.c, data: cp}
}

// Mul returns m×other. Returns ErrDimensionMismatch if m.Cols() != other.Rows().
func (m *Dense) Mul(other *Dense) (*Dense, error) {
	if m.c != other.r {
		return nil, ErrDimensionMismatch
	}
	out, err := NewDense(m.r, other.c)
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.r; i++ {
		for k := 0; k < m.c; k++ {
			aik := m.data[i*m.c+k]
			if aik == 0 {
				continue
			}
			for j := 0; j < other.c; j++ {
				out.data[i*out.c+j] += aik * other.data[k*other.c+j]
			}
		}
	}
	return out, nil
}

// String implements fmt.Stringer for debug output.
func (m *Dense) String() string {
	s := ""
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			s += fmt.Sprintf("%g ", m.data[i*m.c+j])
		}
		s += "\n"
	}
	return s
}
