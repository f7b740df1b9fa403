package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Solution is the externally visible artifact of a solve.
// Coefficients[i] is the coefficient of x^(i+1).
type Solution struct {
	Params       Params        `json:"params"`
	Coefficients []float64     `json:"coefficients"`
	MemoEntries  int           `json:"memo_entries"`
	Elapsed      time.Duration `json:"elapsed"`
	ComputedAt   time.Time     `json:"computed_at"`
}

// Clone returns a deep copy so stores never share the coefficient slice with callers.
func (s *Solution) Clone() *Solution {
	c := *s
	c.Coefficients = append([]float64(nil), s.Coefficients...)
	return &c
}

// Latex renders A(x) = c₁x^{1} + c₂x^{2} + ... with decimals digits per coefficient.
func (s *Solution) Latex(decimals int) string {
	if len(s.Coefficients) == 0 {
		return "A(x) = Coefficients could not be calculated."
	}
	var b strings.Builder
	b.WriteString("A(x) = ")
	for i, c := range s.Coefficients {
		if i > 0 {
			b.WriteString(" + ")
		}
		b.WriteString(strconv.FormatFloat(c, 'f', decimals, 64))
		fmt.Fprintf(&b, "x^{%d}", i+1)
	}
	return b.String()
}
