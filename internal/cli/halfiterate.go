package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/aretw0/composita/internal/runtime"
	"github.com/aretw0/composita/pkg/halfiterate"
)

// HalfIterateOptions configures the half-iterate table.
type HalfIterateOptions struct {
	From       float64
	To         float64
	Points     int
	Iterations int
	// Orbit, when positive, prints x0, F(x0), F(F(x0)), ... instead of the grid.
	Orbit int
	X0    float64
	JSON  bool
}

// HalfIterate prints g(x) with g(g(x)) = x² + 1 over a grid, or the orbit of X0 under F.
func HalfIterate(opts HalfIterateOptions, w io.Writer) error {
	var xs, ys []float64
	if opts.Orbit > 0 {
		ys = halfiterate.Orbit(opts.X0, opts.Orbit)
		xs = make([]float64, len(ys))
		for i := range xs {
			xs[i] = float64(i)
		}
	} else {
		xs = runtime.Linspace(opts.From, opts.To, opts.Points)
		var err error
		ys, err = halfiterate.Series(xs, opts.Iterations)
		if err != nil {
			return err
		}
	}

	if opts.JSON {
		rows := make([][2]*float64, len(xs))
		for i := range xs {
			rows[i] = [2]*float64{&xs[i], finiteOrNil(ys[i])}
		}
		return json.NewEncoder(w).Encode(rows)
	}
	for i := range xs {
		fmt.Fprintf(w, "%s\t%s\n", strconv.FormatFloat(xs[i], 'g', -1, 64), strconv.FormatFloat(ys[i], 'g', 12, 64))
	}
	return nil
}

func finiteOrNil(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
