package plot

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/arkedion/mehr/pointset"
	"github.com/arkedion/mehr/rectangle"
)

const panelSize = vg.Length(300)

// Render draws rect against data as a grid of pairwise-dimension panels
// and writes the result as a PNG to w. featureNames labels each axis; if
// nil, dimensions are labeled "dim0", "dim1", and so on.
//
// Returns ErrDimensionMismatch if data's column count differs from
// rect's dimension, or if featureNames is non-nil and its length differs
// from rect's dimension.
func Render(rect rectangle.Rectangle, data pointset.Matrix, featureNames []string, w io.Writer) error {
	k := rect.Dim()
	if data.Cols() != k {
		return fmt.Errorf("Render: data has %d columns, rectangle has %d dimensions: %w", data.Cols(), k, ErrDimensionMismatch)
	}
	if featureNames != nil && len(featureNames) != k {
		return fmt.Errorf("Render: %d feature names, %d dimensions: %w", len(featureNames), k, ErrDimensionMismatch)
	}
	if featureNames == nil {
		featureNames = make([]string, k)
		for d := range featureNames {
			featureNames[d] = fmt.Sprintf("dim%d", d)
		}
	}

	pairs := combinations(k)
	if len(pairs) == 0 {
		return fmt.Errorf("Render: rectangle has fewer than 2 dimensions: %w", ErrDimensionMismatch)
	}

	height := int(math.Sqrt(float64(len(pairs))))
	if height < 1 {
		height = 1
	}
	for len(pairs)%height != 0 {
		height--
	}
	width := len(pairs) / height

	title := fmt.Sprintf("volume %g", rect.Volume())

	plots := make([][]*plot.Plot, height)
	for r := range plots {
		plots[r] = make([]*plot.Plot, width)
	}
	for i, pair := range pairs {
		p, err := panel(rect, data, featureNames, pair, title)
		if err != nil {
			return fmt.Errorf("Render: panel %d: %w", i, err)
		}
		plots[i/width][i%width] = p
	}

	img := vgimg.New(panelSize*vg.Length(width), panelSize*vg.Length(height))
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: height,
		Cols: width,
		PadX: vg.Points(8), PadY: vg.Points(8),
		PadTop: vg.Points(8), PadBottom: vg.Points(8),
		PadLeft: vg.Points(8), PadRight: vg.Points(8),
	}
	if err := plot.Align(plots, tiles, dc); err != nil {
		return fmt.Errorf("Render: %w", err)
	}

	canvas := vgimg.PngCanvas{Canvas: img}
	if _, err := canvas.WriteTo(w); err != nil {
		return fmt.Errorf("Render: %w", err)
	}

	return nil
}

// dimPair is one pair of plotted dimensions, a < b.
type dimPair struct{ a, b int }

// combinations returns every (a, b) pair with 0 <= a < b < k, in the same
// order Python's itertools.combinations(range(k), 2) would produce —
// the order the panel grid is laid out row-major over.
func combinations(k int) []dimPair {
	pairs := make([]dimPair, 0, k*(k-1)/2)
	for a := 0; a < k; a++ {
		for b := a + 1; b < k; b++ {
			pairs = append(pairs, dimPair{a: a, b: b})
		}
	}

	return pairs
}

// panel builds the single-pair plot: points split into "behind" and "in
// front of" the rectangle by the norm of their un-plotted coordinates
// against the rectangle midpoint's norm in those same dimensions, plus
// the rectangle's face as a translucent red polygon.
func panel(rect rectangle.Rectangle, data pointset.Matrix, featureNames []string, pair dimPair, title string) (*plot.Plot, error) {
	k := rect.Dim()
	other := make([]int, 0, k-2)
	for d := 0; d < k; d++ {
		if d != pair.a && d != pair.b {
			other = append(other, d)
		}
	}

	var mid float64
	for _, d := range other {
		v := (rect.U()[d] + rect.L()[d]) / 2.0
		mid += v * v
	}
	rectangleHeight := math.Sqrt(mid)

	var behind, front plotter.XYs
	for i := 0; i < data.Rows(); i++ {
		row := data.Row(i)
		var sum float64
		for _, d := range other {
			sum += row[d] * row[d]
		}
		pt := struct{ X, Y float64 }{X: row[pair.a], Y: row[pair.b]}
		if math.Sqrt(sum) <= rectangleHeight {
			behind = append(behind, pt)
		} else {
			front = append(front, pt)
		}
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = featureNames[pair.a]
	p.Y.Label.Text = featureNames[pair.b]

	behindScatter, err := plotter.NewScatter(behind)
	if err != nil {
		return nil, fmt.Errorf("behind scatter: %w", err)
	}
	behindScatter.Color = color.RGBA{B: 200, A: 255}

	face := plotter.XYs{
		{X: rect.L()[pair.a], Y: rect.L()[pair.b]},
		{X: rect.U()[pair.a], Y: rect.L()[pair.b]},
		{X: rect.U()[pair.a], Y: rect.U()[pair.b]},
		{X: rect.L()[pair.a], Y: rect.U()[pair.b]},
	}
	poly, err := plotter.NewPolygon(face)
	if err != nil {
		return nil, fmt.Errorf("rectangle polygon: %w", err)
	}
	poly.Color = color.RGBA{R: 255, A: 128}
	poly.LineStyle.Color = color.RGBA{R: 255, A: 255}

	frontScatter, err := plotter.NewScatter(front)
	if err != nil {
		return nil, fmt.Errorf("front scatter: %w", err)
	}
	frontScatter.Color = color.RGBA{R: 255, G: 165, A: 255}

	p.Add(behindScatter, poly, frontScatter)

	return p, nil
}
