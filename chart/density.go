// Package chart renders the comparison figure for a pricing run.
package chart

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/banachtech/antivar/mc"
)

// Density draws the sampling densities implied by the antithetic and crude
// estimates, a normal curve around each price with its standard error, plus
// a dashed vertical line at the reference value. The image format follows
// the file extension.
func Density(anti, crude mc.Result, ref float64, file string) error {
	if !(anti.SE > 0.0) || !(crude.SE > 0.0) {
		return fmt.Errorf("degenerate standard error: %v, %v", anti.SE, crude.SE)
	}
	if math.IsNaN(ref) || math.IsInf(ref, 0) {
		return fmt.Errorf("bad reference value: %v", ref)
	}

	p := plot.New()
	p.Title.Text = "Estimator sampling densities"
	p.X.Label.Text = "Price"
	p.Y.Label.Text = "Density"
	p.Add(plotter.NewGrid())

	da := distuv.Normal{Mu: anti.Price, Sigma: anti.SE}
	dc := distuv.Normal{Mu: crude.Price, Sigma: crude.SE}

	fa := plotter.NewFunction(da.Prob)
	fa.Color = color.RGBA{B: 255, A: 255}
	fa.Width = vg.Points(2)
	fa.Samples = 500

	fc := plotter.NewFunction(dc.Prob)
	fc.Color = color.RGBA{R: 255, A: 255}
	fc.Width = vg.Points(2)
	fc.Samples = 500

	top := math.Max(da.Prob(da.Mu), dc.Prob(dc.Mu))
	refLine, err := plotter.NewLine(plotter.XYs{{X: ref, Y: 0.0}, {X: ref, Y: top}})
	if err != nil {
		return err
	}
	refLine.Color = plotutil.Color(2)
	refLine.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(fa, fc, refLine)
	p.Legend.Add("antithetic", fa)
	p.Legend.Add("crude", fc)
	p.Legend.Add("reference", refLine)
	p.Legend.Top = true

	// Window wide enough for both curves and the reference line.
	lo := math.Min(da.Mu-4.0*da.Sigma, dc.Mu-4.0*dc.Sigma)
	hi := math.Max(da.Mu+4.0*da.Sigma, dc.Mu+4.0*dc.Sigma)
	p.X.Min = math.Min(lo, ref)
	p.X.Max = math.Max(hi, ref)
	p.Y.Min = 0.0
	p.Y.Max = 1.1 * top

	return p.Save(8*vg.Inch, 6*vg.Inch, file)
}
