package histplot

import (
	"image/color"
	"io"
	"log"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
)

// Overlay is the theoretical curve drawn over the sampled histogram.
type Overlay struct {
	Xs        []float64
	Densities []float64
	Label     string
}

// Config controls histogram rendering.
type Config struct {
	Title string
	Bins  int
	// XMax clips the x axis to [0, XMax] when positive; zero means
	// autoscale. Heavy-tailed samples need the clip to keep the bulk
	// of the histogram visible.
	XMax float64
}

// MakeHistogramPlot renders a density-normalized histogram of samples
// with the theoretical curve on top and writes it to filename. A .pdf
// extension selects a PDF canvas, anything else gets PNG.
func MakeHistogramPlot(samples []float64, overlay Overlay, cfg Config, filename string) {
	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "Density"

	hist, err := plotter.NewHist(plotter.Values(samples), cfg.Bins)
	if err != nil {
		log.Panic(err)
	}
	hist.Normalize(1)
	hist.FillColor = color.RGBA{G: 160, A: 150}
	p.Add(hist)

	pts := make(plotter.XYs, len(overlay.Xs))
	for i := range pts {
		pts[i].X = overlay.Xs[i]
		pts[i].Y = overlay.Densities[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		log.Panic(err)
	}
	line.Color = color.RGBA{R: 200, A: 255}
	line.Width = vg.Points(1.5)
	p.Add(line)
	p.Legend.Add(overlay.Label, line)
	p.Legend.Top = true

	if cfg.XMax > 0 {
		p.X.Min = 0
		p.X.Max = cfg.XMax
	}

	width, height := vg.Points(450), vg.Points(300)

	if filepath.Ext(filename) == ".pdf" {
		img := vgpdf.New(width, height)
		p.Draw(draw.New(img))
		writeCanvas(img, filename)
		return
	}
	img := vgimg.New(width, height)
	p.Draw(draw.New(img))
	writeCanvas(vgimg.PngCanvas{Canvas: img}, filename)
}

func writeCanvas(c io.WriterTo, filename string) {
	w, err := os.Create(filename)
	if err != nil {
		log.Panic(err)
	}
	defer w.Close()

	if _, err = c.WriteTo(w); err != nil {
		log.Panic(err)
	}
}
