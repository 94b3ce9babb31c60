package presenter

import (
	"distgen-go/pkg/histplot"
)

// GenerateHistogram renders the histogram-plus-theoretical-overlay
// figure for a sampled collection.
func GenerateHistogram(outputPath string, title string, samples []float64, xs, densities []float64, bins int, xMax float64) {
	histplot.MakeHistogramPlot(samples, histplot.Overlay{
		Xs:        xs,
		Densities: densities,
		Label:     "Theoretical PDF",
	}, histplot.Config{
		Title: title,
		Bins:  bins,
		XMax:  xMax,
	}, outputPath)
}
