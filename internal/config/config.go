package config

import (
	"flag"

	"distgen-go/pkg/gammaar"
)

type Config struct {
	Seed             int64
	NSamples         int
	TriA, TriB, TriC float64
	ParetoXm         float64
	ParetoAlpha      float64
	PDFPoints        int
	HistBins         int
	ConsoleBins      int
	OutputDir        string
	PlotFormat       string
	SaveCSV          bool
}

func Parse() *Config {
	cfg := &Config{}

	// define flags
	flag.Int64Var(&cfg.Seed, "seed", 42, "seed of the uniform stream shared by all generators")
	flag.IntVar(&cfg.NSamples, "n-samples", gammaar.DefaultProposals, "number of samples to generate (proposal count for gamma)")
	flag.Float64Var(&cfg.TriA, "tri-a", 1, "lower bound of the triangular distribution")
	flag.Float64Var(&cfg.TriB, "tri-b", 7, "upper bound of the triangular distribution")
	flag.Float64Var(&cfg.TriC, "tri-c", 2, "mode of the triangular distribution")
	flag.Float64Var(&cfg.ParetoXm, "pareto-xm", 3, "scale (minimum value) of the pareto distribution")
	flag.Float64Var(&cfg.ParetoAlpha, "pareto-alpha", 2, "shape (tail index) of the pareto distribution")
	flag.IntVar(&cfg.PDFPoints, "pdf-points", 1000, "number of points on the theoretical curves")
	flag.IntVar(&cfg.HistBins, "hist-bins", 50, "number of histogram bins on the plots")
	flag.IntVar(&cfg.ConsoleBins, "console-bins", 20, "number of bins for the console histograms")
	flag.StringVar(&cfg.OutputDir, "output-dir", "./", "output directory for plots and CSV files")
	flag.StringVar(&cfg.PlotFormat, "plot-format", "png", "plot file format, png or pdf")
	flag.BoolVar(&cfg.SaveCSV, "save-csv", false, "save the generated samples as CSV files")
	flag.Parse()

	return cfg
}
