package presenter

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const barWidth = 50

// PrintFirstFive prints the leading values of a sample collection.
func PrintFirstFive(name string, samples []float64) {
	n := 5
	if len(samples) < n {
		n = len(samples)
	}
	fmt.Printf("First five %s samples: %.4f\n", name, samples[:n])
}

// PrintSummary prints the sample mean and variance next to the
// theoretical values. An empty collection is reported as such; the
// acceptance-rejection generator can legitimately accept nothing.
func PrintSummary(name string, samples []float64, theoreticalMean, theoreticalVariance float64) {
	if len(samples) == 0 {
		fmt.Printf("%s: no samples, skipping summary\n", name)
		return
	}
	fmt.Printf("%s Sampled Data: Mean = %.2f, Variance = %.2f\n",
		name, stat.Mean(samples, nil), stat.Variance(samples, nil))
	fmt.Printf("%s Theoretical: Mean = %.2f, Variance = %.2f\n",
		name, theoreticalMean, theoreticalVariance)
}

// PrintConsoleHistogram renders a text histogram of samples over bins
// equal-width intervals, with bars scaled to the fullest bin.
func PrintConsoleHistogram(samples []float64, bins int) {
	if len(samples) == 0 || bins <= 0 {
		return
	}
	lo := floats.Min(samples)
	hi := floats.Max(samples)
	if lo == hi {
		fmt.Printf("%.2f: %d\n", lo, len(samples))
		return
	}

	hist := make([]int, bins)
	for _, v := range samples {
		bin := int((v - lo) / (hi - lo) * float64(bins))
		if bin == bins {
			bin = bins - 1
		}
		hist[bin]++
	}

	maxCount := 0
	for _, count := range hist {
		if count > maxCount {
			maxCount = count
		}
	}

	width := (hi - lo) / float64(bins)
	for i, count := range hist {
		bar := strings.Repeat("█", int(float64(count)/float64(maxCount)*barWidth))
		fmt.Printf("%8.2f-%-8.2f: %s %d\n", lo+width*float64(i), lo+width*float64(i+1), bar, count)
	}
}
