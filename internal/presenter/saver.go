package presenter

import (
	"encoding/csv"
	"os"
	"strconv"
)

// SaveSamplesToCSV writes a sample collection to a one-column CSV file
// with the given header.
func SaveSamplesToCSV(samples []float64, header, filename string) error {
	// Create the CSV file
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{header}); err != nil {
		return err
	}
	for _, v := range samples {
		if err := writer.Write([]string{strconv.FormatFloat(v, 'f', -1, 64)}); err != nil {
			return err
		}
	}

	return nil
}
