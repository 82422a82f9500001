package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"strconv"
)

// This is a standalone utility to create a synthetic plot_data.csv with
// clustered 2D embeddings and simulated human label noise.

var classes = []string{
	"airplane", "automobile", "bird", "cat", "deer",
	"dog", "frog", "horse", "ship", "truck",
}

func main() {
	// Parse command line arguments
	outputFile := flag.String("output", "plot_data.csv", "Path to output the sample file")
	numRows := flag.Int("rows", 1000, "Number of rows to generate")
	noiseRate := flag.Float64("noise", 0.2, "Fraction of rows whose noisy label differs from the original label")
	seed := flag.Int64("seed", 1, "Random seed")
	flag.Parse()

	if *numRows <= 0 {
		fmt.Println("Error: -rows must be positive")
		flag.Usage()
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(*seed))

	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Printf("Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	header := []string{
		"url", "label_idx", "label_string", "noisy_label_idx", "noisy_label_string",
		"inclusion_prob", "exclusion_prob", "embeddings2d_x", "embeddings2d_y",
	}
	if err := writer.Write(header); err != nil {
		fmt.Printf("Error writing header: %v\n", err)
		os.Exit(1)
	}

	counters := make([]int, len(classes))
	flipped := 0
	for i := 0; i < *numRows; i++ {
		label := rng.Intn(len(classes))
		counters[label]++

		noisy := label
		if rng.Float64() < *noiseRate {
			noisy = (label + 1 + rng.Intn(len(classes)-1)) % len(classes)
			flipped++
		}

		// cluster centers sit on a circle, one per class
		angle := 2 * math.Pi * float64(label) / float64(len(classes))
		x := 10*math.Cos(angle) + rng.NormFloat64()*1.5
		y := 10*math.Sin(angle) + rng.NormFloat64()*1.5

		// flipped labels tend to get high scores from the quality model
		inclusion, exclusion := rng.Float64()*0.7, rng.Float64()*0.7
		if noisy != label {
			inclusion = 0.3 + rng.Float64()*0.7
			exclusion = 0.3 + rng.Float64()*0.7
		}

		record := []string{
			fmt.Sprintf("%s/%04d", classes[label], counters[label]),
			strconv.Itoa(label),
			classes[label],
			strconv.Itoa(noisy),
			classes[noisy],
			strconv.FormatFloat(inclusion, 'f', 4, 64),
			strconv.FormatFloat(exclusion, 'f', 4, 64),
			strconv.FormatFloat(x, 'f', 4, 64),
			strconv.FormatFloat(y, 'f', 4, 64),
		}
		if err := writer.Write(record); err != nil {
			fmt.Printf("Error writing row %d: %v\n", i, err)
			os.Exit(1)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		fmt.Printf("Error flushing output: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully wrote %d rows (%d flipped labels) to %s\n", *numRows, flipped, *outputFile)
}
