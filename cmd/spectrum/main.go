// Command spectrum synthesizes a multi-tone test signal, runs it
// through the fixed-point FFT engine, and prints the per-bin
// magnitudes above a threshold.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/fixfft"
)

func main() {
	var (
		size      = flag.Int("n", 256, "transform size (power of two)")
		toneList  = flag.String("tones", "1:8000,10:4000", "comma-separated bin:amplitude pairs")
		dc        = flag.Int("dc", 1000, "DC offset")
		halfScale = flag.Bool("halfscale", true, "halve butterfly outputs every stage (unity gain)")
		truncate  = flag.Bool("truncate", false, "legacy truncating rounding mode")
		threshold = flag.Float64("threshold", 100, "only print bins with magnitude above this")
	)
	flag.Parse()

	tones, err := parseTones(*toneList)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	opts := []fixfft.Option{}
	if *halfScale {
		opts = append(opts, fixfft.WithScaling(fixfft.ScaleHalfEveryStage))
	}

	if *truncate {
		opts = append(opts, fixfft.WithRounding(fixfft.RoundTruncate))
	}

	engine, err := fixfft.New(*size, opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	src := make([]fixfft.Sample, *size)
	for i := range src {
		x := float64(*dc)
		for bin, amplitude := range tones {
			x += amplitude * math.Cos(2.0*math.Pi*float64(bin)*float64(i)/float64(*size))
		}

		src[i].Re = int16(math.Round(x))
	}

	dst := make([]fixfft.Sample, *size)
	if err := engine.Transform(dst, src); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("n=%d dc=%d tones=%s\n", *size, *dc, *toneList)
	fmt.Printf("%6s  %8s  %8s  %10s\n", "bin", "real", "imag", "magnitude")

	for k, s := range dst {
		magnitude := math.Hypot(float64(s.Re), float64(s.Im))
		if magnitude < *threshold {
			continue
		}

		fmt.Printf("%6d  %8d  %8d  %10.1f\n", k, s.Re, s.Im, magnitude)
	}
}

func parseTones(list string) (map[int]float64, error) {
	tones := make(map[int]float64)

	for _, pair := range strings.Split(list, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		bin, amplitude, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("bad tone %q, want bin:amplitude", pair)
		}

		b, err := strconv.Atoi(bin)
		if err != nil {
			return nil, fmt.Errorf("bad bin %q: %v", bin, err)
		}

		a, err := strconv.ParseFloat(amplitude, 64)
		if err != nil {
			return nil, fmt.Errorf("bad amplitude %q: %v", amplitude, err)
		}

		tones[b] = a
	}

	return tones, nil
}
