// Package stats holds the statistics primitives shared by all analyzers.
// Every function is total over well-formed input: non-finite values are
// filtered before aggregation and underpowered groups are omitted rather
// than reported with low confidence.
package stats

import (
	"math"

	"github.com/moodpath/backend/internal/models"
)

// MinPairsForCorrelation is the smallest sample for which a Pearson
// coefficient is reported. Below it the correlation is 0.
const MinPairsForCorrelation = 6

// Group holds the aggregate for one key of a grouped average.
type Group struct {
	Average float64
	Count   int
}

// GroupAverage buckets entries by keyFn and averages the mood score per
// bucket. Keys whose group size falls below minCount are omitted. Entries
// for which keyFn returns an empty key are skipped.
func GroupAverage(entries []models.MoodEntry, keyFn func(models.MoodEntry) string, minCount int) map[string]Group {
	sums := make(map[string]float64)
	counts := make(map[string]int)

	for _, e := range entries {
		key := keyFn(e)
		if key == "" {
			continue
		}
		score := e.Mood.Score()
		if math.IsNaN(score) || math.IsInf(score, 0) {
			continue
		}
		sums[key] += score
		counts[key]++
	}

	out := make(map[string]Group)
	for key, count := range counts {
		if count < minCount {
			continue
		}
		out[key] = Group{Average: sums[key] / float64(count), Count: count}
	}
	return out
}

// Mean averages a slice, ignoring non-finite values. Returns 0 for an
// empty slice.
func Mean(values []float64) float64 {
	var sum float64
	var n int
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// Variance computes the population variance, ignoring non-finite values.
func Variance(values []float64) float64 {
	mean := Mean(values)
	var sum float64
	var n int
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		d := v - mean
		sum += d * d
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// PearsonCorrelation computes the Pearson coefficient over paired samples.
// Returns 0 when fewer than MinPairsForCorrelation finite pairs remain or
// when either dimension has zero variance.
func PearsonCorrelation(xs, ys []float64) float64 {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}

	fx := make([]float64, 0, n)
	fy := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if math.IsNaN(xs[i]) || math.IsInf(xs[i], 0) || math.IsNaN(ys[i]) || math.IsInf(ys[i], 0) {
			continue
		}
		fx = append(fx, xs[i])
		fy = append(fy, ys[i])
	}

	if len(fx) < MinPairsForCorrelation {
		return 0
	}

	meanX := Mean(fx)
	meanY := Mean(fy)

	var numerator, denomX, denomY float64
	for i := range fx {
		dx := fx[i] - meanX
		dy := fy[i] - meanY
		numerator += dx * dy
		denomX += dx * dx
		denomY += dy * dy
	}

	if denomX == 0 || denomY == 0 {
		return 0
	}

	return numerator / math.Sqrt(denomX*denomY)
}
