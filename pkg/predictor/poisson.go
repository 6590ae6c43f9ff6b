package predictor

import (
	"fmt"
	"math"
	"sort"
)

// PoissonPMF calculates the Poisson probability P(X = k) where X ~ Poisson(lambda)
func PoissonPMF(k int, lambda float64) float64 {
	if k < 0 {
		return 0
	}
	if lambda <= 0 {
		if k == 0 {
			return 1.0
		}
		return 0
	}

	// Use log space for numerical stability
	logProb := float64(k)*math.Log(lambda) - lambda - logFactorial(k)
	return math.Exp(logProb)
}

// logFactorial computes log(n!) for Poisson calculations
func logFactorial(n int) float64 {
	if n <= 1 {
		return 0
	}
	result := 0.0
	for i := 2; i <= n; i++ {
		result += math.Log(float64(i))
	}
	return result
}

// scorelineMatrix builds the joint probability matrix for all scorelines with
// both goal counts in [0, maxGoals). Goal counts are modelled as independent
// Poisson processes; the tail beyond maxGoals is truncated, so entries do not
// sum to exactly 1.
func scorelineMatrix(homeExpected, awayExpected float64, maxGoals int) [][]float64 {
	matrix := make([][]float64, maxGoals)
	for homeGoals := 0; homeGoals < maxGoals; homeGoals++ {
		matrix[homeGoals] = make([]float64, maxGoals)
		for awayGoals := 0; awayGoals < maxGoals; awayGoals++ {
			matrix[homeGoals][awayGoals] = PoissonPMF(homeGoals, homeExpected) * PoissonPMF(awayGoals, awayExpected)
		}
	}
	return matrix
}

// matchOutcomeProbabilities aggregates the scoreline matrix into raw (0..1)
// win/draw/loss probabilities: lower triangle is a home win, the diagonal a
// draw, the upper triangle an away win
func matchOutcomeProbabilities(matrix [][]float64) (homeWin, draw, awayWin float64) {
	for homeGoals := range matrix {
		for awayGoals, prob := range matrix[homeGoals] {
			if homeGoals > awayGoals {
				homeWin += prob
			} else if homeGoals == awayGoals {
				draw += prob
			} else {
				awayWin += prob
			}
		}
	}
	return homeWin, draw, awayWin
}

// topScorelines ranks every scoreline in the matrix by probability descending
// and returns the n most likely, each with its probability as a percentage
// rounded to 2 decimal places. The sort is stable over matrix iteration order
// (home goals ascending, then away goals ascending) so equal probabilities
// resolve deterministically.
func topScorelines(matrix [][]float64, n int) []Scoreline {
	scorelines := make([]Scoreline, 0, len(matrix)*len(matrix))
	for homeGoals := range matrix {
		for awayGoals, prob := range matrix[homeGoals] {
			scorelines = append(scorelines, Scoreline{
				Score:       fmt.Sprintf("%d-%d", homeGoals, awayGoals),
				Probability: prob,
			})
		}
	}

	sort.SliceStable(scorelines, func(i, j int) bool {
		return scorelines[i].Probability > scorelines[j].Probability
	})

	if n > len(scorelines) {
		n = len(scorelines)
	}

	top := scorelines[:n]
	for i := range top {
		top[i].Probability = roundToDecimalPlaces(top[i].Probability*100.0, 2)
	}
	return top
}

// roundToDecimalPlaces rounds a value to the given number of decimal places
func roundToDecimalPlaces(value float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(value*shift) / shift
}
