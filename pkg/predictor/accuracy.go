package predictor

import "fmt"

// PredictionAccuracy holds accuracy metrics for a single settled prediction
type PredictionAccuracy struct {
	HomeTeam          string
	AwayTeam          string
	ActualHomeGoals   int
	ActualAwayGoals   int
	PredictedScore    string
	FavouredOutcome   string
	ActualOutcome     string
	ExactScoreCorrect bool
	ResultCorrect     bool
}

// EvaluatePrediction compares a ledger row with the real result of the same
// fixture. Returns nil when the result is for a different pairing.
func EvaluatePrediction(record *PredictionRecord, result *Result) *PredictionAccuracy {
	if record.HomeTeam != result.HomeTeam || record.AwayTeam != result.AwayTeam {
		return nil
	}

	accuracy := &PredictionAccuracy{
		HomeTeam:        record.HomeTeam,
		AwayTeam:        record.AwayTeam,
		ActualHomeGoals: result.HomeGoals,
		ActualAwayGoals: result.AwayGoals,
		PredictedScore:  record.MostLikelyScore,
		FavouredOutcome: favouredOutcome(record),
		ActualOutcome:   matchResult(result.HomeGoals, result.AwayGoals),
	}

	accuracy.ExactScoreCorrect = record.MostLikelyScore == fmt.Sprintf("%d-%d", result.HomeGoals, result.AwayGoals)
	accuracy.ResultCorrect = accuracy.FavouredOutcome == accuracy.ActualOutcome

	return accuracy
}

// AggregateAccuracy holds aggregate prediction accuracy statistics
type AggregateAccuracy struct {
	TotalMatches       int
	ExactScoreAccuracy float64 // Percentage
	ResultAccuracy     float64 // Percentage
}

// EvaluateAllPredictions evaluates accuracy across multiple settled
// predictions. Records without a matching result are skipped. Returns nil
// when nothing could be evaluated.
func EvaluateAllPredictions(records []*PredictionRecord, results []Result) *AggregateAccuracy {
	var accuracies []*PredictionAccuracy

	for _, record := range records {
		for i := range results {
			if accuracy := EvaluatePrediction(record, &results[i]); accuracy != nil {
				accuracies = append(accuracies, accuracy)
				break
			}
		}
	}

	if len(accuracies) == 0 {
		return nil
	}

	aggregate := &AggregateAccuracy{
		TotalMatches: len(accuracies),
	}

	var exactScoreCount, resultCorrectCount int
	for _, accuracy := range accuracies {
		if accuracy.ExactScoreCorrect {
			exactScoreCount++
		}
		if accuracy.ResultCorrect {
			resultCorrectCount++
		}
	}

	aggregate.ExactScoreAccuracy = float64(exactScoreCount) / float64(aggregate.TotalMatches) * 100
	aggregate.ResultAccuracy = float64(resultCorrectCount) / float64(aggregate.TotalMatches) * 100

	return aggregate
}

// favouredOutcome returns "H", "D" or "A" for the ledger row's highest
// probability outcome
func favouredOutcome(record *PredictionRecord) string {
	if record.HomeWinProbability >= record.DrawProbability && record.HomeWinProbability >= record.AwayWinProbability {
		return "H"
	}
	if record.AwayWinProbability >= record.DrawProbability {
		return "A"
	}
	return "D"
}

// matchResult returns "H" for home win, "D" for draw, "A" for away win
func matchResult(homeGoals, awayGoals int) string {
	if homeGoals > awayGoals {
		return "H"
	} else if homeGoals < awayGoals {
		return "A"
	}
	return "D"
}
