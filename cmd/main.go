package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/richard-senior/plp/internal/logger"
	"github.com/richard-senior/plp/pkg/predictor"
)

func main() {
	// Configure logging
	logger.SetShowDateTime(true)

	if len(os.Args) < 2 {
		usage()
		return
	}

	logger.Info("Starting github.com/richard-senior/plp application")

	var err error
	switch os.Args[1] {
	case "predict":
		err = predictCommand(os.Args[2:], false)
	case "predict-db":
		err = predictCommand(os.Args[2:], true)
	case "batch":
		err = batchCommand(os.Args[2:])
	case "snapshot":
		err = snapshotCommand(os.Args[2:])
	default:
		usage()
		return
	}

	if err != nil {
		logger.Error("Command failed:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  plp predict <home> <away>     predict from the embedded team table")
	fmt.Println("  plp predict-db <home> <away>  predict from the sqlite store and record the result")
	fmt.Println("  plp batch <file>              predict every match in a JSON request file")
	fmt.Println("  plp snapshot <path>           write the embedded table as a compressed snapshot")
}

// predictCommand runs a single prediction and prints it as JSON
func predictCommand(args []string, useStore bool) error {
	if len(args) < 2 {
		return fmt.Errorf("predict requires home and away team names")
	}

	var provider predictor.StatsProvider
	if useStore {
		storeProvider, err := predictor.NewStoreProvider()
		if err != nil {
			return fmt.Errorf("failed to open team store: %w", err)
		}
		defer predictor.CloseDatabase()
		provider = storeProvider
	} else {
		provider = predictor.NewStaticProvider()
	}

	p := predictor.NewPredictor(provider)
	prediction, err := p.PredictMatch(args[0], args[1])
	if err != nil {
		return err
	}

	if useStore {
		if _, err := predictor.RecordPrediction(prediction); err != nil {
			logger.Warn("Could not record prediction", err)
		}
	}

	return printJSON(prediction)
}

// batchRequestFile is the shape of the JSON file consumed by the batch command
type batchRequestFile struct {
	Matches []predictor.MatchRequest `json:"matches"`
}

// batchCommand predicts every match in a request file, continuing past
// individual failures
func batchCommand(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("batch requires a request file path")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read request file: %w", err)
	}

	var request batchRequestFile
	if err := json.Unmarshal(data, &request); err != nil {
		return fmt.Errorf("failed to parse request file: %w", err)
	}
	if len(request.Matches) == 0 {
		return fmt.Errorf("missing matches array in request")
	}

	p := predictor.NewPredictor(nil)
	results := p.PredictBatch(request.Matches)

	return printJSON(map[string]any{
		"predictions": results,
		"total":       len(results),
	})
}

// snapshotCommand writes the embedded table to disk as brotli-compressed JSON
func snapshotCommand(args []string) error {
	path := predictor.Config.PlpCachePath + "teams.json.br"
	if len(args) > 0 {
		path = args[0]
	}

	provider := predictor.NewStaticProvider()
	table := make(map[string]*predictor.TeamStats)
	for _, name := range provider.TeamNames() {
		table[name] = provider.FetchTeamStats(name)
	}

	if err := predictor.WriteStatsSnapshot(path, table); err != nil {
		return err
	}

	logger.Info("Snapshot written", path)
	return nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
