package predictor

import "fmt"

// PredictorConfig contains all configurable parameters that influence prediction outcomes
// This centralizes all magic numbers and constants for easy adjustment
type PredictorConfig struct {
	// Database and cache parameters
	PlpAssetsPath string // The base directory of assets relating to plp
	PlpCachePath  string // The location in which cached provider snapshots are stored
	PlpDbPath     string // The location of the plp sqlite database

	// === CORE PREDICTION PARAMETERS ===

	// League scale
	LeagueAverageGoals float64 // League-wide mean goals per game (default: 1.4)
	GoalScale          float64 // Converts normalized strengths back to goals/game (default: 1.4, same as LeagueAverageGoals deliberately)

	// Home advantage and form influence
	HomeAdvantage      float64 // Fixed home advantage multiplier (default: 1.3)
	HomeFormInfluence  float64 // Weight of home form in expected goals (default: 0.2)
	AwayFormInfluence  float64 // Weight of away form in expected goals (default: 0.1)

	// Scoreline matrix settings
	MaxGoals          int // Goal counts considered per side, 0..MaxGoals-1 (default: 6)
	TopScorelineCount int // Number of most likely scorelines reported (default: 5)

	// Expected goals clamping
	MinExpectedGoals float64 // Floor for expected goals (default: 0.5)
	MaxExpectedGoals float64 // Cap for expected goals (default: 4.0)

	// === FORM CALCULATION PARAMETERS ===

	// Weights applied to the most recent results, most recent first.
	// Normalization uses FormWinValue * sum(weights) as the maximum achievable score.
	FormWeights  []float64 // Recency weights (default: [0.4 0.3 0.2 0.1])
	FormWinValue float64   // Points for a win in the form sequence (default: 3)

	// === CONFIDENCE CALIBRATION ===

	ConfidenceMultiplier float64 // Spread-to-confidence multiplier (default: 150.0)
	MinConfidence        float64 // Confidence floor (default: 10.0)
	MaxConfidence        float64 // Confidence cap (default: 95.0)

	// === DEFAULT TEAM STATISTICS ===

	// Used when a provider cannot resolve a team
	DefaultGoalsPerGame         float64 // (default: 1.5)
	DefaultGoalsConcededPerGame float64 // (default: 1.5)
	DefaultForm                 []int   // (default: [1 1 1 1 1])

	// Division by zero protection
	MakeSensibleDefault float64 // Default value when division by zero occurs (default: 1.0)
}

// DefaultPredictorConfig returns the default configuration with all standard values
func DefaultPredictorConfig() *PredictorConfig {
	plpAssetsPath := "/Users/richard/plp/.plp/"
	config := &PredictorConfig{

		PlpAssetsPath: plpAssetsPath,
		PlpCachePath:  plpAssetsPath + "cache/",
		PlpDbPath:     plpAssetsPath + "plp.db",

		// === CORE PREDICTION PARAMETERS ===
		LeagueAverageGoals: 1.4,
		GoalScale:          1.4,
		HomeAdvantage:      1.3,
		HomeFormInfluence:  0.2,
		AwayFormInfluence:  0.1,
		MaxGoals:           6,
		TopScorelineCount:  5,
		MinExpectedGoals:   0.5,
		MaxExpectedGoals:   4.0,

		// === FORM CALCULATION PARAMETERS ===
		FormWeights:  []float64{0.4, 0.3, 0.2, 0.1},
		FormWinValue: 3.0,

		// === CONFIDENCE CALIBRATION ===
		ConfidenceMultiplier: 150.0,
		MinConfidence:        10.0,
		MaxConfidence:        95.0,

		// === DEFAULT TEAM STATISTICS ===
		DefaultGoalsPerGame:         1.5,
		DefaultGoalsConcededPerGame: 1.5,
		DefaultForm:                 []int{1, 1, 1, 1, 1},

		MakeSensibleDefault: 1.0,
	}

	return config
}

// Global configuration instance
var Config *PredictorConfig

// init initializes the global configuration with default values
func init() {
	Config = DefaultPredictorConfig()
}

// UpdateConfig allows updating the global configuration
func UpdateConfig(newConfig *PredictorConfig) {
	Config = newConfig
}

// === CONFIGURATION VALIDATION ===

// ValidateConfig ensures all configuration values are within reasonable ranges
func ValidateConfig(config *PredictorConfig) error {
	if config.LeagueAverageGoals <= 0 {
		return fmt.Errorf("LeagueAverageGoals must be positive, got: %f", config.LeagueAverageGoals)
	}

	if config.HomeAdvantage < 1.0 || config.HomeAdvantage > 2.0 {
		return fmt.Errorf("HomeAdvantage should be between 1.0 and 2.0, got: %f", config.HomeAdvantage)
	}

	if config.MaxGoals < 3 {
		return fmt.Errorf("MaxGoals should be at least 3 to capture realistic scores, got: %d", config.MaxGoals)
	}

	if config.TopScorelineCount > config.MaxGoals*config.MaxGoals {
		return fmt.Errorf("TopScorelineCount cannot exceed the scoreline matrix size, got: %d", config.TopScorelineCount)
	}

	if config.MinExpectedGoals <= 0 || config.MinExpectedGoals >= config.MaxExpectedGoals {
		return fmt.Errorf("expected goals clamp is invalid: [%f, %f]", config.MinExpectedGoals, config.MaxExpectedGoals)
	}

	if len(config.FormWeights) == 0 {
		return fmt.Errorf("FormWeights must not be empty")
	}
	for i, w := range config.FormWeights {
		if w < 0 {
			return fmt.Errorf("FormWeights[%d] must be non-negative, got: %f", i, w)
		}
	}

	if config.MinConfidence >= config.MaxConfidence {
		return fmt.Errorf("confidence bounds are invalid: [%f, %f]", config.MinConfidence, config.MaxConfidence)
	}

	return nil
}

// === HELPER FUNCTIONS FOR EASY ACCESS ===

// GetLeagueAverageGoals returns the fixed league average used for strength normalization
func GetLeagueAverageGoals() float64 {
	return Config.LeagueAverageGoals
}

// GetHomeAdvantage returns the home advantage multiplier
func GetHomeAdvantage() float64 {
	return Config.HomeAdvantage
}

// GetMakeSensibleDefault returns the default value for division by zero protection
func GetMakeSensibleDefault() float64 {
	return Config.MakeSensibleDefault
}

// makeSensible ensures a value is not zero to avoid division by zero using configuration
func makeSensible(value float64) float64 {
	if value == 0.0 {
		return GetMakeSensibleDefault()
	}
	return value
}
