package models

// StyleAnalysis holds the attributes pulled out of a stylist reply.
// A nil field means the reply did not mention it.
type StyleAnalysis struct {
	BestColor            *string `json:"best_color"`
	WorstColor           *string `json:"worst_color"`
	LightTonesPercent    *int    `json:"light_tones_percent"`
	DarkTonesPercent     *int    `json:"dark_tones_percent"`
	WesternPercent       *int    `json:"western_percent"`
	EasternPercent       *int    `json:"eastern_percent"`
	PersonalizedAnalysis *string `json:"personalized_analysis"`
}
