package services

import (
	"regexp"
	"strconv"
	"strings"

	"paletteandfit/internal/models"
)

var (
	bestColorRe   = regexp.MustCompile(`(?i)Best color: ?([^\n]+)`)
	worstColorRe  = regexp.MustCompile(`(?i)Worst color: ?([^\n]+)`)
	lightTonesRe  = regexp.MustCompile(`(?i)Light tones: ?(\d+)`)
	darkTonesRe   = regexp.MustCompile(`(?i)Dark tones: ?(\d+)`)
	westernRe     = regexp.MustCompile(`(?i)Western styles?: ?(\d+)`)
	easternRe     = regexp.MustCompile(`(?i)Eastern styles?: ?(\d+)`)
	personalTipRe = regexp.MustCompile(`(?i)Personalized tip: ?([^\n]+)`)
)

// ExtractStyle pulls the structured attributes out of a free-text stylist
// reply. Only the first match of each pattern counts. When the reply has no
// personalized tip the whole reply becomes the analysis.
func ExtractStyle(text string) models.StyleAnalysis {
	a := models.StyleAnalysis{
		BestColor:            matchString(bestColorRe, text),
		WorstColor:           matchString(worstColorRe, text),
		LightTonesPercent:    matchInt(lightTonesRe, text),
		DarkTonesPercent:     matchInt(darkTonesRe, text),
		WesternPercent:       matchInt(westernRe, text),
		EasternPercent:       matchInt(easternRe, text),
		PersonalizedAnalysis: matchString(personalTipRe, text),
	}
	if a.PersonalizedAnalysis == nil || *a.PersonalizedAnalysis == "" {
		raw := text
		a.PersonalizedAnalysis = &raw
	}
	return a
}

func matchString(re *regexp.Regexp, text string) *string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	v := strings.TrimSpace(m[1])
	return &v
}

func matchInt(re *regexp.Regexp, text string) *int {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &n
}
