package analyzer

import (
	"fmt"
	"math"

	"github.com/moodpath/backend/internal/models"
	"github.com/moodpath/backend/internal/stats"
)

// Weather relates mood to the weather conditions captured with entries.
// It emits a best-vs-worst condition insight at the base sample size, and
// a stricter confidence-weighted impact insight for conditions with a
// larger sample.
func Weather(s Snapshot) []models.Insight {
	withWeather := make([]models.MoodEntry, 0, len(s.Entries))
	for _, e := range s.Entries {
		if w := models.SanitizeWeather(e.Weather); w != nil && w.Condition != "" {
			withWeather = append(withWeather, e)
		}
	}

	groups := stats.GroupAverage(withWeather, func(e models.MoodEntry) string {
		return e.Weather.Condition
	}, minPerCondition)

	var insights []models.Insight
	if gap := bestWorstCondition(withWeather, groups); gap != nil {
		insights = append(insights, *gap)
	}
	if impact := conditionImpact(withWeather, groups); impact != nil {
		insights = append(insights, *impact)
	}
	if temp := temperatureCorrelation(s.Entries); temp != nil {
		insights = append(insights, *temp)
	}
	return insights
}

func bestWorstCondition(entries []models.MoodEntry, groups map[string]stats.Group) *models.Insight {
	if len(groups) < 2 {
		return nil
	}

	var best, worst string
	bestAvg, worstAvg := -1.0, 5.0
	for _, cond := range sortedKeys(groups) {
		g := groups[cond]
		if g.Average > bestAvg {
			bestAvg = g.Average
			best = cond
		}
		if g.Average < worstAvg {
			worstAvg = g.Average
			worst = cond
		}
	}

	if best == worst || bestAvg-worstAvg < weatherGapThreshold {
		return nil
	}

	return &models.Insight{
		ID:          insightID("weather", best, worst),
		Analyzer:    "weather",
		Title:       "Weather Affects Your Mood",
		Description: fmt.Sprintf("You tend to feel better on %s days compared to %s days.", best, worst),
		ActionItem:  fmt.Sprintf("Be aware that weather may affect how you feel and plan mood-boosting activities on %s days.", worst),
		Category:    models.InsightCategoryPattern,
		Priority:    models.PriorityMedium,
		SampleSize:  groups[best].Count + groups[worst].Count,
		CreatedAt:   latestTimestamp(entriesWithCondition(entries, best, worst)),
		Related:     &models.RelatedContext{Kind: models.RelatedWeather, Value: best},
	}
}

// conditionImpact is the stricter variant: it requires a larger sample per
// condition and reports the condition that pulls mood furthest from
// neutral, weighted by how much evidence backs it.
func conditionImpact(entries []models.MoodEntry, groups map[string]stats.Group) *models.Insight {
	var condition string
	var impact float64
	var avg float64
	for _, cond := range sortedKeys(groups) {
		g := groups[cond]
		if g.Count < minPerConditionStrict {
			continue
		}
		distance := math.Abs(g.Average - models.MoodOkay.Score())
		if distance > impact {
			impact = distance
			condition = cond
			avg = g.Average
		}
	}

	if condition == "" || impact < weatherGapThreshold {
		return nil
	}

	direction := "positive"
	if avg < models.MoodOkay.Score() {
		direction = "negative"
	}

	confidence := 0.5 + float64(groups[condition].Count)/20
	if confidence > 0.95 {
		confidence = 0.95
	}

	return &models.Insight{
		ID:          insightID("weather", "impact", condition),
		Analyzer:    "weather",
		Title:       fmt.Sprintf("%s Weather Stands Out", titleCase(condition)),
		Description: fmt.Sprintf("%s weather tends to have a %s impact on your mood.", titleCase(condition), direction),
		Category:    models.InsightCategoryPattern,
		Priority:    models.PriorityLow,
		SampleSize:  groups[condition].Count,
		Confidence:  confidence,
		CreatedAt:   latestTimestamp(entriesWithCondition(entries, condition)),
		Related:     &models.RelatedContext{Kind: models.RelatedWeather, Value: condition},
	}
}

// temperatureCorrelation relates recorded temperature to mood across all
// entries carrying weather data. Entries where every temperature reads the
// same carry no signal and are skipped before correlating.
func temperatureCorrelation(entries []models.MoodEntry) *models.Insight {
	var temps, moods []float64
	var sample []models.MoodEntry
	for _, e := range entries {
		w := models.SanitizeWeather(e.Weather)
		if w == nil {
			continue
		}
		temps = append(temps, w.Temperature)
		moods = append(moods, e.Mood.Score())
		sample = append(sample, e)
	}

	if len(temps) < stats.MinPairsForCorrelation || stats.Variance(temps) == 0 {
		return nil
	}

	r := stats.PearsonCorrelation(temps, moods)
	if math.Abs(r) < tempCorrThreshold {
		return nil
	}

	direction := "warmer"
	if r < 0 {
		direction = "cooler"
	}

	return &models.Insight{
		ID:          insightID("weather", "temperature", direction),
		Analyzer:    "weather",
		Title:       "Temperature Tracks Your Mood",
		Description: fmt.Sprintf("Your mood tends to be better on %s days.", direction),
		ActionItem:  fmt.Sprintf("On days that aren't %s, plan something indoors that you enjoy.", direction),
		Category:    models.InsightCategoryPattern,
		Priority:    models.PriorityLow,
		SampleSize:  len(temps),
		Confidence:  math.Abs(r),
		CreatedAt:   latestTimestamp(sample),
	}
}

func entriesWithCondition(entries []models.MoodEntry, conditions ...string) []models.MoodEntry {
	out := make([]models.MoodEntry, 0, len(entries))
	for _, e := range entries {
		if e.Weather == nil {
			continue
		}
		for _, c := range conditions {
			if e.Weather.Condition == c {
				out = append(out, e)
				break
			}
		}
	}
	return out
}
