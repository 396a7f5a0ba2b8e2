package balance

import (
	"strings"

	"github.com/2beens/fitforge/internal/gymstats/muscles"
)

// Rule inspects a report and returns a recommendation, or false when it does not apply.
type Rule struct {
	Name  string
	Check func(r Report) (string, bool)
}

const wellBalanced = "Muscle groups are well balanced - maintain current routine"

// DefaultRules returns the recommendation rules in the order they are evaluated.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name: "undertrained",
			Check: func(r Report) (string, bool) {
				groups := groupsWithStatus(r, StatusUndertrained)
				if len(groups) == 0 {
					return "", false
				}
				return "Focus on " + strings.Join(groups, ", ") + " in upcoming workouts", true
			},
		},
		{
			Name: "overtrained",
			Check: func(r Report) (string, bool) {
				groups := groupsWithStatus(r, StatusOvertrained)
				if len(groups) == 0 {
					return "", false
				}
				return "Consider reducing volume for " + strings.Join(groups, ", "), true
			},
		},
		{
			Name: "chest_back",
			Check: func(r Report) (string, bool) {
				chest, _ := r.Group(muscles.Chest)
				back, _ := r.Group(muscles.Back)
				if chest.Percentage > back.Percentage+8 {
					return "Address chest/back imbalance - add more pulling exercises", true
				}
				return "", false
			},
		},
		{
			Name: "leg_day",
			Check: func(r Report) (string, bool) {
				if !r.HasData {
					return "", false
				}
				upper, legs := 0.0, 0.0
				for _, gr := range r.Groups {
					switch {
					case gr.Group.IsUpperBody():
						upper += gr.Percentage
					case gr.Group == muscles.Legs:
						legs = gr.Percentage
					}
				}
				if upper > 3*legs {
					return "Don't skip leg day - increase lower body training", true
				}
				return "", false
			},
		},
	}
}

func (a *Analyzer) recommend(r Report) []string {
	var recommendations []string
	for _, rule := range a.rules {
		if rec, ok := rule.Check(r); ok {
			recommendations = append(recommendations, rec)
		}
	}
	if len(recommendations) == 0 {
		recommendations = append(recommendations, wellBalanced)
	}
	return recommendations
}

func groupsWithStatus(r Report, status Status) []string {
	var groups []string
	for _, gr := range r.Groups {
		if gr.Status == status {
			groups = append(groups, strings.ToLower(gr.Group.String()))
		}
	}
	return groups
}
