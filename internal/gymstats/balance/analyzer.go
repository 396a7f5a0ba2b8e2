package balance

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/2beens/fitforge/internal/gymstats/muscles"
	"github.com/2beens/fitforge/internal/gymstats/recovery"
	"github.com/2beens/fitforge/internal/gymstats/training"
	"github.com/2beens/fitforge/internal/gymstats/volume"
)

const (
	DefaultTolerance   = 5.0
	DefaultNeglectDays = 7
)

type Status string

const (
	StatusBalanced     Status = "balanced"
	StatusUndertrained Status = "undertrained"
	StatusOvertrained  Status = "overtrained"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// DefaultIdealDistribution returns the target share of total volume per group, in percent.
func DefaultIdealDistribution() map[muscles.Group]float64 {
	return map[muscles.Group]float64{
		muscles.Chest:     18,
		muscles.Back:      22,
		muscles.Shoulders: 15,
		muscles.Arms:      20,
		muscles.Legs:      20,
		muscles.Core:      5,
	}
}

type GroupReport struct {
	Group            muscles.Group `json:"group"`
	TotalVolume      float64       `json:"totalVolume"`
	WeeklyVolume     float64       `json:"weeklyVolume"`
	Sessions         int           `json:"sessions"`
	LastTrained      *time.Time    `json:"lastTrained,omitempty"`
	DaysSinceTrained int           `json:"daysSinceTrained"`
	Percentage       float64       `json:"percentage"`
	IdealPercentage  float64       `json:"idealPercentage"`
	Difference       float64       `json:"difference"`
	Status           Status        `json:"status"`
	Recommendation   string        `json:"recommendation"`
}

type Report struct {
	AnalysisDate        time.Time     `json:"analysisDate"`
	WindowDays          int           `json:"windowDays"`
	HasData             bool          `json:"hasData"`
	TotalVolume         float64       `json:"totalVolume"`
	Groups              []GroupReport `json:"groups"`
	BalancedCount       int           `json:"balancedCount"`
	ImbalancedCount     int           `json:"imbalancedCount"`
	OverallBalanceScore int           `json:"overallBalanceScore"`
	RiskLevel           RiskLevel     `json:"riskLevel"`
	Recommendations     []string      `json:"recommendations"`
}

// Group returns the report of a single group.
func (r Report) Group(g muscles.Group) (GroupReport, bool) {
	for _, gr := range r.Groups {
		if gr.Group == g {
			return gr, true
		}
	}
	return GroupReport{}, false
}

// Analyzer compares the volume distribution over anatomical groups against an ideal one.
type Analyzer struct {
	ideal       map[muscles.Group]float64
	tolerance   float64
	neglectDays int
	rules       []Rule
}

func NewAnalyzer(ideal map[muscles.Group]float64, tolerance float64, neglectDays int) *Analyzer {
	defaults := DefaultIdealDistribution()
	merged := make(map[muscles.Group]float64, len(defaults))
	for g, pct := range defaults {
		if custom, ok := ideal[g]; ok && custom >= 0 {
			pct = custom
		}
		merged[g] = pct
	}
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	if neglectDays <= 0 {
		neglectDays = DefaultNeglectDays
	}
	return &Analyzer{
		ideal:       merged,
		tolerance:   tolerance,
		neglectDays: neglectDays,
		rules:       DefaultRules(),
	}
}

func (a *Analyzer) Ideal() map[muscles.Group]float64 {
	ideal := make(map[muscles.Group]float64, len(a.ideal))
	for g, pct := range a.ideal {
		ideal[g] = pct
	}
	return ideal
}

// Classify applies the tolerance band around the ideal percentage.
func (a *Analyzer) Classify(actual, ideal float64) Status {
	switch {
	case actual < ideal-a.tolerance:
		return StatusUndertrained
	case actual > ideal+a.tolerance:
		return StatusOvertrained
	default:
		return StatusBalanced
	}
}

type groupAccumulator struct {
	volume      float64
	sessions    int
	lastTrained time.Time
}

// Analyze aggregates weighted volume per group over the sessions in the window.
func (a *Analyzer) Analyze(history []training.WorkoutSession, catalog training.Catalog, windowDays int, now time.Time) Report {
	if windowDays <= 0 {
		windowDays = recovery.DefaultWindowDays
	}

	acc := make(map[muscles.Group]*groupAccumulator, len(muscles.AllGroups))
	for _, g := range muscles.AllGroups {
		acc[g] = &groupAccumulator{}
	}

	for _, session := range recovery.Window(history, windowDays, now) {
		date := session.Date()
		raw := volume.ComputeExerciseVolumes(session.Exercises, catalog)
		touched := make(map[muscles.Group]bool)
		for muscle := range raw {
			if g, ok := muscles.GroupOf(muscle); ok {
				touched[g] = true
			}
		}
		for g, v := range volume.GroupVolumes(raw) {
			if !touched[g] {
				continue
			}
			ga := acc[g]
			ga.volume += v
			ga.sessions++
			if date.After(ga.lastTrained) {
				ga.lastTrained = date
			}
		}
	}

	total := 0.0
	for _, ga := range acc {
		total += ga.volume
	}

	report := Report{
		AnalysisDate: now,
		WindowDays:   windowDays,
		HasData:      total > 0,
		TotalVolume:  total,
		Groups:       make([]GroupReport, 0, len(muscles.AllGroups)),
	}

	for _, g := range muscles.AllGroups {
		ga := acc[g]
		gr := GroupReport{
			Group:            g,
			TotalVolume:      ga.volume,
			WeeklyVolume:     ga.volume * 7 / float64(windowDays),
			Sessions:         ga.sessions,
			DaysSinceTrained: recovery.NeverTrainedDays,
			IdealPercentage:  a.ideal[g],
		}
		actual := 0.0
		if total > 0 {
			actual = 100 * ga.volume / total
		}
		gr.Percentage = roundTo(actual, 1)
		gr.Difference = roundTo(actual-gr.IdealPercentage, 1)
		if !ga.lastTrained.IsZero() {
			last := ga.lastTrained
			gr.LastTrained = &last
			gr.DaysSinceTrained = recovery.DaysRested(&last, now)
		}

		// classified on the unrounded share, the reported one is for display
		gr.Status = a.Classify(actual, gr.IdealPercentage)
		switch gr.Status {
		case StatusUndertrained:
			gr.Recommendation = fmt.Sprintf("Increase training volume by %d%%", int(math.Round(gr.IdealPercentage-actual)))
		case StatusOvertrained:
			gr.Recommendation = fmt.Sprintf("Reduce training volume by %d%%", int(math.Round(actual-gr.IdealPercentage)))
		default:
			gr.Recommendation = "Maintain current training volume"
		}

		// neglect only overrides an otherwise balanced group
		if gr.Status == StatusBalanced && (gr.LastTrained == nil || gr.DaysSinceTrained > a.neglectDays) {
			gr.Status = StatusUndertrained
			if gr.LastTrained == nil {
				gr.Recommendation = fmt.Sprintf("Not trained in the last %d days - schedule soon", windowDays)
			} else {
				gr.Recommendation = fmt.Sprintf("Haven't trained in %d days - schedule soon", gr.DaysSinceTrained)
			}
		}

		if gr.Status == StatusBalanced {
			report.BalancedCount++
		}
		report.Groups = append(report.Groups, gr)
	}

	report.ImbalancedCount = len(report.Groups) - report.BalancedCount
	report.OverallBalanceScore = int(math.Round(100 * float64(report.BalancedCount) / float64(len(report.Groups))))
	switch {
	case report.ImbalancedCount >= 4:
		report.RiskLevel = RiskHigh
	case report.ImbalancedCount >= 2:
		report.RiskLevel = RiskMedium
	default:
		report.RiskLevel = RiskLow
	}
	report.Recommendations = a.recommend(report)

	sort.SliceStable(report.Groups, func(i, j int) bool {
		return report.Groups[i].TotalVolume > report.Groups[j].TotalVolume
	})

	return report
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
