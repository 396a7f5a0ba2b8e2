package muscles

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Role describes how strongly a muscle is recruited by an exercise.
type Role string

const (
	RolePrimary    Role = "primary"
	RoleSecondary  Role = "secondary"
	RoleStabilizer Role = "stabilizer"
)

// ClampEngagement bounds an engagement percentage to [0, 100].
// The second return value is false for NaN and infinities, which must be skipped.
func ClampEngagement(pct float64) (float64, bool) {
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return 0, false
	}
	if pct < 0 {
		return 0, true
	}
	if pct > 100 {
		return 100, true
	}
	return pct, true
}

// RoleOf buckets an engagement percentage: above 50 is primary, 20 to 50 secondary.
func RoleOf(pct float64) Role {
	pct, _ = ClampEngagement(pct)
	switch {
	case pct > 50:
		return RolePrimary
	case pct >= 20:
		return RoleSecondary
	default:
		return RoleStabilizer
	}
}

// Engagement is a single muscle entry of an exercise profile.
type Engagement struct {
	Muscle     string  `json:"muscle"`
	Percentage float64 `json:"percentage"`
	Role       Role    `json:"role"`
}

// ParseEngagement parses the compact textual engagement format used by the exercise
// data set, e.g. "Pectoralis_Major:_85%,_Triceps_Brachii:_25%". Malformed entries are skipped.
func ParseEngagement(s string) map[string]float64 {
	engagement := make(map[string]float64)
	for _, part := range strings.Split(s, ",") {
		name, pctStr, found := strings.Cut(part, ":")
		if !found {
			continue
		}
		name = strings.Trim(name, " _\t")
		pctStr = strings.Trim(pctStr, " _%\t")
		if name == "" || pctStr == "" {
			continue
		}
		pct, err := strconv.ParseFloat(pctStr, 64)
		if err != nil {
			continue
		}
		pct, ok := ClampEngagement(pct)
		if !ok {
			continue
		}
		engagement[name] = pct
	}
	return engagement
}

// Profile returns the engagement entries sorted by percentage, highest first.
func Profile(engagement map[string]float64) []Engagement {
	profile := make([]Engagement, 0, len(engagement))
	for muscle, pct := range engagement {
		pct, ok := ClampEngagement(pct)
		if !ok {
			continue
		}
		profile = append(profile, Engagement{
			Muscle:     muscle,
			Percentage: pct,
			Role:       RoleOf(pct),
		})
	}
	sort.Slice(profile, func(i, j int) bool {
		if profile[i].Percentage != profile[j].Percentage {
			return profile[i].Percentage > profile[j].Percentage
		}
		return profile[i].Muscle < profile[j].Muscle
	})
	return profile
}
