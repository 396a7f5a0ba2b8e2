package muscles

import (
	"strings"
)

// Key returns the lookup key for a muscle name as it appears in exercise data,
// e.g. "Pectoralis Major", "pectoralis_major" and "Pectoralis-Major" all map to "pectoralis_major".
func Key(name string) string {
	name = strings.TrimSpace(strings.ToLower(name))
	name = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '\t':
			return '_'
		}
		return r
	}, name)
	for strings.Contains(name, "__") {
		name = strings.ReplaceAll(name, "__", "_")
	}
	return strings.Trim(name, "_")
}

var displayNames = map[string]string{
	"pectoralis_major":     "Chest",
	"pectoralis_minor":     "Chest",
	"triceps_brachii":      "Triceps",
	"biceps_brachii":       "Biceps",
	"deltoids":             "Shoulders",
	"shoulders":            "Shoulders",
	"anterior_deltoids":    "Front Shoulders",
	"anterior_deltoid":     "Front Shoulders",
	"medial_deltoid":       "Side Shoulders",
	"rear_deltoids":        "Rear Shoulders",
	"posterior_deltoid":    "Rear Shoulders",
	"latissimus_dorsi":     "Lats",
	"quadriceps":           "Quads",
	"hamstrings":           "Hamstrings",
	"gastrocnemius":        "Calves",
	"soleus":               "Calves",
	"calves":               "Calves",
	"gluteus_maximus":      "Glutes",
	"glutes":               "Glutes",
	"erector_spinae":       "Lower Back",
	"lower_back":           "Lower Back",
	"rectus_abdominis":     "Abs",
	"transverse_abdominis": "Abs",
	"core":                 "Core",
	"core_stabilizers":     "Core",
	"obliques":             "Obliques",
	"trapezius":            "Traps",
	"middle_trapezius":     "Traps",
	"lower_trapezius":      "Traps",
	"rhomboids":            "Rhomboids",
	"grip_forearms":        "Forearms",
	"forearm_flexors":      "Forearms",
	"forearm_extensors":    "Forearms",
	"brachialis":           "Brachialis",
	"brachioradialis":      "Forearms",
	"levator_scapulae":     "Neck",
	"rotator_cuff":         "Rotator Cuff",
	"serratus_anterior":    "Serratus",
	"hip_flexors":          "Hip Flexors",
}

// DisplayName returns the human friendly name for a muscle. Unknown muscles
// are returned with underscores replaced by spaces.
func DisplayName(name string) string {
	if dn, ok := displayNames[Key(name)]; ok {
		return dn
	}
	return strings.TrimSpace(strings.ReplaceAll(name, "_", " "))
}
