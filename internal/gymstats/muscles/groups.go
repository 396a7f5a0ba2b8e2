package muscles

import "strings"

// Group is one of the six anatomical groups used for balance analysis.
type Group string

const (
	Chest     Group = "Chest"
	Back      Group = "Back"
	Shoulders Group = "Shoulders"
	Arms      Group = "Arms"
	Legs      Group = "Legs"
	Core      Group = "Core"
)

// AllGroups lists the groups in their canonical order.
var AllGroups = []Group{Chest, Back, Shoulders, Arms, Legs, Core}

func (g Group) String() string {
	return string(g)
}

func (g Group) IsValid() bool {
	switch g {
	case Chest, Back, Shoulders, Arms, Legs, Core:
		return true
	default:
		return false
	}
}

// IsUpperBody reports whether g counts towards upper body volume.
func (g Group) IsUpperBody() bool {
	switch g {
	case Chest, Back, Shoulders, Arms:
		return true
	default:
		return false
	}
}

var membership = map[string]Group{
	"pectoralis_major":  Chest,
	"pectoralis_minor":  Chest,
	"serratus_anterior": Chest,

	"latissimus_dorsi": Back,
	"rhomboids":        Back,
	"trapezius":        Back,
	"middle_trapezius": Back,
	"lower_trapezius":  Back,
	"levator_scapulae": Back,

	"deltoids":          Shoulders,
	"shoulders":         Shoulders,
	"anterior_deltoid":  Shoulders,
	"anterior_deltoids": Shoulders,
	"medial_deltoid":    Shoulders,
	"posterior_deltoid": Shoulders,
	"rear_deltoids":     Shoulders,
	"rotator_cuff":      Shoulders,

	"biceps_brachii":    Arms,
	"triceps_brachii":   Arms,
	"brachialis":        Arms,
	"brachioradialis":   Arms,
	"anconeus":          Arms,
	"forearm_flexors":   Arms,
	"forearm_extensors": Arms,
	"grip_forearms":     Arms,

	"quadriceps":      Legs,
	"hamstrings":      Legs,
	"glutes":          Legs,
	"gluteus_maximus": Legs,
	"calves":          Legs,
	"gastrocnemius":   Legs,
	"soleus":          Legs,
	"hip_flexors":     Legs,

	"rectus_abdominis":     Core,
	"transverse_abdominis": Core,
	"obliques":             Core,
	"lower_back":           Core,
	"erector_spinae":       Core,
	"core":                 Core,
	"core_stabilizers":     Core,
}

// keywords are checked in order when a muscle is missing from the membership table.
// Legs come before Core so that e.g. rectus_femoris is not taken for an abdominal.
var keywords = []struct {
	keyword string
	group   Group
}{
	{"pectoral", Chest},
	{"chest", Chest},
	{"deltoid", Shoulders},
	{"shoulder", Shoulders},
	{"latissimus", Back},
	{"trapezius", Back},
	{"rhomboid", Back},
	{"bicep", Arms},
	{"tricep", Arms},
	{"forearm", Arms},
	{"brachi", Arms},
	{"quadricep", Legs},
	{"femoris", Legs},
	{"hamstring", Legs},
	{"glute", Legs},
	{"calf", Legs},
	{"calves", Legs},
	{"adductor", Legs},
	{"abductor", Legs},
	{"lower_back", Core},
	{"back", Back},
	{"core", Core},
	{"abdomin", Core},
	{"abs", Core},
	{"oblique", Core},
	{"rectus", Core},
}

// GroupOf maps a muscle name to its anatomical group.
func GroupOf(name string) (Group, bool) {
	key := Key(name)
	if key == "" {
		return "", false
	}
	if g, ok := membership[key]; ok {
		return g, true
	}
	for _, kw := range keywords {
		if strings.Contains(key, kw.keyword) {
			return kw.group, true
		}
	}
	return "", false
}
