package news

// kindNames are the external (script and file) names of every non-null kind,
// in Kind order starting at KindRide.
var kindNames = [...]string{
	"attraction", "peep_on_attraction", "peep", "money", "blank", "research", "guests", "award", "chart",
}

// KindName returns the external name of k, or "" for KindNull and out of
// range values.
func KindName(k Kind) string {
	i := int(k) - 1
	if i < 0 || i >= len(kindNames) {
		return ""
	}
	return kindNames[i]
}

// ParseKindName maps an external name back to a Kind. Unknown names map to
// KindBlank.
func ParseKindName(name string) Kind {
	for i, n := range kindNames {
		if n == name {
			return KindRide + Kind(i)
		}
	}
	return KindBlank
}
