package park

// Warning is a kind of guest complaint that is reported to the player.
type Warning uint8

const (
	WarningHungry Warning = iota
	WarningThirsty
	WarningLitter
	WarningVandalism
	WarningBathroom
	WarningNauseous
	WarningLost
	warningCount
)

func (w Warning) String() string {
	switch w {
	case WarningHungry:
		return "hungry"
	case WarningThirsty:
		return "thirsty"
	case WarningLitter:
		return "litter"
	case WarningVandalism:
		return "vandalism"
	case WarningBathroom:
		return "bathroom"
	case WarningNauseous:
		return "nauseous"
	case WarningLost:
		return "lost"
	default:
		return "unknown"
	}
}

// DefaultWarningCooldown is how many ticks a warning stays muted after it
// has been reported.
const DefaultWarningCooldown = 2048

// WarningThrottle keeps one countdown per warning kind.
type WarningThrottle struct {
	counters [warningCount]uint16
	cooldown uint16
}

// NewWarningThrottle creates a throttle. A zero cooldown uses the default.
func NewWarningThrottle(cooldown uint16) *WarningThrottle {
	if cooldown == 0 {
		cooldown = DefaultWarningCooldown
	}
	return &WarningThrottle{cooldown: cooldown}
}

// Allow reports whether w may be reported now, and if so mutes it for the
// cooldown.
func (t *WarningThrottle) Allow(w Warning) bool {
	if w >= warningCount || t.counters[w] != 0 {
		return false
	}
	t.counters[w] = t.cooldown
	return true
}

// Remaining returns the ticks left before w can be reported again.
func (t *WarningThrottle) Remaining(w Warning) uint16 {
	if w >= warningCount {
		return 0
	}
	return t.counters[w]
}

// Tick counts every active throttle down by one.
func (t *WarningThrottle) Tick() {
	for i := range t.counters {
		if t.counters[i] > 0 {
			t.counters[i]--
		}
	}
}

// Reset clears every throttle.
func (t *WarningThrottle) Reset() {
	t.counters = [warningCount]uint16{}
}
