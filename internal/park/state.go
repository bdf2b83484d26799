package park

// ScreenMode is what the game is currently showing.
type ScreenMode uint8

const (
	ScreenPlaying ScreenMode = iota
	ScreenTitleDemo
	ScreenScenarioEditor
	ScreenTrackDesigner
	ScreenTrackManager
)

func (m ScreenMode) String() string {
	switch m {
	case ScreenPlaying:
		return "PLAYING"
	case ScreenTitleDemo:
		return "TITLE_DEMO"
	case ScreenScenarioEditor:
		return "SCENARIO_EDITOR"
	case ScreenTrackDesigner:
		return "TRACK_DESIGNER"
	case ScreenTrackManager:
		return "TRACK_MANAGER"
	default:
		return "UNKNOWN"
	}
}

// State is the park-wide state shared by the simulation and the UI.
type State struct {
	Name string
	Date Date
	Mode ScreenMode
	Cash int64
}

// NewState creates a park in normal play mode at the start of year 1.
func NewState(name string) *State {
	return &State{Name: name, Mode: ScreenPlaying}
}

// MonthsElapsed implements the news clock.
func (s *State) MonthsElapsed() uint16 { return s.Date.MonthsElapsed }

// MonthTicks implements the news clock.
func (s *State) MonthTicks() uint16 { return s.Date.MonthTicks }

// ScreenMode implements the news clock.
func (s *State) ScreenMode() ScreenMode { return s.Mode }

// IsPlaying reports whether the game is in normal play mode.
func (s *State) IsPlaying() bool { return s.Mode == ScreenPlaying }
