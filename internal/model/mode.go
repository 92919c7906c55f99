package model

// TestModeID identifies one of the fixed diagnostic depths
type TestModeID string

const (
	ModeCore TestModeID = "CORE"
	ModeDeep TestModeID = "DEEP"
	ModeFull TestModeID = "FULL"
)

// TestMode describes one diagnostic depth. RequestedCount is what the mode
// asks for; ActualCount is what the sampler could deliver for the chosen
// demographic and is written back when the quiz starts.
type TestMode struct {
	ID             TestModeID `json:"id"`
	RequestedCount int        `json:"requestedCount"`
	ActualCount    int        `json:"actualCount"`
	Label          string     `json:"label"`
	BrandName      string     `json:"brandName"`
	EstimatedTime  string     `json:"estimatedTime"`
	Recommended    bool       `json:"recommended,omitempty"`
}

// DefaultModes returns the three selectable depths
func DefaultModes() []TestMode {
	return []TestMode{
		{ID: ModeCore, RequestedCount: 50, Label: "Fast, essential diagnosis", BrandName: "Core Scan", EstimatedTime: "5m"},
		{ID: ModeDeep, RequestedCount: 70, Label: "Precise in-depth analysis", BrandName: "Deep Analysis", EstimatedTime: "10m", Recommended: true},
		{ID: ModeFull, RequestedCount: 90, Label: "Complete profiling", BrandName: "Full Profiling", EstimatedTime: "15m"},
	}
}

// ModeByID looks up a default mode by id
func ModeByID(id TestModeID) (TestMode, bool) {
	for _, m := range DefaultModes() {
		if m.ID == id {
			return m, true
		}
	}
	return TestMode{}, false
}
