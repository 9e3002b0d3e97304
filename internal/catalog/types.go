package catalog

// Level places a template in the three-tier goal hierarchy.
type Level int

const (
	LevelLifeGoal    Level = 1 // long-horizon root goal
	LevelAchievement Level = 2 // mid-tier skill milestone
	LevelAction      Level = 3 // leaf trackable action
)

// Nature says whether a goal measures a directly-controlled behavior
// or a partly-external result. Set on every L2/L3 template; L1
// templates may leave it empty.
type Nature string

const (
	NatureInput   Nature = "input"
	NatureOutcome Nature = "outcome"
)

// TemplateType governs what kind of goal a template generates: a
// staged one-time target or a recurring weekly-frequency target.
type TemplateType string

const (
	TypeMilestoneLadder TemplateType = "milestone_ladder"
	TypeHabitRamp       TemplateType = "habit_ramp"
)

// Path is the editorial two-path classification of L1 templates. It is
// a required tag on every L1 record, never derived from the data.
type Path string

const (
	PathOnePerson Path = "one_person"
	PathAbundance Path = "abundance"
	PathBoth      Path = "both"
)

// Display categories for L3 templates. Grouping only; the engines
// attach no behavioral weight to them beyond mind-map sort priority.
const (
	CategoryFieldWork    = "field_work"
	CategoryResults      = "results"
	CategoryIntimate     = "intimate"
	CategoryTexting      = "texting"
	CategoryDates        = "dates"
	CategoryRelationship = "relationship"
)

type Template struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	Level           Level        `json:"level"`
	Nature          Nature       `json:"nature,omitempty"`
	TemplateType    TemplateType `json:"templateType,omitempty"`
	DisplayCategory string       `json:"displayCategory,omitempty"`
	DefaultTarget   float64      `json:"defaultTarget,omitempty"`
	LinkedMetric    string       `json:"linkedMetric,omitempty"`
	Path            Path         `json:"path,omitempty"`
}

// Edge links a parent template to a child template. Edges are kept as
// a flat list so the catalog data stays serializable.
type Edge struct {
	ParentID string `json:"parentId"`
	ChildID  string `json:"childId"`
}

// LifeArea is a top-level category outside the goal hierarchy. Only
// the daygame area has a structured L1/L2/L3 catalog behind it; every
// other area is a flat list of freeform suggestions.
type LifeArea struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Color       string   `json:"color"`
	Icon        string   `json:"icon"`
	Suggestions []string `json:"suggestions"`
}
