package models

// Preference states. These are the stored wire values; existing snapshots
// depend on them.
const (
	StateUnknown     State = "unknown"
	StateAffirmative State = "on"
	StateNegative    State = "off"
)

// Snapshot defaults
const (
	DefaultTitle             = "Participant Options Manager"
	DefaultSubtitle          = "Manage participants and their preferences for different options"
	DefaultOptionsLabel      = "Options"
	DefaultParticipantsLabel = "Participants"
	DefaultStorageKey        = "participantOptionsData"
)

// Sort criteria
const (
	SortName        SortCriterion = "name"
	SortAffirmative SortCriterion = "yes"
	SortNegative    SortCriterion = "no"
	SortUnknown     SortCriterion = "unknown"
)

// Sort directions
const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// Label fields editable through PUT /labels/{field}
const (
	LabelTitle        = "title"
	LabelSubtitle     = "subtitle"
	LabelOptions      = "options"
	LabelParticipants = "participants"
)

// Domain types

// Entity is a named record with a generated id. Options and participants
// share the shape but live in separate lists with separate id spaces.
type Entity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Option = Entity

type Participant = Entity

// State is the tri-state preference for one option x participant cell.
type State string

var stateCycle = []State{StateUnknown, StateAffirmative, StateNegative}

// Next returns the state after one toggle: unknown -> on -> off -> unknown.
// Unrecognized values advance to unknown.
func (s State) Next() State {
	for i, st := range stateCycle {
		if st == s {
			return stateCycle[(i+1)%len(stateCycle)]
		}
	}
	return StateUnknown
}

// Normalize maps unrecognized values to unknown.
func (s State) Normalize() State {
	switch s {
	case StateAffirmative, StateNegative:
		return s
	default:
		return StateUnknown
	}
}

// Matrix maps optionID -> participantID -> state. Missing entries at either
// level read as unknown.
type Matrix map[string]map[string]State

// Get never panics on a nil matrix or a missing row.
func (m Matrix) Get(optionID, participantID string) State {
	row, ok := m[optionID]
	if !ok {
		return StateUnknown
	}
	return row[participantID].Normalize()
}

// Clone deep-copies the matrix.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for optionID, row := range m {
		cp := make(map[string]State, len(row))
		for participantID, st := range row {
			cp[participantID] = st
		}
		out[optionID] = cp
	}
	return out
}

// Snapshot is the complete persisted application state.
type Snapshot struct {
	Options           []Option      `json:"options"`
	Participants      []Participant `json:"participants"`
	Preferences       Matrix        `json:"preferences"`
	Title             string        `json:"title"`
	Subtitle          string        `json:"subtitle"`
	OptionsLabel      string        `json:"optionsLabel"`
	ParticipantsLabel string        `json:"participantsLabel"`
	SectionsCollapsed bool          `json:"sectionsCollapsed"`
}

// DefaultSnapshot is the empty state used on first start and whenever the
// stored blob cannot be read.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Options:           []Option{},
		Participants:      []Participant{},
		Preferences:       Matrix{},
		Title:             DefaultTitle,
		Subtitle:          DefaultSubtitle,
		OptionsLabel:      DefaultOptionsLabel,
		ParticipantsLabel: DefaultParticipantsLabel,
	}
}

// Clone deep-copies the snapshot so readers never alias board state.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Options = append([]Option{}, s.Options...)
	out.Participants = append([]Participant{}, s.Participants...)
	out.Preferences = s.Preferences.Clone()
	return out
}

// Summary counts states for one option across all current participants.
type Summary struct {
	Affirmative int `json:"on"`
	Negative    int `json:"off"`
	Unknown     int `json:"unknown"`
}

// Total is always the participant count at the time of summarizing.
func (s Summary) Total() int {
	return s.Affirmative + s.Negative + s.Unknown
}

type SortCriterion string

// Valid reports whether c is one of the four sort criteria.
func (c SortCriterion) Valid() bool {
	switch c {
	case SortName, SortAffirmative, SortNegative, SortUnknown:
		return true
	}
	return false
}

// DefaultDirection is ascending for name and descending for every count.
func (c SortCriterion) DefaultDirection() SortDirection {
	if c == SortName {
		return Ascending
	}
	return Descending
}

type SortDirection string

func (d SortDirection) Valid() bool {
	return d == Ascending || d == Descending
}

func (d SortDirection) Flip() SortDirection {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// Icon is the header indicator shown next to the active criterion.
func (d SortDirection) Icon() string {
	if d == Ascending {
		return "↑"
	}
	return "↓"
}

type SortSpec struct {
	Criterion SortCriterion `json:"criterion"`
	Direction SortDirection `json:"direction"`
}

// View types

type Cell struct {
	ParticipantID string `json:"participant_id"`
	State         State  `json:"state"`
}

type ResultRow struct {
	Option  Option  `json:"option"`
	Cells   []Cell  `json:"cells"`
	Summary Summary `json:"summary"`
}

// ResultsTable is the option x participant grid in display order.
type ResultsTable struct {
	OptionsLabel string            `json:"options_label"`
	Participants []Participant     `json:"participants"`
	Rows         []ResultRow       `json:"rows"`
	Sort         SortSpec          `json:"sort"`
	SortIcons    map[string]string `json:"sort_icons"`
	Empty        bool              `json:"empty"`
}

// Request types

type NameRequest struct {
	Name string `json:"name"`
}

type LabelRequest struct {
	Value string `json:"value"`
}

type SortRequest struct {
	Criterion SortCriterion `json:"criterion"`
}

// Response types

type EntityResponse struct {
	Entity  *Entity `json:"entity,omitempty"`
	Applied bool    `json:"applied"`
}

type DeleteResponse struct {
	ID      string `json:"id"`
	Applied bool   `json:"applied"`
}

type PreferenceResponse struct {
	OptionID      string `json:"option_id"`
	ParticipantID string `json:"participant_id"`
	State         State  `json:"state"`
}

type ToggleResponse struct {
	OptionID      string `json:"option_id"`
	ParticipantID string `json:"participant_id"`
	State         State  `json:"state"`
	Applied       bool   `json:"applied"`
}

type LabelResponse struct {
	Field   string `json:"field"`
	Value   string `json:"value"`
	Applied bool   `json:"applied"`
}

type SectionsResponse struct {
	SectionsCollapsed bool `json:"sectionsCollapsed"`
}

type SummaryResponse struct {
	OptionID string  `json:"option_id"`
	Summary  Summary `json:"summary"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
