package journal

import "time"

// EntryType discriminates the journal's tagged-union entry variants.
type EntryType string

const (
	TypeSkill       EntryType = "skill"
	TypeShadow      EntryType = "shadow"
	TypeSovereignty EntryType = "sovereignty"
	TypeLoop        EntryType = "loop"
	TypeCheckin     EntryType = "checkin"
	TypeNote        EntryType = "note"
	TypeSession     EntryType = "session"
)

// Intensity grades a skill activation or shadow detection.
// The empty value means "no intensity" (e.g. a shadow being cleared).
type Intensity string

const (
	IntensityNone Intensity = ""
	IntensityLow  Intensity = "low"
	IntensityMed  Intensity = "med"
	IntensityHigh Intensity = "high"
)

// SubAction distinguishes shadow entries: a shadow being flagged active
// versus a shadow being cleared.
type SubAction string

const (
	SubActionNone  SubAction = ""
	SubActionSet   SubAction = "set"
	SubActionClear SubAction = "clear"
)

// Well-known action values for non-skill, non-shadow entry types.
const (
	ActionChange      = "change"
	ActionPhaseChange = "phase_change"
	ActionCompleted   = "completed"
	ActionManual      = "manual"
	ActionStart       = "start"
)

// SovereigntyChange is the payload of a sovereignty entry.
// Values are clamped to [0,100] by the producing collaborator before
// logging; the journal does not re-clamp.
type SovereigntyChange struct {
	NewValue int `json:"newValue"`
	OldValue int `json:"oldValue"`
}

// LoopData is the payload of a loop phase_change entry.
type LoopData struct {
	Phase string `json:"phase"`
}

// CheckinData is the payload of a checkin entry. The entry's Action holds
// the question text; Answer holds the chosen response.
type CheckinData struct {
	Answer string `json:"answer"`
}

// ShadowState records one active shadow at session start.
type ShadowState struct {
	ID        string    `json:"id"`
	Intensity Intensity `json:"intensity"`
}

// SessionData is the payload of a session start entry, capturing the
// state snapshot the onboarding flow observed.
type SessionData struct {
	Sovereignty int           `json:"sovereignty"`
	Phase       string        `json:"phase,omitempty"`
	ShadowCount int           `json:"shadowCount"`
	Shadows     []ShadowState `json:"shadows,omitempty"`
}

// Entry is one record in the activity journal.
//
// Entries are write-once except for Note, which may be added, edited, or
// cleared after creation. Exactly one of the payload pointers is non-nil,
// matching Type; entries of types skill/shadow/note carry no payload.
type Entry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Type      EntryType `json:"type"`
	Action    string    `json:"action"`
	Intensity Intensity `json:"intensity,omitempty"`
	SubAction SubAction `json:"subAction,omitempty"`
	Note      string    `json:"note,omitempty"`

	Sovereignty *SovereigntyChange `json:"sovereignty,omitempty"`
	Loop        *LoopData          `json:"loop,omitempty"`
	Checkin     *CheckinData       `json:"checkin,omitempty"`
	Session     *SessionData       `json:"session,omitempty"`
}

// ByTimestampAscending reports whether a sorts strictly before b in
// chronological order, breaking timestamp ties by ID so analytic passes
// never depend on incidental slice order.
func ByTimestampAscending(a, b Entry) bool {
	if !a.Timestamp.Equal(b.Timestamp) {
		return a.Timestamp.Before(b.Timestamp)
	}
	return a.ID < b.ID
}
