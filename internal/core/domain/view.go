package domain

// Action names an operation the renderer forwards to the state machine.
type Action string

const (
	ActionStart            Action = "start"
	ActionSkipWelcome      Action = "skip_welcome"
	ActionSelectGoal       Action = "select_goal"
	ActionSelectCategory   Action = "select_category"
	ActionSelectSector     Action = "select_sector"
	ActionSelectSectorDir  Action = "select_sector_direct"
	ActionSkipSector       Action = "skip_sector"
	ActionContinueFromTips Action = "continue_from_tips"
	ActionToggleMode       Action = "toggle_mode"
	ActionGoBack           Action = "go_back"
	ActionReset            Action = "reset"
	ActionGoPro            Action = "go_pro"
	ActionFirstValue       Action = "first_value_action"
)

// ActionInput carries the user intent and its argument, if any.
type ActionInput struct {
	Action   Action
	Goal     string
	Category string
	Sector   string
	Kind     string
}

// ScreenView is the read model handed to the renderer.
type ScreenView struct {
	State     OnboardingState `json:"state"`
	Location  string          `json:"location"`
	CanGoBack bool            `json:"canGoBack"`
	CanToggle bool            `json:"canToggle"`

	// Set on sector-specific only. MissingCategory marks the terminal
	// "no category" sub-state whose only affordance is going back.
	Category        *CategorySummary `json:"category,omitempty"`
	Sectors         []Sector         `json:"sectors,omitempty"`
	MissingCategory bool             `json:"missingCategory,omitempty"`

	// SelectedSector is the catalog entry of the selected sector; nil on a
	// catalog miss so screens fall back to their empty state.
	SelectedSector *Sector `json:"selectedSector,omitempty"`
}

// ActionResult reports whether an action changed the flow and the view after it.
type ActionResult struct {
	Applied bool       `json:"applied"`
	View    ScreenView `json:"view"`
}
