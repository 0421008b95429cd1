package domain

// Intent is the structured interpretation of one user command.
type Intent struct {
	Category   ActionCategory
	Action     Action
	Confidence float64
	// RawCommand holds the trimmed, lowercased form of the input the rule
	// table matched against.
	RawCommand string
}

// ActionType labels what the actuator actually performed. It is finer
// grained than ActionCategory: the key category splits into key_press and
// key_combination.
type ActionType string

// Action-type labels reported in results.
const (
	ActionTypeClick      ActionType = "click"
	ActionTypeType       ActionType = "type"
	ActionTypeKeyPress   ActionType = "key_press"
	ActionTypeKeyCombo   ActionType = "key_combination"
	ActionTypeScroll     ActionType = "scroll"
	ActionTypeMouseMove  ActionType = "mouse_move"
	ActionTypeScreenshot ActionType = "screenshot"
	ActionTypeUnknown    ActionType = "unknown"
)

// ActionResult reports the outcome of dispatching a single action. Dispatch
// always yields a result value; failures are reported here, never raised.
type ActionResult struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Type    ActionType `json:"action_type"`
}

// CommandOutcome is the presentation-facing result of processing one raw
// command end to end.
type CommandOutcome struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	Screenshot string `json:"screenshot,omitempty"`
}

// Outcome status labels.
const (
	StatusSuccess     = "Success"
	StatusError       = "Error"
	StatusParseFailed = "Unable to parse command"
)
