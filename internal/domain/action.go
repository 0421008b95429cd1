package domain

// ActionCategory identifies the family of desktop actions a command maps to.
type ActionCategory string

// Recognized categories, in rule-table order.
const (
	CategoryClick      ActionCategory = "click"
	CategoryType       ActionCategory = "type"
	CategoryKey        ActionCategory = "key"
	CategoryScroll     ActionCategory = "scroll"
	CategoryMove       ActionCategory = "move"
	CategoryScreenshot ActionCategory = "screenshot"
)

// Categories returns the recognized categories in the order rules are
// consulted. Presentation surfaces iterate this instead of a map so output
// ordering stays stable.
func Categories() []ActionCategory {
	return []ActionCategory{
		CategoryClick,
		CategoryType,
		CategoryKey,
		CategoryScroll,
		CategoryMove,
		CategoryScreenshot,
	}
}

// MouseButton selects which mouse button a click uses.
type MouseButton string

// Supported mouse buttons.
const (
	ButtonLeft  MouseButton = "left"
	ButtonRight MouseButton = "right"
)

// Action is the structured payload of an interpreted command. Each category
// has concrete variants; the dispatcher switches on the concrete type instead
// of inspecting loose parameter maps.
type Action interface {
	Category() ActionCategory
}

// ClickAction clicks at an absolute screen position.
type ClickAction struct {
	X      int
	Y      int
	Button MouseButton
	Double bool
}

// Category implements Action.
func (ClickAction) Category() ActionCategory { return CategoryClick }

// TypeAction types a quoted literal exactly as captured.
type TypeAction struct {
	Text string
}

// Category implements Action.
func (TypeAction) Category() ActionCategory { return CategoryType }

// PressKeyAction presses a single canonical key.
type PressKeyAction struct {
	Key string
}

// Category implements Action.
func (PressKeyAction) Category() ActionCategory { return CategoryKey }

// PressComboAction presses a two-key combination in the captured order.
type PressComboAction struct {
	Keys [2]string
}

// Category implements Action.
func (PressComboAction) Category() ActionCategory { return CategoryKey }

// ScrollAction turns the wheel. Direction travels as captured; validation
// belongs to the actuator.
type ScrollAction struct {
	Direction string
	Amount    int
}

// Category implements Action.
func (ScrollAction) Category() ActionCategory { return CategoryScroll }

// MoveAction moves the pointer to an absolute screen position.
type MoveAction struct {
	X int
	Y int
}

// Category implements Action.
func (MoveAction) Category() ActionCategory { return CategoryMove }

// ScreenshotAction captures the whole screen.
type ScreenshotAction struct{}

// Category implements Action.
func (ScreenshotAction) Category() ActionCategory { return CategoryScreenshot }
