package interpret

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/doeshing/intent-apparatus/internal/domain"
)

// extractAction converts the captures of a matched rule into a concrete
// action. The match slice comes from FindStringSubmatch on the trimmed
// original command, so quoted text keeps its case while key and direction
// tokens get normalized here. A returned error aborts the whole
// interpretation; rule scanning never resumes past a failed extraction.
func extractAction(kind extractorKind, match []string) (domain.Action, error) {
	switch kind {
	case extractCoordinates:
		x, y, err := coordinates(match)
		if err != nil {
			return nil, err
		}
		return domain.ClickAction{X: x, Y: y, Button: domain.ButtonLeft}, nil

	case extractRightCoordinates:
		x, y, err := coordinates(match)
		if err != nil {
			return nil, err
		}
		return domain.ClickAction{X: x, Y: y, Button: domain.ButtonRight}, nil

	case extractDoubleCoordinates:
		x, y, err := coordinates(match)
		if err != nil {
			return nil, err
		}
		return domain.ClickAction{X: x, Y: y, Button: domain.ButtonLeft, Double: true}, nil

	case extractMoveCoordinates:
		x, y, err := coordinates(match)
		if err != nil {
			return nil, err
		}
		return domain.MoveAction{X: x, Y: y}, nil

	case extractText:
		return domain.TypeAction{Text: match[1]}, nil

	case extractSingleKey:
		return domain.PressKeyAction{Key: canonicalKey(match[1])}, nil

	case extractKeyCombo:
		return domain.PressComboAction{
			Keys: [2]string{canonicalComboKey(match[1]), canonicalComboKey(match[2])},
		}, nil

	case extractDirection:
		amount := domain.DefaultScrollAmount
		if match[2] != "" {
			n, err := strconv.Atoi(match[2])
			if err != nil {
				return nil, fmt.Errorf("scroll amount %q: %w", match[2], err)
			}
			amount = n
		}
		return domain.ScrollAction{Direction: strings.ToLower(match[1]), Amount: amount}, nil

	case extractDirectionCount:
		n, err := strconv.Atoi(match[1])
		if err != nil {
			return nil, fmt.Errorf("scroll amount %q: %w", match[1], err)
		}
		return domain.ScrollAction{Direction: strings.ToLower(match[2]), Amount: n}, nil

	case extractSimple:
		return domain.ScreenshotAction{}, nil
	}

	return nil, fmt.Errorf("unhandled extractor kind %d", kind)
}

func coordinates(match []string) (int, int, error) {
	x, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, 0, fmt.Errorf("x coordinate %q: %w", match[1], err)
	}
	y, err := strconv.Atoi(match[2])
	if err != nil {
		return 0, 0, fmt.Errorf("y coordinate %q: %w", match[2], err)
	}
	return x, y, nil
}
