// Package interpret implements the rule-based command interpreter: an
// ordered table of regex recognition rules, each paired with an extraction
// strategy that builds the structured action for the dispatcher.
package interpret

import (
	"strings"

	"github.com/doeshing/intent-apparatus/internal/domain"
	"github.com/doeshing/intent-apparatus/internal/ports"
)

// Interpreter implements the ports.Interpreter port. The rule table is
// compiled once at construction and never mutated, so a single Interpreter
// can back every surface of the process.
type Interpreter struct {
	table []ruleSet
}

// New compiles the recognition table.
func New() *Interpreter {
	return &Interpreter{table: buildRuleTable()}
}

// Interpret maps one command onto a structured intent. The input is trimmed
// and matched case-insensitively; the first matching rule in table order
// decides the category. When a matched rule's extraction fails, the whole
// interpretation reports no match immediately rather than trying later
// rules, so a command never silently lands in a less specific category.
func (i *Interpreter) Interpret(command string) (domain.Intent, bool) {
	trimmed := strings.TrimSpace(command)
	if trimmed == "" {
		return domain.Intent{}, false
	}

	for _, set := range i.table {
		for _, r := range set.rules {
			match := r.re.FindStringSubmatch(trimmed)
			if match == nil {
				continue
			}
			action, err := extractAction(r.extract, match)
			if err != nil {
				return domain.Intent{}, false
			}
			return domain.Intent{
				Category:   set.category,
				Action:     action,
				Confidence: domain.FixedConfidence,
				RawCommand: strings.ToLower(trimmed),
			}, true
		}
	}

	return domain.Intent{}, false
}

var _ ports.Interpreter = (*Interpreter)(nil)
