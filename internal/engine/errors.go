// internal/engine/errors.go
package engine

import (
	"errors"
	"fmt"
)

// FailureCode discriminates the soft rule violations an operation can return.
// Callers switch on the code instead of string-matching messages.
type FailureCode string

const (
	FailInvalidPlayerCount FailureCode = "invalid_player_count"
	FailNotYourTurn        FailureCode = "not_your_turn"
	FailCardNotInHand      FailureCode = "card_not_in_hand"
	FailIllegalMove        FailureCode = "illegal_move"
	FailColorRequired      FailureCode = "color_required"
	FailInvalidColor       FailureCode = "invalid_color"
	FailPendingDrawBlocks  FailureCode = "pending_draw_blocks"
	FailNoPendingDraw      FailureCode = "no_pending_draw"
	FailNoCardsAvailable   FailureCode = "no_cards_available"
	FailInvalidCall        FailureCode = "invalid_call"
)

// RuleError is a tagged rule violation. Every operation that returns one
// leaves its input state untouched, so callers may treat it as a no-op and
// retry with corrected input.
type RuleError struct {
	Code   FailureCode
	Reason string
}

func (e *RuleError) Error() string {
	if e.Reason == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Reason)
}

func failf(code FailureCode, format string, args ...interface{}) *RuleError {
	return &RuleError{Code: code, Reason: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the failure code from an error returned by an engine
// operation, or "" if err is not a RuleError.
func CodeOf(err error) FailureCode {
	var re *RuleError
	if errors.As(err, &re) {
		return re.Code
	}
	return ""
}
