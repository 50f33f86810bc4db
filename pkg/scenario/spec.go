// Package scenario contains the externally facing configuration for a single
// bounded endgame evaluation: the board bound, move-step bound, attacker
// inventory, and rule flags.
package scenario

import "fmt"

// MoveBoundMode selects how Spec.MoveBound is interpreted by rider move
// generation.
type MoveBoundMode string

const (
	Inclusive MoveBoundMode = "inclusive"
	Exclusive MoveBoundMode = "exclusive"
)

// Pieces is the attacker inventory. Slot order in the canonical board is
// fixed regardless of field order here: white king, then queens, then
// rooks, then bishops, then knights.
type Pieces struct {
	WhiteKing bool `json:"white_king" yaml:"white_king"`
	Queens    int  `json:"queens" yaml:"queens"`
	Rooks     int  `json:"rooks" yaml:"rooks"`
	Bishops   int  `json:"bishops" yaml:"bishops"`
	Knights   int  `json:"knights" yaml:"knights"`
}

// Spec is an immutable scenario configuration, as described on the wire in
// §6 of the specification: bound, move bound (+ mode), inventory, and the
// three rule flags.
type Spec struct {
	Bound            int           `json:"bound" yaml:"bound"`
	MoveBound        int           `json:"move_bound" yaml:"move_bound"`
	MoveBoundMode    MoveBoundMode `json:"move_bound_mode,omitempty" yaml:"move_bound_mode,omitempty"`
	Pieces           Pieces        `json:"pieces" yaml:"pieces"`
	AllowCaptures    bool          `json:"allow_captures" yaml:"allow_captures"`
	WhiteCanPass     bool          `json:"white_can_pass" yaml:"white_can_pass"`
	RemoveStalemates *bool         `json:"remove_stalemates,omitempty" yaml:"remove_stalemates,omitempty"`
}

// ConfigError reports an invalid scenario configuration: §7's "Configuration
// error" kind. Pipeline aborts for the offending scenario only.
type ConfigError struct {
	Field string
	Msg   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid scenario: %v: %v", e.Field, e.Msg)
}

// Normalize fills defaults and validates Spec, returning the normalized form
// that is echoed back in the counts output envelope. It never mutates the
// receiver.
func (s Spec) Normalize() (Spec, error) {
	out := s

	if out.MoveBoundMode == "" {
		out.MoveBoundMode = Inclusive
	}
	if out.MoveBoundMode != Inclusive && out.MoveBoundMode != Exclusive {
		return Spec{}, &ConfigError{Field: "move_bound_mode", Msg: fmt.Sprintf("unknown mode %q", out.MoveBoundMode)}
	}
	if out.MoveBound < 1 {
		return Spec{}, &ConfigError{Field: "move_bound", Msg: "must be >= 1"}
	}
	if out.Bound < 0 {
		return Spec{}, &ConfigError{Field: "bound", Msg: "must be >= 0"}
	}
	if out.RemoveStalemates == nil {
		def := true
		out.RemoveStalemates = &def
	}
	return out, nil
}

// RemoveStalematesOrDefault returns the stalemate-removal flag, defaulting
// to true per §6 when unset.
func (s Spec) RemoveStalematesOrDefault() bool {
	if s.RemoveStalemates == nil {
		return true
	}
	return *s.RemoveStalemates
}

// EffectiveMoveBound translates the wire-level MoveBound and its mode into
// the exclusive distance bound consumed by rider move generation (§4.1):
// inclusive mode admits an extra step, exclusive mode passes through as-is.
func (s Spec) EffectiveMoveBound() int {
	if s.MoveBoundMode == Exclusive {
		return s.MoveBound
	}
	return s.MoveBound + 1
}

// String renders a short scenario summary, in the spirit of
// board.Position.String and engine.Options.String.
func (p Pieces) String() string {
	return fmt.Sprintf("{K=%v Q=%v R=%v B=%v N=%v}", p.WhiteKing, p.Queens, p.Rooks, p.Bishops, p.Knights)
}

func (s Spec) String() string {
	return fmt.Sprintf("{bound=%v move_bound=%v(%v) pieces=%v captures=%v pass=%v stalemates_removed=%v}",
		s.Bound, s.MoveBound, s.MoveBoundMode, s.Pieces, s.AllowCaptures, s.WhiteCanPass, s.RemoveStalematesOrDefault())
}
