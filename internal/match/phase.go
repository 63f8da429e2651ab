package match

//go:generate go tool stringer -type=Phase -linecomment -output=phase_string.go

// Phase identifies how a candidate was found.
type Phase int

const (
	PhaseNone       Phase = iota // none
	PhasePrimary                 // primary
	PhaseSecondary               // secondary
	PhaseBasketOnly              // basket-only
	PhaseNearby                  // nearby
)

// LowConfidence reports whether candidates of this phase ignored the section key.
func (p Phase) LowConfidence() bool {
	return p == PhaseBasketOnly
}
