package models

// DisplayKind tells the view layer how to render a secure field.
type DisplayKind int

const (
	// DisplayHidden means the value is not available at all (fetch needed).
	DisplayHidden DisplayKind = iota
	// DisplayMasked means the value is available but not revealed.
	DisplayMasked
	// DisplayPlain means the cleartext is shown.
	DisplayPlain
	// DisplayError means the last decryption attempt failed.
	DisplayError
)

func (k DisplayKind) String() string {
	switch k {
	case DisplayHidden:
		return "hidden"
	case DisplayMasked:
		return "masked"
	case DisplayPlain:
		return "plain"
	case DisplayError:
		return "error"
	default:
		return "unknown"
	}
}

// DisplayState is the value returned to the view for one field.
type DisplayState struct {
	Kind DisplayKind

	// Value is the mask for DisplayMasked and the cleartext for DisplayPlain.
	Value string

	// ErrKind is set for DisplayError.
	ErrKind DecryptErrorKind
}

// Hidden returns the hidden display state.
func Hidden() DisplayState { return DisplayState{Kind: DisplayHidden} }

// Masked returns a masked display state with the given mask.
func Masked(mask string) DisplayState { return DisplayState{Kind: DisplayMasked, Value: mask} }

// Plain returns a display state carrying cleartext.
func Plain(v string) DisplayState { return DisplayState{Kind: DisplayPlain, Value: v} }

// DisplayErr returns an error display state of the given kind.
func DisplayErr(kind DecryptErrorKind) DisplayState {
	return DisplayState{Kind: DisplayError, ErrKind: kind}
}
