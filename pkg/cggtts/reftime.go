package cggtts

import (
	"fmt"
	"strings"
)

// ReferenceTimeKind discriminates the reference timescale variants.
type ReferenceTimeKind int

// Reference timescale variants.
const (
	// RefTAI is the International Atomic Time.
	RefTAI ReferenceTimeKind = iota + 1
	// RefUTC is universal UTC.
	RefUTC
	// RefUTCk is a laboratory's local physical realization of UTC.
	RefUTCk
	// RefCustom is any other, free-form reference.
	RefCustom
)

// ReferenceTime is the timescale the REFSYS solutions refer to.
// For RefUTCk and RefCustom the Label carries the laboratory name
// resp. the verbatim token.
type ReferenceTime struct {
	Kind  ReferenceTimeKind
	Label string
}

// Reference timescale shorthands.
var (
	TAI = ReferenceTime{Kind: RefTAI}
	UTC = ReferenceTime{Kind: RefUTC}
)

// UTCk returns the reference time UTC(lab).
func UTCk(lab string) ReferenceTime {
	return ReferenceTime{Kind: RefUTCk, Label: lab}
}

// ParseReferenceTime parses the token of a "REF = " header line.
// Unknown tokens are kept verbatim as a custom reference.
func ParseReferenceTime(s string) ReferenceTime {
	trimmed := strings.TrimSpace(s)
	switch strings.ToLower(trimmed) {
	case "tai":
		return TAI
	case "utc":
		return UTC
	}
	if strings.HasPrefix(trimmed, "UTC(") && strings.HasSuffix(trimmed, ")") {
		lab := strings.TrimSpace(trimmed[4 : len(trimmed)-1])
		if lab != "" {
			return UTCk(lab)
		}
	}
	return ReferenceTime{Kind: RefCustom, Label: trimmed}
}

func (r ReferenceTime) String() string {
	switch r.Kind {
	case RefTAI:
		return "TAI"
	case RefUTC:
		return "UTC"
	case RefUTCk:
		return fmt.Sprintf("UTC(%s)", r.Label)
	default:
		return r.Label
	}
}
