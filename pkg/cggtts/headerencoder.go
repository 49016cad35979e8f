package cggtts

import (
	"fmt"
	"io"
	"strings"

	"github.com/gnsstools/cggtts/pkg/gnss"
)

// Format writes the header lines in their fixed order, the CKSUM line
// included. sys is the constellation named on the delay lines, usually
// the constellation of the tracks that follow.
func (h *Header) Format(w io.Writer, sys gnss.System) error {
	var buf strings.Builder

	fmt.Fprintf(&buf, "CGGTTS GENERIC DATA FORMAT VERSION = %s\n", h.Version)
	fmt.Fprintf(&buf, "REV DATE = %s\n", h.ReleaseDate.Format("2006-01-02"))

	if h.Receiver != nil {
		fmt.Fprintf(&buf, "RCVR = %s\n", h.Receiver)
	}
	fmt.Fprintf(&buf, "CH = %d\n", h.NumChannels)
	if h.IMS != nil {
		fmt.Fprintf(&buf, "IMS = %s\n", h.IMS)
	}

	fmt.Fprintf(&buf, "LAB = %s\n", h.Station)
	fmt.Fprintf(&buf, "X = %12.3f m\n", h.APCCoordinates.X)
	fmt.Fprintf(&buf, "Y = %12.3f m\n", h.APCCoordinates.Y)
	fmt.Fprintf(&buf, "Z = %12.3f m\n", h.APCCoordinates.Z)

	if h.ReferenceFrame != "" {
		fmt.Fprintf(&buf, "FRAME = %s\n", h.ReferenceFrame)
	}
	if c := strings.TrimSpace(h.Comments); c != "" {
		fmt.Fprintf(&buf, "COMMENTS = %s\n", c)
	} else {
		buf.WriteString("COMMENTS = NO COMMENTS\n")
	}

	if line := h.Delay.formatFreqDependent(sys); line != "" {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	fmt.Fprintf(&buf, "CAB DLY = %05.1f ns\n", h.Delay.AntennaCableDelay)
	fmt.Fprintf(&buf, "REF DLY = %05.1f ns\n", h.Delay.LocalRefDelay)
	fmt.Fprintf(&buf, "REF = %s\n", h.ReferenceTime)

	buf.WriteString("CKSUM = ")
	ck, err := checksumString(buf.String())
	if err != nil {
		return err
	}
	fmt.Fprintf(&buf, "%02X\n", ck)

	_, err = io.WriteString(w, buf.String())
	return err
}

// formatFreqDependent renders the INT resp. SYS DLY line, "" if no
// frequency dependent delays are specified.
func (sd SystemDelay) formatFreqDependent(sys gnss.System) string {
	if len(sd.FreqDependentDelays) == 0 {
		return ""
	}

	var b strings.Builder
	if sd.FreqDependentDelays[0].Delay.Kind == DelayInternal {
		b.WriteString("INT DLY = ")
	} else {
		b.WriteString("SYS DLY = ")
	}
	for i, cd := range sd.FreqDependentDelays {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%.1f ns (%s %s)", cd.Delay.Nanos, sys, cd.Code)
	}
	if sd.Calibration != nil {
		fmt.Fprintf(&b, "     CAL_ID = %s", sd.Calibration)
	} else {
		b.WriteString("     CAL_ID = NA")
	}
	return b.String()
}
