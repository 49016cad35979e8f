package cggtts

import (
	"fmt"
	"strconv"
	"strings"
)

// Hardware describes a piece of equipment of the measurement chain,
// usually the GNSS receiver, possibly the Ionospheric Measurement System.
type Hardware struct {
	// Manufacturer of this equipment.
	Manufacturer string
	// Model name.
	Model string
	// Readable serial number.
	SerialNumber string
	// Year of production or release.
	Year uint16
	// Software or firmware release.
	Release string
}

// String formats the hardware as used on a RCVR or IMS header line.
func (hw Hardware) String() string {
	return fmt.Sprintf("%s %s %s %d %s", hw.Manufacturer, hw.Model, hw.SerialNumber, hw.Year, hw.Release)
}

// parseHardware parses the value part of a "RCVR = " or "IMS = " line.
func parseHardware(v string) (*Hardware, error) {
	fields := strings.Fields(v)
	if len(fields) < 5 {
		return nil, fmt.Errorf("invalid hardware description: %q", v)
	}

	year, err := strconv.ParseUint(fields[3], 10, 16)
	if err != nil {
		return nil, fmt.Errorf("parse hardware release year: %v", err)
	}

	return &Hardware{
		Manufacturer: fields[0],
		Model:        fields[1],
		SerialNumber: fields[2],
		Year:         uint16(year),
		Release:      strings.Join(fields[4:], " "),
	}, nil
}
