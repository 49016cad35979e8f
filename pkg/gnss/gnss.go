// Package gnss contains common constants and type definitions.
package gnss

import (
	"fmt"
	"strconv"
	"strings"
)

// System is a satellite system.
type System int

// Available satellite systems.
const (
	SysGPS System = iota + 1
	SysGLO
	SysGAL
	SysQZSS
	SysBDS
	SysIRNSS
	SysSBAS
	SysMIXED
)

func (sys System) String() string {
	return [...]string{"", "GPS", "GLO", "GAL", "QZSS", "BDS", "IRNSS", "SBAS", "MIXED"}[sys]
}

// Abbr returns the systems' one character abbreviation used in RINEX and CGGTTS.
func (sys System) Abbr() string {
	return [...]string{"", "G", "R", "E", "J", "C", "I", "S", "M"}[sys]
}

var sysPerAbbr = map[string]System{
	"G": SysGPS,
	"R": SysGLO,
	"E": SysGAL,
	"J": SysQZSS,
	"C": SysBDS,
	"I": SysIRNSS,
	"S": SysSBAS,
	"M": SysMIXED,
}

// ParseSystem returns the satellite system for the given one character abbreviation.
func ParseSystem(abbr string) (System, error) {
	if sys, ok := sysPerAbbr[strings.ToUpper(abbr)]; ok {
		return sys, nil
	}
	return System(0), fmt.Errorf("invalid satellite system: %q", abbr)
}

// PRN specifies a GNSS satellite by its satellite system and PRN number.
// PRN 99 is the conventional "melting pot" satellite used when a solution
// combines several vehicles.
type PRN struct {
	Sys System
	Num int8
}

// NewPRN returns a new PRN for a string like "G12".
func NewPRN(prn string) (PRN, error) {
	if len(prn) != 3 {
		return PRN{}, fmt.Errorf("invalid PRN: %q", prn)
	}

	sys, ok := sysPerAbbr[prn[:1]]
	if !ok {
		return PRN{}, fmt.Errorf("invalid satellite system: %q", prn)
	}

	snum, err := strconv.Atoi(strings.TrimSpace(prn[1:3]))
	if err != nil {
		return PRN{}, fmt.Errorf("parse PRN number %q: %v", prn, err)
	}
	if snum < 1 || snum > 99 {
		return PRN{}, fmt.Errorf("check satellite number: %q", prn)
	}

	return PRN{Sys: sys, Num: int8(snum)}, nil
}

func (prn PRN) String() string {
	return fmt.Sprintf("%s%02d", prn.Sys.Abbr(), prn.Num)
}

// Systems specifies a list of satellite systems.
type Systems []System

// String returns the contained systems in sitelog manner GPS+GLO+...
func (syss Systems) String() string {
	str := make([]string, 0, len(syss))
	for _, sys := range syss {
		str = append(str, sys.String())
	}
	return strings.Join(str, "+")
}
