package cggtts

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"
)

// readHeader reads the CGGTTS header, i.e. all lines up to and
// including the CKSUM line. Lines may appear in any order after the
// version line; unrecognized lines are skipped with a log message.
// The declared checksum is verified against the read bytes, a mismatch
// is logged, not fatal.
func (dec *Decoder) readHeader() (*Header, error) {
	if !dec.readLine() {
		return nil, ErrNoHeader
	}

	key, val := splitHeaderLine(dec.line())
	if key != "CGGTTS GENERIC DATA FORMAT VERSION" {
		return nil, fmt.Errorf("%w: %q", ErrNoHeader, dec.line())
	}
	version, err := ParseVersion(val)
	if err != nil {
		return nil, err
	}

	hdr := &Header{Version: version, ReferenceTime: UTC}

	crc, err := checksumString(dec.line())
	if err != nil {
		return nil, err
	}

readln:
	for dec.readLine() {
		line := dec.line()
		key, val := splitHeaderLine(line)

		switch key {
		case "REV DATE":
			date, err := time.Parse("2006-01-02", val)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrRevisionDateFormat, val)
			}
			hdr.ReleaseDate = date
		case "RCVR":
			if hw, err := parseHardware(val); err == nil {
				hdr.Receiver = hw
			} else {
				log.Printf("cggtts: line %d: %v", dec.lineNum, err)
			}
		case "IMS":
			if val == "99999" || val == "" {
				break
			}
			if hw, err := parseHardware(val); err == nil {
				hdr.IMS = hw
			} else {
				log.Printf("cggtts: line %d: %v", dec.lineNum, err)
			}
		case "CH":
			ch, err := strconv.ParseUint(val, 10, 16)
			if err != nil {
				return nil, fmt.Errorf("parse CH %q: %v", val, err)
			}
			hdr.NumChannels = uint16(ch)
		case "LAB":
			hdr.Station = val
		case "X", "Y", "Z":
			coord, err := parseCoordinate(val)
			if err != nil {
				return nil, fmt.Errorf("parse %s coordinate %q: %v", key, val, err)
			}
			switch key {
			case "X":
				hdr.APCCoordinates.X = coord
			case "Y":
				hdr.APCCoordinates.Y = coord
			case "Z":
				hdr.APCCoordinates.Z = coord
			}
		case "FRAME":
			if val != "?" {
				hdr.ReferenceFrame = val
			}
		case "COMMENTS":
			if val != "NO COMMENTS" {
				hdr.Comments = val
			}
		case "INT DLY":
			dec.parseDelayLine(&hdr.Delay, DelayInternal, val)
		case "SYS DLY", "TOT DLY":
			dec.parseDelayLine(&hdr.Delay, DelaySystemic, val)
		case "CAB DLY":
			dly, err := strconv.ParseFloat(strings.Fields(val)[0], 64)
			if err != nil {
				return nil, fmt.Errorf("parse CAB DLY %q: %v", val, err)
			}
			hdr.Delay.AntennaCableDelay = dly
		case "REF DLY":
			dly, err := strconv.ParseFloat(strings.Fields(val)[0], 64)
			if err != nil {
				return nil, fmt.Errorf("parse REF DLY %q: %v", val, err)
			}
			hdr.Delay.LocalRefDelay = dly
		case "REF":
			hdr.ReferenceTime = ParseReferenceTime(val)
		case "CKSUM":
			// The declared digits are excluded from their own checksum.
			prefix := line[:strings.Index(line, "=")+2]
			ck, err := checksumString(prefix)
			if err != nil {
				return nil, err
			}
			crc += ck

			declared, err := strconv.ParseUint(val, 16, 8)
			if err != nil {
				return nil, fmt.Errorf("%w: CKSUM %q", ErrChecksumFormat, val)
			}
			if uint8(declared) != crc {
				log.Printf("cggtts: header checksum mismatch, got 0x%02X, computed 0x%02X", uint8(declared), crc)
			}
			break readln
		default:
			log.Printf("cggtts: line %d: header field %q not handled", dec.lineNum, key)
			// unknown lines still count towards the checksum
		}

		if key != "CKSUM" {
			ck, err := checksumString(line)
			if err != nil {
				return nil, err
			}
			crc += ck
		}
	}

	if err := dec.sc.Err(); err != nil {
		return nil, err
	}
	if hdr.ReleaseDate.IsZero() {
		log.Printf("cggtts: header without REV DATE line")
		hdr.ReleaseDate = version.ReleaseDate()
	}
	return hdr, nil
}

// splitHeaderLine splits a "KEY = value" header line. Repeated blanks
// in the key are collapsed, the value is trimmed.
func splitHeaderLine(line string) (key, val string) {
	i := strings.Index(line, "=")
	if i < 0 {
		return strings.Join(strings.Fields(line), " "), ""
	}
	return strings.Join(strings.Fields(line[:i]), " "), strings.TrimSpace(line[i+1:])
}

// parseCoordinate parses an antenna coordinate value like "+3970727.80 m".
func parseCoordinate(v string) (float64, error) {
	fields := strings.Fields(v)
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty coordinate")
	}
	return strconv.ParseFloat(fields[0], 64)
}

// parseDelayLine parses the value of an INT, SYS or TOT DLY line like
//
//	53.9 ns (GAL E1), 97.3 ns (GAL E5a)     CAL_ID = 1nnn-yyyy
//
// Unparsable entries are skipped with a log message.
func (dec *Decoder) parseDelayLine(sd *SystemDelay, kind DelayKind, val string) {
	if i := strings.Index(val, "CAL_ID"); i >= 0 {
		calVal := val[i:]
		val = strings.TrimSpace(val[:i])
		if j := strings.Index(calVal, "="); j >= 0 {
			calVal = strings.TrimSpace(calVal[j+1:])
		}
		if calVal != "NA" && calVal != "" {
			if cal, err := ParseCalibrationID(calVal); err == nil {
				sd.Calibration = &cal
			} else {
				log.Printf("cggtts: line %d: %v", dec.lineNum, err)
			}
		}
	}

	for _, entry := range strings.Split(val, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		fields := strings.Fields(entry)
		dly, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			log.Printf("cggtts: line %d: parse delay %q: %v", dec.lineNum, entry, err)
			continue
		}

		open := strings.Index(entry, "(")
		end := strings.Index(entry, ")")
		if open < 0 || end < open {
			log.Printf("cggtts: line %d: delay entry without carrier code: %q", dec.lineNum, entry)
			continue
		}
		codeFields := strings.Fields(entry[open+1 : end])
		if len(codeFields) == 0 {
			log.Printf("cggtts: line %d: delay entry without carrier code: %q", dec.lineNum, entry)
			continue
		}
		code, err := ParseCode(codeFields[len(codeFields)-1])
		if err != nil {
			log.Printf("cggtts: line %d: %v", dec.lineNum, err)
			continue
		}

		*sd = sd.WithDelay(code, Delay{Kind: kind, Nanos: dly})
	}
}
