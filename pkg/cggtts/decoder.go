package cggtts

import (
	"bufio"
	"errors"
	"io"
	"log"
	"strings"
)

// Decoder reads and decodes from a CGGTTS input stream.
type Decoder struct {
	// The Header is valid after NewDecoder. The header must exist,
	// otherwise ErrNoHeader will be returned.
	Header *Header

	sc      *bufio.Scanner
	lineNum int
	err     error
	track   *Track
	hasIono *bool // layout of the first decoded track
}

// NewDecoder returns a new CGGTTS decoder that reads from r.
// The header will be read implicitly. The header must exist.
//
// It is the caller's responsibility to call Close on the underlying reader when done!
func NewDecoder(r io.Reader) (*Decoder, error) {
	dec := &Decoder{sc: bufio.NewScanner(r)}
	dec.Header, dec.err = dec.readHeader()
	return dec, dec.err
}

// NextTrack reads the next track into the buffer. It returns false
// when EOF is reached or an input error occurs. Malformed track lines
// are skipped with a log message, they do not stop the iteration.
func (dec *Decoder) NextTrack() bool {
	for dec.readLine() {
		line := strings.TrimSpace(dec.line())
		if line == "" || isColumnLabels(line) {
			continue
		}

		trk, err := ParseTrack(line)
		if err != nil {
			log.Printf("cggtts: skip line %d: %v", dec.lineNum, err)
			continue
		}

		if dec.hasIono == nil {
			iono := trk.HasIonosphericData()
			dec.hasIono = &iono
		} else if *dec.hasIono != trk.HasIonosphericData() {
			log.Printf("cggtts: line %d: track layout differs from first track", dec.lineNum)
		}

		dec.track = trk
		return true
	}
	if err := dec.sc.Err(); err != nil {
		dec.setErr(err)
	}
	return false
}

// Track returns the last track read by NextTrack.
func (dec *Decoder) Track() *Track {
	return dec.track
}

// Err returns the first non-EOF error that was encountered by the decoder.
func (dec *Decoder) Err() error {
	if dec.err == io.EOF {
		return nil
	}
	return dec.err
}

// setErr adds an error.
func (dec *Decoder) setErr(err error) {
	dec.err = errors.Join(dec.err, err)
}

// readLine reads the next line into buffer. It returns false if an error
// occurs or EOF was reached.
func (dec *Decoder) readLine() bool {
	if ok := dec.sc.Scan(); !ok {
		return ok
	}
	dec.lineNum++
	return true
}

// line returns the current line.
func (dec *Decoder) line() string {
	return dec.sc.Text()
}

// isColumnLabels reports whether the line is one of the column label
// resp. unit lines between header and tracks.
func isColumnLabels(line string) bool {
	return strings.HasPrefix(line, "SAT") || strings.HasPrefix(line, "hhmmss")
}
