package cggtts

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Coordinates is the phase center position of the receiver antenna,
// in meters within the reference frame of the header.
type Coordinates struct {
	X float64 `validate:"required"`
	Y float64 `validate:"required"`
	Z float64 `validate:"required"`
}

// Header is the CGGTTS file header: laboratory, equipment and
// calibration information valid for all tracks of the file.
type Header struct {
	// Version of the format revision, currently always 2E.
	Version Version
	// ReleaseDate of the format revision, not of the data.
	ReleaseDate time.Time
	// Station is the acronym of the producing laboratory.
	Station string `validate:"required,printascii"`
	// Receiver describes the GNSS receiver, if known.
	Receiver *Hardware
	// NumChannels is the number of receiver channels, 0 if unknown.
	NumChannels uint16
	// IMS describes the Ionospheric Measurement System, nil if none.
	IMS *Hardware
	// ReferenceTime is the timescale the REFSYS solutions refer to.
	ReferenceTime ReferenceTime
	// ReferenceFrame of the antenna coordinates, like "ITRF".
	ReferenceFrame string
	// APCCoordinates is the antenna phase center position.
	APCCoordinates Coordinates
	// Comments carries the free-form COMMENTS line, "" if none.
	Comments string
	// Delay describes the calibrated system delays.
	Delay SystemDelay
}

// NewHeader returns a revision 2E header with its standard release date.
func NewHeader() Header {
	return Header{
		Version:       Version2E,
		ReleaseDate:   Version2E.ReleaseDate(),
		ReferenceTime: UTC,
	}
}

// Validate validates the header data.
func (h *Header) Validate() error {
	validate := validator.New()
	return validate.Struct(h)
}

// WithStation sets the laboratory acronym.
func (h Header) WithStation(station string) Header {
	h.Station = station
	return h
}

// WithReceiver sets the GNSS receiver description.
func (h Header) WithReceiver(hw Hardware) Header {
	h.Receiver = &hw
	return h
}

// WithIMS sets the Ionospheric Measurement System description.
func (h Header) WithIMS(hw Hardware) Header {
	h.IMS = &hw
	return h
}

// WithNumChannels sets the receiver channel count.
func (h Header) WithNumChannels(n uint16) Header {
	h.NumChannels = n
	return h
}

// WithReferenceTime sets the reference timescale.
func (h Header) WithReferenceTime(ref ReferenceTime) Header {
	h.ReferenceTime = ref
	return h
}

// WithReferenceFrame sets the coordinates reference frame.
func (h Header) WithReferenceFrame(frame string) Header {
	h.ReferenceFrame = frame
	return h
}

// WithAPCCoordinates sets the antenna phase center position.
func (h Header) WithAPCCoordinates(c Coordinates) Header {
	h.APCCoordinates = c
	return h
}

// WithComments sets the COMMENTS line.
func (h Header) WithComments(comments string) Header {
	h.Comments = comments
	return h
}

// WithDelay sets the calibrated system delays.
func (h Header) WithDelay(sd SystemDelay) Header {
	h.Delay = sd
	return h
}
