package cggtts

import (
	"bufio"
	"fmt"
	"io"
)

// Column label resp. unit lines between header and tracks.
const (
	labelsIono = "SAT CL  MJD  STTIME TRKL ELV AZTH   REFSV      SRSV     REFSYS    SRSYS DSG IOE MDTR SMDT MDIO SMDI MSIO SMSI ISG FR HC FRC CK"
	unitsIono  = "             hhmmss  s  .1dg .1dg    .1ns     .1ps/s     .1ns    .1ps/s .1ns     .1ns.1ps/s.1ns.1ps/s.1ns.1ps/s.1ns"

	labels = "SAT CL  MJD  STTIME TRKL ELV AZTH   REFSV      SRSV     REFSYS    SRSYS  DSG IOE MDTR SMDT MDIO SMDI FR HC FRC CK"
	units  = "             hhmmss  s  .1dg .1dg    .1ns     .1ps/s     .1ns    .1ps/s .1ns     .1ns.1ps/s.1ns.1ps/s"
)

// Encode writes the CGGTTS to w: the header, the column labels and all
// tracks. The track layout must be uniform, a file mixing tracks with
// and without ionospheric data is refused with ErrMixedTrackLayout.
func (c *CGGTTS) Encode(w io.Writer) error {
	iono := c.HasIonosphericData()
	for _, trk := range c.Tracks {
		if trk.HasIonosphericData() != iono {
			return fmt.Errorf("%w: track %s %s", ErrMixedTrackLayout, trk.SV, trk.Epoch.Format("2006-01-02 15:04:05"))
		}
	}

	bw := bufio.NewWriter(w)
	if err := c.Header.Format(bw, c.dominantConstellation()); err != nil {
		return err
	}
	fmt.Fprintln(bw)

	if iono {
		fmt.Fprintln(bw, labelsIono)
		fmt.Fprintln(bw, unitsIono)
	} else {
		fmt.Fprintln(bw, labels)
		fmt.Fprintln(bw, units)
	}

	for _, trk := range c.Tracks {
		line, err := trk.Format()
		if err != nil {
			return err
		}
		fmt.Fprintln(bw, line)
	}
	return bw.Flush()
}
