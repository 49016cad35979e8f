// Command-line tool for handling CGGTTS files.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gnsstools/cggtts/pkg/cggtts"
	"github.com/gnsstools/cggtts/pkg/gnss"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:    "cggttsgo",
		Usage:   "one more CGGTTS tool",
		Version: "0.0.1",
		Commands: []*cli.Command{
			{
				Name:      "info",
				Usage:     "Print a summary of a CGGTTS file",
				ArgsUsage: "<file>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return cli.Exit("info needs one file", 1)
					}
					return info(c.Args().First())
				},
			},
			{
				Name:      "filename",
				Usage:     "Print the standard conventional name for a CGGTTS file",
				ArgsUsage: "<file>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return cli.Exit("filename needs one file", 1)
					}
					f, err := cggtts.OpenFile(c.Args().First())
					if err != nil {
						return err
					}
					fmt.Println(f.Filename())
					return nil
				},
			},
			{
				Name:      "rewrite",
				Usage:     "Parse a CGGTTS file and write it back in canonical form",
				ArgsUsage: "<in> <out>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 2 {
						return cli.Exit("rewrite needs an input and an output file", 1)
					}
					f, err := cggtts.OpenFile(c.Args().Get(0))
					if err != nil {
						return err
					}
					return f.WriteFile(c.Args().Get(1))
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func info(path string) error {
	f, err := cggtts.OpenFile(path)
	if err != nil {
		return err
	}

	hdr := &f.Header
	fmt.Printf("station:   %s\n", hdr.Station)
	fmt.Printf("revision:  %s (%s)\n", hdr.Version, hdr.ReleaseDate.Format("2006-01-02"))
	if hdr.Receiver != nil {
		fmt.Printf("receiver:  %s\n", hdr.Receiver)
	}
	if hdr.IMS != nil {
		fmt.Printf("ims:       %s\n", hdr.IMS)
	}
	fmt.Printf("channels:  %d\n", hdr.NumChannels)
	fmt.Printf("reference: %s\n", hdr.ReferenceTime)
	if hdr.ReferenceFrame != "" {
		fmt.Printf("frame:     %s\n", hdr.ReferenceFrame)
	}
	fmt.Printf("position:  %.3f %.3f %.3f m\n",
		hdr.APCCoordinates.X, hdr.APCCoordinates.Y, hdr.APCCoordinates.Z)
	fmt.Printf("cab dly:   %.1f ns\n", hdr.Delay.AntennaCableDelay)
	fmt.Printf("ref dly:   %.1f ns\n", hdr.Delay.LocalRefDelay)
	for _, cd := range hdr.Delay.TotalDelays() {
		fmt.Printf("tot dly:   %.1f ns (%s)\n", cd.Delay.Nanos, cd.Code)
	}

	fmt.Printf("tracks:    %d\n", len(f.Tracks))
	if len(f.Tracks) == 0 {
		return nil
	}
	fmt.Printf("first:     %s\n", f.Epoch().Format("2006-01-02 15:04:05"))
	fmt.Printf("total:     %s\n", f.TotalDuration())
	fmt.Printf("iono data: %t\n", f.HasIonosphericData())
	fmt.Printf("bipm spec: %t\n", f.FollowsBIPMSpecs())
	if sys, ok := f.UniqueConstellation(); ok {
		fmt.Printf("system:    %s\n", sys)
	} else {
		fmt.Printf("system:    mixed\n")
	}

	svs := map[gnss.PRN]int{}
	for _, trk := range f.Tracks {
		svs[trk.SV]++
	}
	fmt.Printf("sv count:  %d\n", len(svs))
	return nil
}
