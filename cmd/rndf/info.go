package main

import (
	"fmt"
	"os"

	"github.com/gazebosim/gz-rndf/rndf"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var infoCmd = &cobra.Command{
	Use:   "info <file.rndf>",
	Short: "Summarize an RNDF file",
	Long:  "Parse an RNDF file and print its name, format metadata, and the number of segments, lanes, zones, and parking spots.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	infoCmd.Flags().Bool("check", false, "Also run structural validation on the loaded document")

	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	verbose := viper.GetBool("verbose")
	check, _ := cmd.Flags().GetBool("check")

	doc, err := rndf.Load(args[0])
	if err != nil {
		return fmt.Errorf("loading %s: %w", args[0], err)
	}

	fmt.Printf("Name: %s\n", doc.Name)
	if doc.Version != "" {
		fmt.Printf("Format version: %s\n", doc.Version)
	}
	if doc.Date != "" {
		fmt.Printf("Creation date: %s\n", doc.Date)
	}
	fmt.Printf("Segments: %d\n", doc.NumSegments())
	fmt.Printf("Zones: %d\n", doc.NumZones())

	if verbose {
		printDetails(doc)
	}

	if check && !doc.Valid() {
		return fmt.Errorf("%s: document failed structural validation", args[0])
	}
	return nil
}

func printDetails(doc *rndf.Document) {
	for _, s := range doc.Segments {
		name := s.Name
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Fprintf(os.Stderr, "  segment %d %s: %d lanes\n", s.ID, name, s.NumLanes())
		for _, l := range s.Lanes {
			fmt.Fprintf(os.Stderr, "    lane %d.%d: %d waypoints, %d checkpoints, %d stops, %d exits\n",
				s.ID, l.ID, l.NumWaypoints(), l.NumCheckpoints(), l.NumStops(), l.NumExits())
		}
	}
	for _, z := range doc.Zones {
		name := z.Name
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Fprintf(os.Stderr, "  zone %d %s: %d perimeter points, %d exits, %d spots\n",
			z.ID, name, z.Perimeter.NumPoints(), z.Perimeter.NumExits(), z.NumSpots())
	}
	if len(doc.ExitRecords) > 0 {
		fmt.Fprintf(os.Stderr, "  exits:\n")
		for _, r := range doc.ExitRecords {
			fmt.Fprintf(os.Stderr, "    %s -> %s (line %d)\n", r.ExitID, r.EntryID, r.Line)
		}
	}
}
