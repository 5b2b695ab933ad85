package main

import (
	"fmt"

	"github.com/gazebosim/gz-rndf/rndf"
	"github.com/spf13/cobra"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <file.rndf> <x.y.z>",
	Short: "Resolve a waypoint by unique id",
	Long:  "Parse an RNDF file and report which segment, lane, zone, or parking spot owns the waypoint with the given x.y.z identifier.",
	Args:  cobra.ExactArgs(2),
	RunE:  runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	id, err := rndf.ParseUniqueID(args[1])
	if err != nil {
		return err
	}

	doc, err := rndf.Load(args[0])
	if err != nil {
		return fmt.Errorf("loading %s: %w", args[0], err)
	}

	info := doc.Info(id)
	if info == nil {
		return fmt.Errorf("no waypoint %s in %s", id, doc.Name)
	}

	fmt.Printf("Waypoint: %s\n", info.ID)
	fmt.Printf("Location: %f %f\n", info.Waypoint.Location.Latitude, info.Waypoint.Location.Longitude)
	switch {
	case info.Lane != nil:
		fmt.Printf("Owner: segment %d, lane %d\n", info.Segment.ID, info.Lane.ID)
	case info.Spot != nil:
		fmt.Printf("Owner: zone %d, spot %d\n", info.Zone.ID, info.Spot.ID)
	default:
		fmt.Printf("Owner: zone %d perimeter\n", info.Zone.ID)
		if info.Waypoint.IsExit {
			fmt.Println("Perimeter exit point")
		}
	}
	return nil
}
