// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/roomplan/floorplan"
	"github.com/katalvlaran/roomplan/layout"
	"github.com/katalvlaran/roomplan/render"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:           "roomplan",
		Short:         "Floorplan geometry engine",
		Long:          `roomplan places the rooms of a YAML layout on a floor and reports shared walls, wall sections and drawings.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log engine decisions to stderr")

	cmd.AddCommand(newNeighboursCmd(flags), newWallsCmd(flags), newSVGCmd(flags))

	return cmd
}

// loaded is a frozen plan together with the layout names of its rooms.
type loaded struct {
	plan  floorplan.Plan
	names map[int]string
}

func load(cmd *cobra.Command, flags *rootFlags, path string) (*loaded, error) {
	level := slog.LevelInfo
	if flags.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	doc, err := layout.Load(path)
	if err != nil {
		return nil, err
	}
	plan, byName, err := layout.Build(doc, floorplan.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", path, err)
	}

	names := make(map[int]string)
	for name, rooms := range byName {
		for _, r := range rooms {
			names[r.ID()] = name
		}
	}
	logger.Info("layout loaded", slog.String("path", path), slog.Int("rooms", len(plan.Rooms())))

	return &loaded{plan: plan.Freeze(), names: names}, nil
}

type neighbourRecord struct {
	Room       string        `json:"room"`
	RoomID     int           `json:"room_id"`
	Edge       int           `json:"edge"`
	Other      string        `json:"other"`
	OtherID    int           `json:"other_id"`
	OtherEdge  int           `json:"other_edge"`
	Length     float64       `json:"length"`
	Separation float64       `json:"separation"`
	Quad       [4][2]float64 `json:"quad"`
}

func newNeighboursCmd(flags *rootFlags) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "neighbours <layout.yaml>",
		Short: "List shared wall stretches as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := load(cmd, flags, args[0])
			if err != nil {
				return err
			}
			records := []neighbourRecord{}
			for _, r := range l.plan.Rooms() {
				ns, err := l.plan.Neighbours(r)
				if err != nil {
					return err
				}
				for _, n := range ns {
					if !all && n.RoomB.ID() < r.ID() {
						continue
					}
					rec := neighbourRecord{
						Room: l.names[r.ID()], RoomID: r.ID(), Edge: n.EdgeA,
						Other: l.names[n.RoomB.ID()], OtherID: n.RoomB.ID(), OtherEdge: n.EdgeB,
						Length: n.Length(), Separation: n.Separation(),
					}
					for i, p := range n.Quad() {
						rec.Quad[i] = [2]float64{p[0], p[1]}
					}
					records = append(records, rec)
				}
			}

			return writeJSON(cmd, records)
		},
	}
	cmd.Flags().BoolVar(&all, "both-sides", false, "emit every record from both rooms' perspective")

	return cmd
}

type sectionRecord struct {
	Room       string     `json:"room"`
	RoomID     int        `json:"room_id"`
	Edge       int        `json:"edge"`
	Kind       string     `json:"kind"`
	Start      [2]float64 `json:"start"`
	End        [2]float64 `json:"end"`
	Length     float64    `json:"length"`
	OnBoundary bool       `json:"on_boundary"`
	Neighbour  *int       `json:"neighbour,omitempty"`
}

func newWallsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "walls <layout.yaml>",
		Short: "List every room's wall sections as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := load(cmd, flags, args[0])
			if err != nil {
				return err
			}
			records := []sectionRecord{}
			for _, r := range l.plan.Rooms() {
				ws, err := l.plan.WallSections(r)
				if err != nil {
					return err
				}
				for _, w := range ws {
					rec := sectionRecord{
						Room: l.names[r.ID()], RoomID: r.ID(), Edge: w.EdgeIndex, Kind: w.Kind.String(),
						Start:  [2]float64{w.Start[0], w.Start[1]},
						End:    [2]float64{w.End[0], w.End[1]},
						Length: w.Length(), OnBoundary: w.OnBoundary,
					}
					if w.Neighbour != nil {
						id := w.Neighbour.RoomB.ID()
						rec.Neighbour = &id
					}
					records = append(records, rec)
				}
			}
			sort.SliceStable(records, func(i, j int) bool { return records[i].RoomID < records[j].RoomID })

			return writeJSON(cmd, records)
		},
	}
}

func newSVGCmd(flags *rootFlags) *cobra.Command {
	var (
		out string
		ppu float64
	)
	cmd := &cobra.Command{
		Use:   "svg <layout.yaml>",
		Short: "Draw the plan as SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			l, err := load(cmd, flags, args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if out != "" {
				f, ferr := os.Create(out)
				if ferr != nil {
					return ferr
				}
				defer func() {
					if cerr := f.Close(); cerr != nil && err == nil {
						err = fmt.Errorf("close %s: %w", out, cerr)
					}
				}()
				w = f
			}

			return render.SVG(w, l.plan, render.WithPixelsPerUnit(ppu))
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "write to this file instead of stdout")
	cmd.Flags().Float64Var(&ppu, "scale", render.DefaultPixelsPerUnit, "pixels per plan unit")

	return cmd
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
