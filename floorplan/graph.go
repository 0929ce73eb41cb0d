// SPDX-License-Identifier: MIT

package floorplan

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/roomplan/adjacency"
)

// VertexID is the adjacency graph vertex ID of room id.
func VertexID(id int) string { return strconv.Itoa(id) }

// AdjacencyGraph returns a graph with one vertex per room and one edge per
// pair of rooms sharing wall, weighted by the total shared length. Vertices
// carry "area" and "wall_thickness" metadata.
func (p *Floorplan) AdjacencyGraph() (*adjacency.Graph, error) {
	if err := p.refresh(); err != nil {
		return nil, err
	}

	g := adjacency.NewGraph()
	for _, r := range p.rooms {
		id := VertexID(r.id)
		if err := g.AddVertex(id); err != nil {
			return nil, err
		}
		if err := g.SetMetadata(id, "area", r.Area()); err != nil {
			return nil, fmt.Errorf("room %d metadata: %w", r.id, err)
		}
		if err := g.SetMetadata(id, "wall_thickness", r.thickness); err != nil {
			return nil, fmt.Errorf("room %d metadata: %w", r.id, err)
		}
	}

	shared := make(map[[2]int]float64)
	for _, r := range p.rooms {
		for _, n := range p.neighbours[r.id] {
			if n.RoomB.id > r.id {
				shared[[2]int{r.id, n.RoomB.id}] += n.Length()
			}
		}
	}
	for _, r := range p.rooms {
		for _, o := range p.rooms {
			w, ok := shared[[2]int{r.id, o.id}]
			if !ok {
				continue
			}
			if _, err := g.AddEdge(VertexID(r.id), VertexID(o.id), w); err != nil {
				return nil, fmt.Errorf("join rooms %d and %d: %w", r.id, o.id, err)
			}
		}
	}

	return g, nil
}
