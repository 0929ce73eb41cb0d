// SPDX-License-Identifier: MIT

package adjacency

import "sort"

// Components returns the connected components of g. Each component is
// sorted, and components are ordered by their smallest vertex ID.
func Components(g *Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	seen := make(map[string]bool, g.VertexCount())
	var out [][]string
	for _, id := range g.Vertices() {
		if seen[id] {
			continue
		}
		res, err := BFS(g, id)
		if err != nil {
			return nil, err
		}
		comp := make([]string, len(res.Order))
		copy(comp, res.Order)
		for _, v := range comp {
			seen[v] = true
		}
		sort.Strings(comp)
		out = append(out, comp)
	}

	return out, nil
}
