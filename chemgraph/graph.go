/*
 * graph.go, part of gocrys.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package chemgraph builds gonum graphs from the bonds of a structure,
//where atoms are the nodes and bonds the edges, weighted by the
//bond length.
package chemgraph

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	crys "github.com/rmera/gocrys"
)

//Atom is a graph node wrapping an atom. Its graph ID is the atom ID.
type Atom struct {
	*crys.Atom
}

//ID implements graph.Node.
func (A Atom) ID() int64 {
	return int64(A.Atom.ID())
}

//BondGraph is an undirected graph of the atoms of a structure, with
//an edge for each inferred bond.
type BondGraph struct {
	*simple.WeightedUndirectedGraph
	order map[int64]int //position of each atom in the structure
}

//NewBondGraph infers the bonds of mol and builds its graph. Atoms without
//bonds are in the graph too.
func NewBondGraph(mol crys.Bonder) *BondGraph {
	G := &BondGraph{
		WeightedUndirectedGraph: simple.NewWeightedUndirectedGraph(0, 0),
		order:                   make(map[int64]int, mol.Len()),
	}
	nodes := make(map[crys.ID]Atom, mol.Len())
	for i := 0; i < mol.Len(); i++ {
		n := Atom{mol.Atom(i)}
		nodes[n.Atom.ID()] = n
		G.order[n.ID()] = i
		G.AddNode(n)
	}
	for _, b := range mol.Bonds() {
		G.SetWeightedEdge(simple.WeightedEdge{F: nodes[b.At1], T: nodes[b.At2], W: b.Dist})
	}
	return G
}

//Atom returns the atom with the given graph ID, or nil.
func (G *BondGraph) Atom(id int64) *crys.Atom {
	n, ok := G.Node(id).(Atom)
	if !ok {
		return nil
	}
	return n.Atom
}

//Degree returns the number of bonds of the atom with the given graph ID.
func (G *BondGraph) Degree(id int64) int {
	return G.From(id).Len()
}

//Fragments returns the connected components of the graph, i.e. the molecules
//or bonded networks in it, as lists of atom IDs. Atoms keep their structure
//order within each fragment, and fragments are sorted by their first atom.
func (G *BondGraph) Fragments() [][]crys.ID {
	comps := topo.ConnectedComponents(G)
	ret := make([][]crys.ID, 0, len(comps))
	for _, c := range comps {
		sort.Slice(c, func(i, j int) bool { return G.order[c[i].ID()] < G.order[c[j].ID()] })
		frag := make([]crys.ID, len(c))
		for i, n := range c {
			frag[i] = crys.ID(n.ID())
		}
		ret = append(ret, frag)
	}
	sort.Slice(ret, func(i, j int) bool {
		return G.order[int64(ret[i][0])] < G.order[int64(ret[j][0])]
	})
	return ret
}

//Fragments builds the bond graph of mol and returns its connected components.
func Fragments(mol crys.Bonder) [][]crys.ID {
	return NewBondGraph(mol).Fragments()
}
