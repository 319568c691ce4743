// SPDX-License-Identifier: MIT
// Package: motifnet/edgelist
//
// dot.go — Graphviz export through gonum's DOT encoder.

package edgelist

import (
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/motifnet/core"
	"github.com/katalvlaran/motifnet/correlation"
)

// dotNode is a vertex with its joint degree as a label.
type dotNode struct {
	id int64
	jd string
}

func (n dotNode) ID() int64 { return n.id }

func (n dotNode) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "jd", Value: n.jd}}
}

// dotEdge is an edge carrying topology and motif id.
type dotEdge struct {
	from, to dotNode
	topology string
	motifID  int64
}

func (e dotEdge) From() graph.Node { return e.from }
func (e dotEdge) To() graph.Node   { return e.to }

func (e dotEdge) ReversedEdge() graph.Edge {
	e.from, e.to = e.to, e.from

	return e
}

func (e dotEdge) Attributes() []encoding.Attribute {
	return []encoding.Attribute{
		{Key: "topology", Value: e.topology},
		{Key: "motif", Value: strconv.FormatInt(e.motifID, 10)},
	}
}

// WriteDOT renders net as an undirected DOT graph called name.
// Self-loops are skipped; gonum's simple graphs do not hold them.
func WriteDOT(w io.Writer, net *core.Network, name string) error {
	g := simple.NewUndirectedGraph()
	nodes := make([]dotNode, net.VertexCount())
	for _, v := range net.Vertices() {
		nodes[v.ID] = dotNode{id: int64(v.ID), jd: correlation.DegreeVector(v.JointDegree).Key()}
		g.AddNode(nodes[v.ID])
	}
	for _, e := range net.Edges() {
		if e.U == e.V {
			continue
		}
		g.SetEdge(dotEdge{from: nodes[e.U], to: nodes[e.V], topology: e.Topology, motifID: e.MotifID})
	}

	b, err := dot.Marshal(g, name, "", "  ")
	if err != nil {
		return fmt.Errorf("WriteDOT: %w", err)
	}
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("WriteDOT: %w", err)
	}
	_, err = io.WriteString(w, "\n")

	return err
}
