// SPDX-License-Identifier: MIT
// Package: motifnet/edgelist
//
// edgelist.go — text read/write of a labelled network.
//
// Contract:
//   • Write emits vertices in ID order and edges sorted by (U,V), so equal
//     networks give byte-identical output.
//   • Read(Write(net)) reproduces net: topologies, joint degrees, loop
//     permission, and every edge with its labels.

package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/motifnet/core"
	"github.com/katalvlaran/motifnet/correlation"
)

var (
	// ErrSyntax indicates a line that does not parse.
	ErrSyntax = errors.New("edgelist: syntax error")
	// ErrHeader indicates a missing, repeated or misplaced header line.
	ErrHeader = errors.New("edgelist: bad header")
	// ErrTopologyName indicates a topology name that cannot be written.
	ErrTopologyName = errors.New("edgelist: topology name contains whitespace")
)

// Write serialises net to w.
func Write(w io.Writer, net *core.Network) error {
	topologies := net.Topologies()
	for _, name := range topologies {
		if name == "" || strings.ContainsAny(name, " \t\r\n") {
			return fmt.Errorf("Write: %q: %w", name, ErrTopologyName)
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "topologies %s\n", strings.Join(topologies, " "))
	fmt.Fprintf(bw, "vertices %d\n", net.VertexCount())
	fmt.Fprintf(bw, "loops %t\n", net.Looped())
	for _, v := range net.Vertices() {
		fmt.Fprintf(bw, "jd %d %s\n", v.ID, correlation.DegreeVector(v.JointDegree).Key())
	}
	for _, e := range net.Edges() {
		fmt.Fprintf(bw, "edge %d %d %s %d\n", e.U, e.V, e.Topology, e.MotifID)
	}

	return bw.Flush()
}

// Read parses a network written by Write.
func Read(r io.Reader) (*core.Network, error) {
	var (
		topologies []string
		vertices   = -1
		loops      *bool
		net        *core.Network
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		switch fields[0] {
		case "topologies", "vertices", "loops":
			if net != nil {
				return nil, fmt.Errorf("Read: line %d: %q after body: %w", line, fields[0], ErrHeader)
			}
			if err := readHeader(fields, &topologies, &vertices, &loops); err != nil {
				return nil, fmt.Errorf("Read: line %d: %w", line, err)
			}
		case "jd", "edge":
			if net == nil {
				var err error
				if net, err = newNetwork(topologies, vertices, loops); err != nil {
					return nil, fmt.Errorf("Read: line %d: %w", line, err)
				}
			}
			if err := readBody(net, fields); err != nil {
				return nil, fmt.Errorf("Read: line %d: %w", line, err)
			}
		default:
			return nil, fmt.Errorf("Read: line %d: unknown record %q: %w", line, fields[0], ErrSyntax)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}
	if net == nil {
		return newNetwork(topologies, vertices, loops)
	}

	return net, nil
}

func readHeader(fields []string, topologies *[]string, vertices *int, loops **bool) error {
	switch fields[0] {
	case "topologies":
		if *topologies != nil {
			return fmt.Errorf("repeated topologies: %w", ErrHeader)
		}
		*topologies = append([]string{}, fields[1:]...)
	case "vertices":
		if *vertices >= 0 || len(fields) != 2 {
			return fmt.Errorf("vertices: %w", ErrHeader)
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 0 {
			return fmt.Errorf("vertices %q: %w", fields[1], ErrSyntax)
		}
		*vertices = n
	case "loops":
		if *loops != nil || len(fields) != 2 {
			return fmt.Errorf("loops: %w", ErrHeader)
		}
		b, err := strconv.ParseBool(fields[1])
		if err != nil {
			return fmt.Errorf("loops %q: %w", fields[1], ErrSyntax)
		}
		*loops = &b
	}

	return nil
}

func newNetwork(topologies []string, vertices int, loops *bool) (*core.Network, error) {
	if topologies == nil || vertices < 0 {
		return nil, fmt.Errorf("topologies and vertices required: %w", ErrHeader)
	}
	var opts []core.NetworkOption
	if loops != nil && *loops {
		opts = append(opts, core.WithLoops())
	}

	return core.NewNetwork(vertices, topologies, opts...), nil
}

func readBody(net *core.Network, fields []string) error {
	switch fields[0] {
	case "jd":
		if len(fields) != 3 {
			return fmt.Errorf("jd wants 2 fields, got %d: %w", len(fields)-1, ErrSyntax)
		}
		id, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("jd vertex %q: %w", fields[1], ErrSyntax)
		}
		jd, err := correlation.ParseDegreeVector(fields[2])
		if err != nil {
			return fmt.Errorf("jd %d: %v: %w", id, err, ErrSyntax)
		}
		return net.SetJointDegree(id, jd)
	default: // edge
		if len(fields) != 5 {
			return fmt.Errorf("edge wants 4 fields, got %d: %w", len(fields)-1, ErrSyntax)
		}
		u, errU := strconv.Atoi(fields[1])
		v, errV := strconv.Atoi(fields[2])
		id, errID := strconv.ParseInt(fields[4], 10, 64)
		if errU != nil || errV != nil || errID != nil {
			return fmt.Errorf("edge %v: %w", fields[1:], ErrSyntax)
		}
		return net.AddEdge(u, v, fields[3], id)
	}
}
