// SPDX-License-Identifier: MIT
// Package: motifnet/correlation
//
// deviation.go — distance of a network's tensors from a target.

package correlation

// Deviation is the absolute deviation of actual from target, summed over
// the target's keys (keys absent from actual count as zero).
type Deviation struct {
	PerTopology map[string]float64
	Total       float64
}

// Deviate compares actual against target, topology by topology.
func Deviate(actual, target *Tensors) Deviation {
	d := Deviation{PerTopology: make(map[string]float64, len(target.Topologies))}
	for _, name := range target.Topologies {
		var sum float64
		for key, want := range target.Matrices[name] {
			got, _ := actual.Lookup(name, key)
			if got > want {
				sum += got - want
			} else {
				sum += want - got
			}
		}
		d.PerTopology[name] = sum
		d.Total += sum
	}

	return d
}
