// SPDX-License-Identifier: MIT
// Package: motifnet/rewire
//
// metropolis.go — acceptance of a paired-corner swap.
//
//	π = Π_pairs e(u0‖v1)·e(v0‖u1) / Π_pairs e(u0‖u1)·e(v0‖v1)
//
// Outcomes, in evaluation order:
//   • RejectedNoOp: every pair's new keys are among its old keys.
//   • RejectedKeyMiss: a new or old key is absent from the target.
//   • RejectedZero: the numerator reached zero.
//   • KindInvariant error: the denominator is zero.
//   • Accepted iff π > U[0,1), else RejectedMetropolis.

package rewire

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/motifnet/correlation"
)

// keys are the excess pair keys of one corner pair.
type keys struct {
	u0u1, u1u0, v0v1, v1v0, u0v1, v0u1 correlation.PairKey
}

func (e *Engine) keysOf(u0, v0 int, p pair) (keys, bool) {
	t := e.topologyIndex(p.left.Topology)
	if t < 0 {
		return keys{}, false
	}
	x := e.excess[t]
	join := func(a, b int) correlation.PairKey { return correlation.PairKey(x[a] + "," + x[b]) }

	return keys{
		u0u1: join(u0, p.u1),
		u1u0: join(p.u1, u0),
		v0v1: join(v0, p.v1),
		v1v0: join(p.v1, v0),
		u0v1: join(u0, p.v1),
		v0u1: join(v0, p.u1),
	}, true
}

func (k keys) noop() bool {
	in := func(x correlation.PairKey) bool {
		return x == k.u0u1 || x == k.u1u0 || x == k.v0v1 || x == k.v1v0
	}

	return in(k.u0v1) && in(k.v0u1)
}

func (e *Engine) metropolis(u0, v0 int, pairs []pair) (Outcome, error) {
	const op = "Rewire"
	all := make([]keys, len(pairs))
	noop := true
	for i, p := range pairs {
		k, ok := e.keysOf(u0, v0, p)
		if !ok {
			e.debugReject(RejectedKeyMiss, logrus.Fields{"topology": p.left.Topology})
			return RejectedKeyMiss, nil
		}
		all[i] = k
		if !k.noop() {
			noop = false
		}
	}
	if noop {
		return RejectedNoOp, nil
	}

	num := 1.0
	for i, p := range pairs {
		m := e.target.Matrices[p.left.Topology]
		a, okA := m[all[i].u0v1]
		b, okB := m[all[i].v0u1]
		if !okA || !okB {
			e.debugReject(RejectedKeyMiss, logrus.Fields{"new": [2]correlation.PairKey{all[i].u0v1, all[i].v0u1}})
			return RejectedKeyMiss, nil
		}
		num *= a * b
		if num == 0 {
			e.debugReject(RejectedZero, logrus.Fields{"new": [2]correlation.PairKey{all[i].u0v1, all[i].v0u1}})
			return RejectedZero, nil
		}
	}

	den := 1.0
	for i, p := range pairs {
		m := e.target.Matrices[p.left.Topology]
		a, okA := m[all[i].u0u1]
		b, okB := m[all[i].v0v1]
		if !okA || !okB {
			e.debugReject(RejectedKeyMiss, logrus.Fields{"old": [2]correlation.PairKey{all[i].u0u1, all[i].v0v1}})
			return RejectedKeyMiss, nil
		}
		den *= a * b
	}
	if den == 0 {
		return 0, newErr(KindInvariant, op, nil, "zero Metropolis denominator for anchors %d and %d", u0, v0)
	}

	if num/den > e.rng.Float64() {
		return Accepted, nil
	}

	return RejectedMetropolis, nil
}

// topologyIndex maps a topology to its joint-degree component, or -1.
func (e *Engine) topologyIndex(name string) int {
	t, err := e.net.TopologyIndex(name)
	if err != nil {
		return -1
	}

	return t
}

func (e *Engine) debugReject(o Outcome, fields logrus.Fields) {
	if !e.debug {
		return
	}
	e.log.WithFields(fields).WithField("outcome", o.String()).Debug("swap rejected")
}
