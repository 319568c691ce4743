// Package motifnet generates random networks built from motifs and rewires
// them towards a target degree-degree correlation structure.
//
// The pipeline, in package order:
//
//	jointdegree/ — joint degree distributions: sampling a sequence, the
//	               divisibility correction, inversion of excess marginals
//	motif/       — motif builders (clique, cycle, diamond, path, star, wheel)
//	gcm/         — the stub-matching generator: one stub list per topology,
//	               shuffled and cut into motif-sized chunks
//	core/        — the labelled Network every stage reads and writes
//	correlation/ — ejk tensors per topology, excess keys and deviation
//	drawset/     — O(1) uniform draws over a changing edge set
//	rewire/      — Metropolis double-motif-corner swaps towards a target
//	bfs/         — traversal and connected components
//	edgelist/    — text and Graphviz DOT serialisation
//	metrics/     — Prometheus collectors fed by the generator and the engine
//	config/      — YAML run descriptions
//	cmd/motifnet — the command line front end
//
// A minimal run:
//
//	g, _ := gcm.NewGenerator([]gcm.MotifSpec{
//		{Size: 2, Builder: motif.Clique(2), Topology: "2-clique"},
//		{Size: 3, Builder: motif.Clique(3), Topology: "3-clique"},
//	}, gcm.WithSeed(1))
//	net, _ := g.Generate(jds)
//
//	eng, _ := rewire.NewEngine(net, target, rewire.WithSeed(1))
//	net, _ = eng.Rewire()
//
// Every component takes its own *rand.Rand (golang.org/x/exp/rand), so a
// fixed seed fixes a run.
package motifnet
