// Package gcm implements the stub-matching generator of the generalised
// configuration model (GCM).
//
// Given a joint degree sequence (JDS), one integer vector per vertex with one
// component per topology, and an index-aligned list of MotifSpec values, the
// Generator:
//
//  1. builds one stub list per topology, repeating vertex v JDS[v][t] times;
//  2. shuffles every stub list independently;
//  3. cuts each list into consecutive chunks of MotifSpec.Size vertices;
//  4. hands each chunk to the topology's motif.Builder and stores the pairs
//     in a core.Network, labelled with the topology name and a fresh motif id
//     taken from the generator-owned counter;
//  5. increments the topology component of every chunk vertex's joint degree.
//
// Stub matching may place one vertex twice in a chunk (self-loops) or let two
// motifs propose the same pair (duplicates). ArtifactPolicy states what
// happens to both; the counts are kept in the Report of the last run.
//
// Errors are *Error values carrying a Kind; configuration problems are
// reported by NewGenerator or at the start of Generate and are never retried.
//
// A Generator serialises its own calls to Generate; the counter keeps
// advancing across calls so motif ids stay unique per generator.
package gcm
