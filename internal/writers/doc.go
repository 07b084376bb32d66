// Package writers turns conversion results into serialized outputs.
//
// Design:
//   - Writers own all presentation choices (plain rows, TSV table, pretty
//     blocks, JSON/JSONL/YAML, aligned FASTA).
//   - The codec stays domain-only; internal/batch stays orchestration-only.
//   - JSON/JSONL/YAML go through pkg/api (v1) for a stable wire format.
package writers
