// Package aoc2021 bundles two self-contained puzzle engines and the CLI that
// drives them.
//
// 🚀 What is inside?
//
//	• packet – hex/bit transmissions: parse, decode, evaluate, re-encode
//	• astar  – generic A* over any comparable state with a consistent heuristic
//	• burrow – the amphipod burrow model (board, legal moves, lower bound)
//	           solved by astar
//
// ✨ Why this layout?
//
//   - Small packages – each one has its own sentinel errors and tests
//   - Pure values – Board and Packet carry no hidden state, so they are safe
//     to share between goroutines once built
//   - Pluggable search – burrow only implements astar.Problem; other puzzles
//     can reuse the same engine
//
// Layout:
//
//	packet/           — Bits, Decode/DecodeHex, Eval, VersionSum, Encode
//	astar/            — Search[S], Problem[S], Options & Stats
//	burrow/           — Board, Move, ParseDiagram/Unfold, Heuristic, Solve
//	internal/config/  — optional YAML tuning file
//	internal/input/   — puzzle file readers
//	cmd/aoc2021/      — cobra CLI: `packet FILE`, `burrow FILE`
//
// Quick start:
//
//	go run ./cmd/aoc2021 packet input16.txt --tree
//	go run ./cmd/aoc2021 burrow input23.txt
package aoc2021
