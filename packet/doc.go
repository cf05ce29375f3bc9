// Package packet decodes and evaluates the hierarchical binary packet format.
//
// Overview:
//
//   - A hex transmission expands to a bit stream (ParseHex).
//
//   - Decode consumes one packet from the head of the stream and returns the
//     tree, the number of bits it occupied and the unconsumed remainder, so it
//     composes recursively without any shared parse state.
//
//   - VersionSum walks the tree summing version fields (a diagnostic).
//
//   - Eval interprets the tree bottom-up under eight fixed operators:
//
//     | type | operator    | result                         |
//     |------|-------------|--------------------------------|
//     | 0    | Sum         | Σ children                     |
//     | 1    | Product     | Π children                     |
//     | 2    | Minimum     | min children                   |
//     | 3    | Maximum     | max children                   |
//     | 4    | Literal     | the literal value              |
//     | 5    | GreaterThan | 1 if c0 > c1 else 0            |
//     | 6    | LessThan    | 1 if c0 < c1 else 0            |
//     | 7    | EqualTo     | 1 if c0 == c1 else 0           |
//
//   - Encode is the inverse of Decode and is handy for building test vectors.
//
// Failure semantics:
//
//	Any malformed stream (truncated header or group, length-accounting
//	mismatch, wrong operand count, oversize literal) fails the whole decode.
//	There is no partial result. Errors wrap the sentinels declared in types.go
//	and can be matched with errors.Is.
//
// Complexity:
//
//   - Decode: O(n) in the number of bits, single pass.
//   - Eval, VersionSum: O(number of packets).
package packet
