// Package fuzztests houses Go fuzz harnesses for the scan pipeline
// (source -> tree-sitter -> detection -> link). They guard against panics,
// hangs and malformed links on arbitrary inputs.
package fuzztests
