// Package ops provides elementwise arithmetic over float64 pixel buffers.
// Operations run row by row over the logical pixels only, so padding
// columns in strided buffers are never read or written, and buffers with
// different strides combine freely as long as their logical dimensions
// match.
package ops
