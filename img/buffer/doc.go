// Package buffer provides a dense, row-major 2-D pixel buffer generic over
// the element type. A Buffer either owns its storage (allocated at
// construction) or wraps externally supplied memory as a zero-copy view;
// Copy, Move, and Clone follow from that distinction. Pixel access is
// deliberately unchecked against the logical rectangle, which keeps the
// addressing primitives cheap in hot paths; checked variants exist under
// separate names.
//
// Buffers carry no internal synchronization. Callers sharing a buffer
// across goroutines, directly or through views, must serialize access
// themselves.
package buffer
