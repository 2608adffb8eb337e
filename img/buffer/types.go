package buffer

// Named instantiations other packages depend on by name: grayscale and
// three-channel buffers at the bit depths the surrounding pipelines use.
type (
	// Gray is a single-channel 8-bit buffer.
	Gray = Buffer[uint8]
	// Gray16 is a single-channel 16-bit buffer.
	Gray16 = Buffer[uint16]
	// GrayF is a single-channel float32 buffer.
	GrayF = Buffer[float32]
	// GrayF64 is a single-channel float64 buffer, the element type the
	// arithmetic helpers in img/ops operate on.
	GrayF64 = Buffer[float64]
	// RGB is a three-channel 8-bit buffer.
	RGB = Buffer[[3]uint8]
	// RGBF is a three-channel float32 buffer.
	RGBF = Buffer[[3]float32]
)
