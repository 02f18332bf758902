// Package selection implements contiguous-region ("magic wand") and global
// color-threshold selection over raster images.
//
// Both entry points produce a Mask: a single-channel float32 grid with the
// same dimensions as the source, where 0 means unselected, 1 means fully
// selected and values in between are antialiased partial selection.
//
// # Entry Points
//
//   - SelectBySeed: grows a 4-connected region outward from a seed pixel,
//     including pixels whose similarity to the seed color is non-zero.
//   - SelectByColor: evaluates every pixel independently against a fixed
//     reference color. The result may be disconnected.
//
// Both share the same similarity model (Evaluate), configured by Options.
//
// # Similarity Model
//
// The raw difference between a reference and a sample depends on the
// Criterion:
//   - Composite: largest absolute delta over R, G and B
//   - Red, Green, Blue: absolute delta of that channel only
//   - Hue: wrap-around angular distance, normalized to [0,1] (180° = 1)
//   - Saturation, Value: absolute delta of the HSV component
//
// When transparency selection is active, the alpha delta is used instead and
// color is ignored. Fully transparent samples are never selected otherwise.
//
// With antialiasing off the difference is compared to the threshold (hard
// cutoff). With antialiasing on, differences up to the threshold yield 1,
// differences beyond 1.5×threshold yield 0, and the band in between ramps
// linearly from 1 down to 0.
//
// # Pixel Sources
//
// The algorithms read pixels through the Source interface in a fixed
// comparison format: straight (non-premultiplied) RGBA float32 in [0,1].
// NewImageSource adapts any image.Image, choosing 8-bit or 16-bit storage
// depending on the image's native depth. Callers with their own buffers can
// implement Source directly.
//
// # Thread Safety
//
// Selection calls are synchronous and keep no shared state. A Source may be
// read by concurrent selection calls as long as nothing mutates it meanwhile.
// Masks are not safe for concurrent mutation.
package selection
