// Package imaging provides the image side of the selection server: loading
// and caching images, sampling colors, and rendering selections back into
// images (mask export, cut-outs and tinted previews).
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based and relative to the
// image's top-left corner, the same convention as package selection:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Rendering functions do not
// modify their inputs and can be called concurrently.
//
// # Color Representation
//
// Sampled colors are returned as hex ("#RRGGBB" and "#RRGGBBAA"), straight
// 8-bit RGBA, HSV (the space of the hue, saturation and value criteria) and
// the engine's comparison format.
//
// # Output
//
// Rendered images are returned as base64-encoded PNG so they can travel in an
// MCP text response.
package imaging
