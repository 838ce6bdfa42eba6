// Package imaging provides the channel isolation transform and the image file
// collaborators around it.
//
// Isolation keeps a single color channel of every pixel and zeroes the other
// two. Achromatic pixels, whose red, green and blue components are all equal
// (black, white and every gray), pass through unchanged.
//
// # Raster
//
// The working raster is an *image.NRGBA rebased at (0,0). Flatten converts any
// decoded image into that form and discards alpha by forcing every pixel
// opaque. Coordinates are 0-based with (0,0) at the top-left corner.
//
// # Thread Safety
//
// All functions are stateless. IsolateInPlace splits the raster into row
// ranges processed concurrently; rows never overlap, so the only
// synchronization is the final join. Callers must not share a raster that is
// being transformed.
//
// # Error Handling
//
// Errors wrap one of three sentinels and can be tested with errors.Is:
//   - ErrInvalidChannel: the channel selector is not red, green or blue
//   - ErrDecode: the input file could not be opened or decoded
//   - ErrEncode: the output file could not be encoded or written
//
// No partial output is ever left behind: Save writes to a temporary file and
// renames it into place only after a successful encode.
package imaging
