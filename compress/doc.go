// Package compress provides the codecs applied to saved VTK documents.
//
// Legacy VTK ASCII documents are highly repetitive (one "1 <i>" vertex line
// per point, fixed-precision floats) and compress well. A writer configured
// with a compression type renders the plain document first, then passes it
// through the matching Codec before committing the file.
//
// Supported algorithms:
//   - None: the document is written as-is
//   - Zstd: best ratio, suited for archiving exported clouds
//   - S2: fast, moderate ratio
//   - LZ4: fastest decompression
//
// Zstd uses the pure Go klauspost/compress implementation unless the module
// is built with cgo and the gozstd tag, in which case valyala/gozstd is used.
//
// All codecs are stateless values and safe for concurrent use.
package compress
