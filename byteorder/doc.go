// Package byteorder provides byte-order conversion helpers: in-place
// byte swaps for integer and float values, and reader/writer helpers
// for little-endian wire formats.
//
// The Swap functions reverse the bytes of a value regardless of host
// order. The ReadSwapped and WriteSwapped functions exchange values
// with streams that carry little-endian data, such as RIFF or TIFF
// payloads.
package byteorder
