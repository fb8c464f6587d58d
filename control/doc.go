// Package control provides the BSV control block framing used to store
// binary values in a byte stream.
//
// Control blocks use a prefix coding scheme to indicate the type of the
// current byte (which then further indicates how many bytes the field
// contains). The intention is to minimize signaling overhead and pack as much
// data directly into the control block as possible.
//
// Control Block
//
// This diagram indicates the bits that are fixed (filled in) vs bits that are
// available for encoding data (blanks) in the first byte of each block.
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 || Type           |                                          |
//  |---------------|---------------||----------------|------------------------------------------|
//  | 1 |                           || Data           | 2^7 = 128 values                         |
//  | 0 . 1 |                       || Data Size      | up to 64 bytes                           |
//  | 0 . 0 . 1 |                   || Data + 1       | 2^(5+8) = 8192 values                    |
//  | 0 . 0 . 0 . 1 |               || Data + 2       | 2^(4+8+8) = 1048576 values               |
//  | 0 . 0 . 0 . 0 . 1 |           || Data Size Size | up to 8 size bytes; at most 2^32 bytes   |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 1 || Empty          | Empty value                              |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 0 || Null           | Null value (for nullable fields)         |
//  |---------------|---------------||----------------|------------------------------------------|
//
// Sizes are indexed starting at 1 to maximize their effective range. Zero
// length data cannot be written as a data block; use Empty.
//
// Data + 1 and Data + 2 blocks keep the high bits of the first data byte in
// the control byte, so they are only chosen when those bits fit. Otherwise
// the encoder falls back to a Data Size block. Decoding always returns the
// same number of bytes that was encoded.
//
// Data Size Size blocks have 3 parts:
//
//  1. Number of bytes for the data size (minus one, in the control byte)
//  2. Number of bytes that contain data (minus one, big-endian)
//  3. Data
//
// The container and skip blocks of the full BSV format (0000_0010 through
// 0000_0111) are rejected by the decoder.
package control
