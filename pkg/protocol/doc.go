// Package protocol implements the binary wire format between a live
// session and its remote mirror client.
//
// The server streams host-tree mutations to the client as op frames;
// the client sends user events back as event frames. All multi-byte
// integers use varint encoding (7 bits per byte, MSB continuation);
// strings are varint-length-prefixed UTF-8.
//
// Frame wire format (4-byte header + payload):
//
//	┌─────────────┬──────────────┬───────────────────────────────┐
//	│ Frame Type  │ Flags        │ Payload Length                │
//	│ (1 byte)    │ (1 byte)     │ (2 bytes, big-endian)         │
//	└─────────────┴──────────────┴───────────────────────────────┘
//
// Decoding is defensive: length prefixes are validated against
// allocation limits before any buffer is allocated.
package protocol
