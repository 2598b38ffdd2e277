// Package param encodes typed program values into the wire syntax used for
// command and query parameters in the SCPI / IEEE 488.2 programmable-instrument
// control protocol.
//
// It is a one-way encoder: given a typed value, it writes the exact byte
// sequence that a command string or query argument must contain, per the
// SCPI 1999.0 and IEEE 488.2 program-data grammars. Building full command
// strings, parsing instrument responses, and transport (GPIB/USB/TCP) are
// the caller's concern.
//
// Key Features:
//   - Parameter Contract: a single open interface, Encode(io.Writer) error,
//     implemented by every supported value kind. External types may implement
//     it to define instrument-specific parameter encodings.
//   - Scalar Encoders: discrete mnemonics, quoted strings, arbitrary-length
//     blocks, booleans, integers, floats, and the DEFault/MINimum/MAXimum/
//     UP/DOWN sentinel markers.
//   - Composite Encoder: ordered multi-value argument lists joined by commas,
//     nestable to any depth.
//   - Pre-flight Validation: Validate checks a value tree without touching
//     the sink and reports every violation, not just the first.
//
// Usage Example:
//
//	// Assemble the arguments of a two-parameter command
//	args := param.Pair(param.F8(1.5), param.D("TRACE1"))
//
//	var buf bytes.Buffer
//	if err := args.Encode(&buf); err != nil {
//	    // the sink holds a truncated prefix; discard it
//	}
//
//	// ... append buf.Bytes() to the command string and send it ...
//
// Encoders are stateless values. Concurrent encodes on independent sinks
// need no coordination; bytes within one encode call are written in strict
// left-to-right order.
package param
