// Package colormap builds a mapping from color names to RGB triplets.
//
// Input is a tab-delimited color table, one record per line:
//
//	<id>\t<name>\t<anything>\t<red>\t<green>\t<blue>
//
// Field 1 is the color name (kept verbatim, spaces allowed) and fields 3, 4
// and 5 are decimal integers. Lines with fewer than four fields are not
// records and are skipped without error. Lines with four or five fields are
// truncated records and are skipped with a warning. A non-integer channel is
// handled according to the configured MalformedPolicy.
//
// Loading is a pure two-phase operation: Parse or Load returns a populated
// ColorMap (or a structured error), and Write or Export serializes it. Export
// always iterates colors sorted by name, so writing the same map twice yields
// byte-identical output.
//
// Diagnostics are emitted through the zerolog.Logger carried in Options; the
// zero Options value is silent.
package colormap
