// Package record converts line-oriented measurement text into aligned numeric
// column sequences.
//
// The expected input is UTF-8 text with one observation per line, fields
// separated by a single horizontal tab:
//
//	time<TAB>value[<TAB>uncertainty]
//
// Lines whose first character is '#' are comments. Malformed lines are
// dropped individually with a logged diagnostic; a bad line never fails the
// whole parse. The only error Parse can return comes from the underlying
// reader.
package record
