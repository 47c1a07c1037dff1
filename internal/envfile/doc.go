// Package envfile reads and writes line-oriented KEY=value environment files.
//
// Parsing is lenient. Every line is first classified, and only entry lines
// are split; blank lines, # comments, lines starting with a space or tab,
// and lines without an = are skipped without error. An entry is split at
// its first =, so the value may itself contain = characters. Keys are
// kept verbatim.
//
// Serialization writes one KEY=value line per entry in insertion order,
// joined by newlines with no trailing newline. Comments and blank lines
// from the parsed input are not reproduced.
package envfile
