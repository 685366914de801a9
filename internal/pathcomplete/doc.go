// Package pathcomplete computes shell-completion candidates for path-valued
// CLI arguments whose files live under a fixed registry root directory
// (tools/, workflows/, expressions/, schemas/).
//
// The resolver takes the partial path the user has typed, works out where
// that fragment points relative to the registry root, and re-expresses every
// known candidate path in the same style the user is typing: bare, relative
// to the working directory, or absolute. It is a pure function over
// precomputed inputs; it performs no registry I/O and never returns an
// error — completion helpers fail soft by offering nothing.
package pathcomplete
