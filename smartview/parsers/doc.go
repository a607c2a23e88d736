// Package parsers holds one Parser per binary property layout.
//
// A Parser has two steps. Parse walks the buffer through a block.Decoder and
// fills the parser's typed fields; Blocks turns those fields into a
// block.Node tree, including the fields the walk never reached, which render
// as missing. Run drives both steps and attaches the decode error (or a
// trailing JunkData field) to the root.
//
// Every count and length read from the buffer is checked against the bytes
// that remain before it is used, so a corrupt prefix stops the walk with
// block.ErrMalformedLength instead of reading out of bounds.
package parsers
