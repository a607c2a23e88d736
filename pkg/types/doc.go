// Package types defines the public vocabulary shared by the smart view
// engine, its renderers and the propctl CLI: the parser selector
// enumeration and the display options renderers honor.
//
// This package has no dependencies beyond the standard library.
package types
