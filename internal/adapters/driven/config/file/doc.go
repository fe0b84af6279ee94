// Package file provides the TOML configuration store.
//
// Keys are addressed in dot notation ("presenter.theme") and written to
// disk as nested tables:
//
//	[presenter]
//	theme = 'mono'
package file
