// Package render holds the renderer contract and the name keyed registry the
// generator selects renderers from.
package render
