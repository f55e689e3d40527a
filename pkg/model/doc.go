// Package model exposes the shared property model consumed by widget
// annotations, binders, and renderers: the closed set of declared types a
// widget can bind, and the Property descriptor carrying presentation
// metadata. The implementation lives in internal/model; this package
// re-exports the stable surface.
package model
