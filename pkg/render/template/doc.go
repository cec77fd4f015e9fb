// Package template defines the engine-agnostic template contract used by the
// charm renderers. Adapters such as gotemplate satisfy it so renderers can be
// exercised with an alternate engine in tests.
package template
