// Package charm defines the render context consumed by the charm class
// generator together with the validation and Python literal encoding rules
// applied before any template runs. Loaders in this package build a context
// from YAML or JSON documents and from a charm's metadata.yaml so callers can
// mix file based and flag based inputs.
package charm
