// Package generator wires the context loaders, the optional prompter and the
// Python class renderer behind a single Generate call.
package generator
