// Package services wires the loader, the transformer and the store into a
// single pipeline run.
package services
