// Package formats provides parsers for the model file formats the viewer reads.
package formats
