// Package ioutils provides the file system helpers used to read and
// write catalog files.
//
// # File Operations
//
//	// Read a catalog file, honouring cancellation
//	data, err := ioutils.ReadFile(ctx, "/etc/scales/extra.yaml")
//
//	// Write an export, creating parent directories
//	err := ioutils.WriteFile(ctx, "/tmp/export/scales.json", data)
//
// # Filename Sanitization
//
// Scale names become file names when a catalog is exported one file per
// scale. SanitizeFileName removes characters that are invalid on any
// common file system:
//
//	safe := ioutils.SanitizeFileName("C#/Db Major") // Returns "C#_Db Major"
package ioutils
