// Package files provides file-related functionality organized into sub-packages.
//
//   - filesystem: Filesystem abstraction interfaces and implementations (OS and in-memory)
//   - loader: Reads the delimited input files and joins them into one table
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/msgprep/internal/files/filesystem"
//	    "github.com/vvka-141/msgprep/internal/files/loader"
//	)
//
//	l := loader.NewLoader(filesystem.NewOSFileSystem(), loader.Options{IDColumn: "id"})
//	table, err := l.Load(ctx, "disaster_messages.csv", "disaster_categories.csv")
package files
