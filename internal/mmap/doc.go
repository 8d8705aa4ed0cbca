// Package mmap reads files through read-only memory mappings.
//
// LocalStore reads published catalog objects with ReadFile. Catalogs are
// decoded front to back, so every mapping is advised as sequential.
//
// Unix uses mmap(2) and madvise(2). Windows uses CreateFileMapping and
// MapViewOfFile without advice. Other platforms fall back to a plain read.
//
// Callers must not use the slice returned by Bytes after Close.
package mmap
