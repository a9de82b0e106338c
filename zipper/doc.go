// Package zipper implements the recursive nested-zip archiver at the heart
// of matryoshka.
//
// The package is built from two pieces:
//
// Archive Builder:
//   - ZipFile and ZipDirectory each produce one deflate-compressed zip
//     container on disk for a single filesystem entry, at maximum
//     compression. File containers hold exactly one entry (the file's
//     bytes); directory containers start empty.
//   - Artifact.AppendChild adds an already-built child container into a
//     directory's container as a single entry.
//
// Tree Composer:
//   - Run walks the target directory depth-first, building a container for
//     every file and directory it visits. Each directory's files are
//     processed before its subdirectories, and every child container is
//     appended into its parent's container immediately after it is
//     finished, then removed from disk unless KeepIntermediate is set.
//
// Temporary containers below the root carry a short run token in their
// filename so concurrent or repeated runs over the same tree cannot clobber
// each other. The token never appears in entry names inside a container,
// and the root container (the run's only durable output) is never tokened.
//
// Progress is reported through the Reporter interface; the package itself
// never writes to stdout.
package zipper
