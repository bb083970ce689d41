// Package project owns the on-disk shape of a lemon project: the Lemonfile
// descriptor and the starter source file. It detects whether a directory is
// already a project and scaffolds new ones from embedded templates. The
// descriptor's contents are never interpreted here; that belongs to lemoc.
package project
