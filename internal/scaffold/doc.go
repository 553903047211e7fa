// Package scaffold renders the files "uvm init" drops into a new project: the
// dependency manifest and a .gitattributes hint so hosting sites detect the
// project's language. Existing files are never overwritten. It also keeps the
// modules directory listed in .gitignore.
package scaffold
