// Package platform provides cross-platform filesystem helpers: permission
// management and recursive removal that copes with read-only files left behind
// by git (pack files are created 0444, which Windows refuses to delete).
package platform
