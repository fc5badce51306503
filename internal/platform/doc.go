// Package platform holds the small host-specific filesystem helpers the CLI
// needs: permission setting that is a no-op on Windows and locating the
// directory of the running executable.
package platform
