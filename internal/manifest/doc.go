// Package manifest describes the prebuilt library archives (jars) that every
// generated robot project ships in its lib/ directory. The archive list is
// embedded as archives.yaml, validated against a JSON Schema on load, and
// provides the helpers used to verify a resource directory and copy archives
// out of it.
package manifest
