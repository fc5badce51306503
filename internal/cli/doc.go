// Package cli defines the Cobra command tree for the rave CLI. Each file in
// this package registers one top-level command (create, doctor, config,
// version) with the root command. Commands only handle flag parsing, path
// resolution and output; project generation lives in internal/scaffold.
package cli
