// Package app wires application dependencies for the CLI and daemon.
//
// It loads Config from defaults and SEEDPHRASE_* environment variables,
// builds the logger, and exposes the generator service via the Wire struct
// for commands to use.
package app
