// Package commands defines the seedphrase CLI.
//
// Commands
//
//   - (root)   Generate a mnemonic: seedphrase [12|15|18|21|24]
//   - verify   Check a written-down phrase against its checksum
//   - encode   Encode hex entropy, for auditing against published vectors
//   - levels   Print the word count / entropy / checksum table
//
// # Output
//
// Generated phrases go to stdout, space-separated, one per line; --format
// switches to json or yaml. Diagnostics and errors go to stderr and any
// failure exits non-zero with nothing written to stdout.
//
// A strength argument that starts with '-' is parsed as a flag by cobra and
// rejected; after "--" it is treated as an unrecognised strength and falls
// back to 12 words.
//
// # Configuration
//
// SEEDPHRASE_FORMAT and SEEDPHRASE_LOG_LEVEL set defaults that flags override.
package commands
