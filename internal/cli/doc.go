// Package cli implements the apex command-line interface.
//
// # Command Structure
//
//	apex                  - Full-screen live dashboard (alias: apex watch)
//	apex stream           - Print feed updates as JSON or text lines
//	apex config init      - Write a default .apex.yaml
//	apex config show      - Print the effective configuration
//	apex version          - Print build information
//	apex completion       - Generate shell completion scripts
//
// # Flag Handling
//
// Global flags (--config, --debug, --log-file, --no-color, --seed) are
// defined on the root command and available to all subcommands.
//
// # Logging
//
// The dashboard owns the terminal, so commands that run the feed log to a
// rotating file instead of stderr. See setupRuntime.
package cli
