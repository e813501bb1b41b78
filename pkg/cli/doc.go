// Package cli implements the resultctl command-line interface.
//
// # Overview
//
// resultctl works with the artifacts static analyzers leave behind for a build
// action: one result file and one fix-it file per analyzed source, named after
// an identity string derived from the source path, the analyzer type and the
// original build command.
//
// # Commands
//
// paths - Print artifact names:
//
//	resultctl paths --directory /src --command "gcc -c foo.c" --analyzer clangsa --source foo.c --workspace /tmp/ws
//
// clean - Remove result files (best effort):
//
//	resultctl clean --action action.yaml --workspace /tmp/ws
//
// process - Postprocess, handle and clean result files:
//
//	resultctl process --action action.yaml --workspace /tmp/ws \
//	  [--severity-map FILE] [--skip FILE] [--report-hash TYPE] [--exit-code N] [--keep]
//
// # Build Actions
//
// A build action is given either field by field (--directory, --command,
// --analyzer, --source) or as a YAML/JSON file via --action:
//
//	directory: /src
//	command: gcc -c foo.c
//	analyzer: gcc
//	source: foo.c
//
// Flags override fields loaded from the file. Repeating --source yields one
// handler per source file.
//
// # Output Formats
//
// All commands write a document with kind, apiVersion and metadata to stdout
// or --output, in YAML (default), JSON or table format.
//
// # Environment Variables
//
//	LOG_LEVEL  Set logging verbosity (debug, info, warn, error)
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, execution failure)
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/analyzer-results/pkg/cli.version=1.0.0'"
package cli
