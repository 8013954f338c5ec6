// Package cli provides the command-line interface for notegen.
//
// The cli package implements all commands around the template engine:
//   - new: expand the filename template and create the note file
//   - expand: expand a template and print the result (preview)
//   - counters: inspect or reset persisted counter state
//   - init: create a starter config file
//   - config: show effective configuration
//   - version: show notegen version
//
// The engine itself is stateless between runs apart from its counters;
// because each CLI invocation is a fresh process, the shell persists the
// counter store to ~/.notegen/state.yaml around every expansion so
// {counter} tokens keep numbering sequentially across invocations.
//
// Usage:
//
//	notegen init
//	notegen new
//	notegen new "meeting-{counter:meeting}" --content "# Meeting"
//	notegen new --interactive
//	notegen expand "YYYY-MM-DD_{slugify:Weekly Sync}"
//	notegen counters
//	notegen counters reset
package cli
