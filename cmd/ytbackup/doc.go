// Package main hosts the ytbackup CLI entrypoint and command graph.
//
// The Cobra-based command tree covers configuration scaffolding and
// validation, an overview of which notification events are switched on, a
// test notification, and manual dispatch of a single event. Configuration
// resolution and logger setup live in commandContext so subcommands only deal
// with output.
package main
