// Package main hosts the fmclip CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into framed
// requests against the clipboard daemon: publishing copied and cut selection
// sets, fetching and rendering the shared state, and managing the daemon
// lifecycle. It centralizes configuration resolution and socket discovery so
// subcommands can focus on user experience instead of wiring.
package main
