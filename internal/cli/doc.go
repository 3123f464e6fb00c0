// Package cli provides the passkeeper command-line front end.
//
// It is a thin caller of the core operations: generate a password, check a
// password's strength, store a credential and retrieve it. Commands can be
// given once on the command line or typed into an interactive REPL that runs
// when no command is given.
//
// Commands:
//   - generate [length]    random password, length clamped to 4..50
//   - check                strength of a password read without echo
//   - store [site] [-seal] save username and password digest for a site
//   - retrieve [site]      print the stored username and digest
//   - reveal [site]        decrypt a sealed copy with the master password
//   - help                 list commands
//   - exit | quit          leave the REPL
//
// See App.Run and runREPL for details.
package cli
