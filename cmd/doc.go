// Package cmd contains the standalone protover binaries.
//
// Two binaries are provided:
//
//   - authority: the directory-authority HTTP service that collects relay
//     advertisements and publishes signed consensus documents
//   - protover: an operator CLI over the core library for canonicalizing
//     protocol lists, computing votes, and checking local support
package cmd
