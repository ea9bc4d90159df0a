// Copyright 2026 The Checkmate Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command framework for the checkmate
// binary: a [Command] tree with pflag-based flag parsing, structured
// help output, and "did you mean" suggestions for mistyped commands
// and flags. Commands are assembled into a tree in
// cmd/checkmate/commands and dispatched from main.
//
// A command that has already printed its own report signals a
// non-zero exit via [ExitError]; main recognizes the ExitCode()
// interface and suppresses the redundant error line.
package cli
