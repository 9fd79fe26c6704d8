// Package actions provides the workflows behind gix's commands.
//
// Each action corresponds to a gix command (merge, squash, reset, rebase)
// and sequences git invocations through the git.Client on runtime.Context.
//
// Key patterns:
//   - Actions accept runtime.Context which provides Git, Splog, Prompter and Config
//   - Missing inputs are collected through the Prompter before anything runs
//   - Every precondition is checked before the first mutating git command
//   - Failures are returned as errors, with remediation attached as hints
package actions
