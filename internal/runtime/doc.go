// Package runtime wires configuration, output, git access and prompting into
// the Context handed to every command.
package runtime
