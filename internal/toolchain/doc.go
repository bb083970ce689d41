// Package toolchain wraps the external lemoc compiler. A Runner executes
// processes; ExecRunner is the real implementation and tests substitute a
// fake. Compiler builds the argument vectors for each lemoc subcommand.
package toolchain
