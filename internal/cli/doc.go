// Package cli defines the Cobra command tree for the lemonade CLI. The tree
// is built from an explicit command table (see Commands) rather than
// package-level registrations, and every handler receives its inputs through
// an Env and reports failure by returning an error. Handlers delegate to
// internal packages for business logic and only handle argument parsing,
// I/O formatting, and exit status.
package cli
