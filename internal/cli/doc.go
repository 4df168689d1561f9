// Package cli is responsible for parsing command-line arguments, merging them
// with the optional settings file, validating user input, and defining the
// process exit codes. It translates CLI flags into the application's
// internal configuration.
package cli
