// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the execution lifecycle: load the documents,
// compile and render each one, or run the live server. It is decoupled from
// any specific entrypoint like a CLI.
package app
