// Package cli provides the interactive TravelMate command-line client.
//
// It wires configuration, the local SQLite store, the REST API client, and an
// interactive REPL. A persistent menu header repaints itself whenever the
// session or the selected language changes, including changes made by another
// running client against the same database file.
//
// Key features:
//   - Login / Signup / Forgot-password / Logout
//   - Language switching with live re-render of mounted views
//   - Photo album management with an offline read cache
//   - Destination recommendations and landmark recognition
//   - A conversational travel assistant
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, MenuView, and runREPL for details.
package cli
