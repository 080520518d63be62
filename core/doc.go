// Package core contains the application-structuring contracts: the
// Subject/Observer notification primitives, the ViewManager mediator that
// routes widget and model notifications to per-subject handlers, the Model
// contract, and the App controller that owns both.
//
// Allowed here:
// - observer wiring, handler dispatch, command registry, app lifecycle
// - message contracts shared with the host event loop
//
// Not allowed here:
// - concrete widget rendering (package widgets)
// - persistence and configuration (internal packages)
package core
