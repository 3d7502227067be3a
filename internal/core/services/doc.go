// Package services implements the driving port interfaces.
// Services contain the core business logic: the pagination engine,
// the per-kind search facades, history recording and settings.
// They call out only through driven ports.
package services
