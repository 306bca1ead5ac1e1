// Package main provides the entry point for the roomwatch service.
// It initializes and runs a web server using the Fiber framework that
// manages rooms, positioned roles with tri-state permission flags,
// channels and messages, and resolves a caller's effective permissions
// for every guarded API operation. The application uses gorm for data
// persistence.
package main
