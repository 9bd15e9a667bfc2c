// Package logging provides concrete implementations of the msgprep.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes prefixed, human-readable lines to stderr
//   - ZapLogger: Writes structured JSON entries through go.uber.org/zap
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
