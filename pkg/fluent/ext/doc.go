// Package ext provides ready-made fluent.Extension implementations.
//
// - Hooks: adapts a pair of funcs
// - Recorder: keeps every notification in memory
// - Logging: logs forwarded calls through zap
// - Metrics: counts and times forwarded calls with prometheus
//
// Extensions attach to a single chain via Chain.AddExtension and are
// notified synchronously, in registration order.
package ext
