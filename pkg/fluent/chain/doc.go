// Package chain provides Chain, a mutable cursor over a subject that lets
// callers invoke a sequence of methods without naming the receiver again.
//
// Call forwards a method name and arguments to the current subject. When the
// method returns a subject (a struct or pointer to struct) the chain moves on
// to it; any other value is kept as the last result. Failures are sticky:
// once an operation fails, the rest of the chain is skipped and Get reports
// the error.
//
// Key operations:
// - Of/Make: wrap a subject or build one from a registered type
// - Call: forward a method to the subject
// - Change: switch subject directly or through a Resolver
// - Tap/Map/Pipe: side effects and transformations
// - When/Unless/WhenAll/WhenAny/WhenNone: conditional execution
// - Rescue/Catch/Retry/Timeout: resilience helpers
// - Dump/DD/Each: debugging and iteration
// - Clone: branch into an independent chain
// - Get/Value/Instance: read the chain
package chain
