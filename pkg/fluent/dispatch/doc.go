// Package dispatch resolves method names on subjects and invokes them.
//
// Resolution is name-indexed: a (subject type, method name) pair maps to an
// index into the type's method set, or to "absent". Those answers are
// memoized in a Cache; Shared returns the process-wide instance used by all
// chains. The Catalog maps type identifiers to constructors for Chain.Make.
//
// Key operations:
// - Lookup: find a method by exact or capitalised name, consulting a Cache
// - Prepare: convert loose arguments to the method's parameter types
// - Call: invoke and split off a trailing error result
// - RegisterType/Construct: build subjects from registered constructors
package dispatch
