// Package fluent holds the vocabulary shared by the chain and its
// collaborators: the Extension and Resolver capabilities, the error kinds a
// chain can fail with, the Result snapshot and the subject classification
// used by the adoption rule.
//
// Key pieces:
// - Extension: observer notified before and after every forwarded call
// - Resolver: lookup used by Chain.Change to switch subjects by id
// - Cloner: lets a subject control how Chain.Clone copies it
// - IsSubject: decides whether a produced value replaces the current subject
// - Result: immutable snapshot of a chain's value and failure
package fluent
