// Package core contains the chain's ambient plumbing: configuration with its
// presets and loaders, and the context options through which a chain picks
// up its configuration, resolver, logger and dump writer. It does not define
// chain behaviour itself.
package core
