// Package store defines the persistence interfaces the scheduling core's
// callers depend on, together with shared database plumbing (the DBTX
// abstraction, transaction helper, and sentinel errors). Implementations
// live under internal/platform; the domain packages never import this
// package, keeping the decision core free of persistence concerns.
package store
