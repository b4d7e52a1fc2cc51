// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Contract surface shared by the strided-view library: collaborator
// interfaces for buffer owners, invalidation guards, and the structured
// error values carried by contract-violation panics.
//
// The library distinguishes exactly two failure categories. Caller bugs
// (out-of-range reshape bounds, zero partition counts, use of a consumed
// handle) are fatal: the offending operation panics with an *Error and is
// never recovered internally. Boundary queries (Get with an out-of-range
// index) are ordinary, handleable outcomes reported through a false ok
// result. Nothing in the library fails for environmental reasons.
package api
