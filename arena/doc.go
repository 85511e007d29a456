/*
Package arena provides a growable pool of node slots addressed by integer index.

An arena owns all node storage of a tree. Clients hold plain `Index` values
instead of pointers; an index stays valid for as long as its slot is
occupied. Freed slots are kept on a free-list and handed out again by later
allocations, most recently freed first. Backing storage never shrinks.

Accessing a freed slot is a programming error and panics with an assertion
failure.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package arena

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'slottree'
func tracer() tracing.Trace {
	return tracing.Select("slottree")
}
