// Package adapters
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Glue that presents foreign buffers as strided views: zero-copy
// reinterpretation of raw byte buffers as typed views, and row/column/
// diagonal views over flat row-major matrices. Everything here is thin
// conversion around the core; no adapter copies element data.
package adapters
