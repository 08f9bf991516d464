// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package gc provides reusable byte buffer pooling to reduce garbage collection overhead.
// It abstracts the [bytebufferpool] library to provide a consistent interface for
// buffer management across the module. The buffer package draws the regions of
// its uninitialized allocations from here, and the frame reader and JSON logger
// use pooled scratch space for their per-call work.
//
// [bytebufferpool]: https://github.com/valyala/bytebufferpool
package gc
