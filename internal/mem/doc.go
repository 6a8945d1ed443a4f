// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Provides 64-byte aligned allocation for the amplitude buffer so that
// cache-line and SIMD-friendly access patterns hold regardless of where
// the Go allocator places the backing array.
package mem
