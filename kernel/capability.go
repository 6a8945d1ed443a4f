package kernel

import "os"

// Package-level state - initialized once at package init.
// No mutex needed: Go guarantees init() runs before any other code.
var (
	// forcedKernel is set when QUANTGO_KERNEL names a valid kernel. The
	// selection policy prefers it whenever the forced kernel admits the
	// operation, and falls back to the priority ranking otherwise.
	forcedKernel Kernel
	hasForced    bool

	// CPU feature flags (set by platform-specific init)
	hasASIMD   bool // ARM64 NEON
	hasAVX2    bool // x86-64 AVX2 + FMA
	hasAVX512F bool // x86-64 AVX-512 Foundation
)

// initCapabilities is called from platform-specific init functions after CPU
// features are detected.
func initCapabilities() {
	if override := os.Getenv("QUANTGO_KERNEL"); override != "" {
		if k, ok := ParseKernel(override); ok {
			forcedKernel = k
			hasForced = true
		}
	}
}

// ForcedKernel returns the kernel forced via QUANTGO_KERNEL, if any.
func ForcedKernel() (Kernel, bool) {
	return forcedKernel, hasForced
}

// DefaultMemoryModel returns the memory model preferred on this CPU: aligned
// allocation when wide SIMD is available (the compiler's vectorized loops
// benefit from cache-line-aligned amplitude blocks), plain allocation
// otherwise.
func DefaultMemoryModel() MemoryModel {
	if hasAVX2 || hasAVX512F || hasASIMD {
		return MemoryAligned
	}
	return MemoryDefault
}

// HasASIMD returns true if ARM64 NEON is available.
func HasASIMD() bool { return hasASIMD }

// HasAVX2 returns true if x86-64 AVX2+FMA is available.
func HasAVX2() bool { return hasAVX2 }

// HasAVX512 returns true if x86-64 AVX-512 Foundation is available.
func HasAVX512() bool { return hasAVX512F }
