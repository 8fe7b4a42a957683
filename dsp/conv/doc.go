// Package conv provides time-domain linear convolution.
//
// [Direct] computes the full linear convolution of a signal with a kernel:
//
//	y[k] = sum_{n+m=k} a[n] * b[m],  len(y) = len(a) + len(b) - 1
//
// There is no circular wraparound and no truncation to the input length;
// callers receive the complete transient-included result. [DirectTo] writes
// into a caller-provided destination to avoid allocation in hot loops.
//
// # Usage
//
//	result, err := conv.Direct(signal, kernel)
//
// The O(N*M) direct form is the only strategy offered. It is exact for short
// and medium kernels such as windowed-sinc FIR designs.
package conv
