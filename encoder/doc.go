// Package encoder turns quantized multi-channel samples into
// hypervectors: a per-feature quantizer, a single-timestamp spatial
// encoder (direct IM/CiM bind or precomputed pIM lookup), an n-gram
// temporal encoder, and an incremental rolling variant of the same
// n-gram algebra for streaming, one-sample-at-a-time use.
package encoder
