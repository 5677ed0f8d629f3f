// Package hypervector implements fixed-dimension binary and bipolar
// hypervectors and the algebra used to manipulate them: bind, bundle,
// bundle-multi, permute and similarity.
//
// Two representation modes are first-class:
//
//   - ModeBinary: each element is in {0,1}. Bundling is bitwise majority,
//     binding is XOR, similarity is normalized Hamming distance mapped to
//     [-1,1]. Vectors are stored as packed 64-bit words so XOR and popcount
//     run bit-parallel.
//   - ModeBipolar: each element is in {-1,+1}. Bundling is elementwise
//     addition (the accumulator may carry a magnitude greater than 1),
//     binding is elementwise multiplication, similarity is cosine.
//
// Mode is a runtime tag carried on every HV, never a build tag or a generic
// type parameter: callers write one code path and get the right algebra for
// whichever mode the vector was constructed with.
//
// All operations are O(D); the binary representation gives O(D/64) for bind
// and similarity thanks to word-parallel XOR/popcount.
package hypervector
