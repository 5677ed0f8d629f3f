// Package hdc is a hyperdimensional computing (HDC) classifier for
// multi-channel time-series signals, primarily surface EMG gesture and
// movement data.
//
// Given a matrix of per-timestep feature samples and integer class labels,
// it trains a set of prototype hypervectors — one per class — and, for an
// unseen sample sequence, assigns the class whose prototype is most similar
// to the encoded sample.
//
// The module is organized as a set of tightly-scoped subpackages, each
// mirroring one subsystem of the algorithm:
//
//	hypervector/ — fixed-dimension binary/bipolar vectors and their algebra
//	               (bind, bundle, bundle-multi, permute, similarity)
//	itemmem/     — random item memory (IM) for categorical features, plus
//	               its CSV and packed-bitstring codecs
//	cim/         — continuous item memory (CiM): a monotone ladder of
//	               quantization-level hypervectors, and its precomputed
//	               (pIM) IM×CiM fusion
//	encoder/     — maps a sample, or a window of samples, to one hypervector
//	assocmem/    — per-class prototype hypervectors; add/classify/normalize
//	trainer/     — populates an AssocMem from labeled training sequences
//	evaluator/   — classifies held-out sequences and reports metrics
//	ga/          — genetic optimizer that evolves a CiM flip-count genome
//	model/       — thin facade wiring IM/CiM/Encoder/AssocMem together for
//	               training, evaluation and GA fitness
//	hdcconfig/   — the configuration surface (§6 knobs), layered from
//	               defaults, an optional YAML file and environment variables
//	hdclog/      — an injected structured-logging sink
//	hdcmetrics/  — optional Prometheus instrumentation for training/GA runs
//
// Dataset loading, partitioning, down-sampling, result-CSV logging and the
// per-dataset `main` harnesses are explicitly out of scope: this module is
// the batch algorithmic core, not an application.
package hdc
