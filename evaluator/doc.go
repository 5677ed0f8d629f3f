// Package evaluator scores a trained AssocMem against held-out data in
// three modes — direct non-overlapping n-grams, a sliding confidence
// window, and non-temporal per-sample — each producing a confusion
// matrix, overall/class-average accuracy, and mean inter-class
// similarity. It also offers an optional predicted-labels side channel
// independent of scoring.
package evaluator
