// Package assocmem implements the associative memory: one prototype
// hypervector and one sample count per class, classification by
// similarity argmax, and the bipolar incremental-add / binary
// overwrite-on-add update rules.
//
// An AssocMem is always task-local (never shared across concurrent
// trainers or evaluators), so its methods do no internal locking.
package assocmem
