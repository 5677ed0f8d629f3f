// Package itemmem implements the Item Memory (IM): an ordered, immutable
// sequence of independently-random hypervectors, one per feature index.
//
// It also owns the two on-disk encodings shared by IM and the continuous
// item memory ladder in package cim: a commented CSV form and a packed
// bitstring form. Both codecs operate on a plain []*hypervector.HV plus a
// small Metadata struct, so cim can reuse them for its own level tables
// without importing anything IM-specific.
package itemmem
