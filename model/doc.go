// Package model wires an Encoder and AssocMem together for one
// train-and-evaluate cycle. It is the facade the GA's fitness function
// calls: build from a candidate CiM/pIM, train on a split, evaluate on
// another, and report the (accuracy, similarity) objective pair.
package model
