// Package types defines the data structures shared between the rule engine,
// the sorter, and the command line: chiefly ContentEntry, the unit a load
// order is made of.
package types
