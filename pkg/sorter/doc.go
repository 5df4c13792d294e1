// Package sorter reorders a content list so that plugin header masters and
// mlox rules are satisfied.
//
// A sort runs five stages in a fixed sequence and never goes back to an
// earlier one:
//
//  1. Hard-dependency discovery: masters declared in each located plugin
//     header that are also part of the content list.
//  2. Constraint satisfaction: repeated pairwise passes that swap entries
//     violating a master dependency or an ORDER rule, bounded by a pass
//     ceiling. Contradictory input ends with a best-effort order.
//  3. Priority placement: NEAREND then NEARSTART rules, each a stable
//     partition, applied in registration order.
//  4. Type heuristic: master files (by suffix) ahead of everything else.
//  5. Pinning: the base game masters at the very top in a fixed order.
//
// Later stages may undo what earlier ones established. The sorter mutates
// the caller's slice and holds no state between calls.
package sorter
