// Package partition implements a vector whose elements are partitioned into
// disjoint sets.
//
// Each slot carries a parent and rank for a union-find forest with path
// compression and union by rank, plus a link into a circular list of the
// members of its set. The forest answers membership queries; the link ring
// lets a set be enumerated in time proportional to its size. Both structures
// are kept consistent across Push, Insert, Remove, Append and Truncate, which
// renumber or repair references as indices move.
package partition
