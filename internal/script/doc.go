// Package script loads, validates and runs partition scripts: TOML files
// that describe an initial set of labeled elements and a sequence of
// operations and expectations applied to a partition.Vec.
//
// Validation tracks the length the partition will have at every step, so a
// script that passes Validate never hands the partition an index it would
// reject.
package script
