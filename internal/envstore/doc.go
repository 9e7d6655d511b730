// SPDX-License-Identifier: MPL-2.0

// Package envstore implements the provenance-tagged environment table at the
// heart of zbuild. Every variable carries the source that set it, and a write
// only takes effect when its source outranks (or ties with) the source that
// produced the current value. Scopes clone the store, run their steps against
// the clone, and merge the result back, so sibling scopes never observe each
// other's mutations directly.
package envstore
