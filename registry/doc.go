// Package registry supplies coin systems to the solvers: six built-in
// currency tables with full physical metadata, plus an optional
// SQLite-backed store for user-defined systems.
//
// 🚀 What lives here?
//
//	• Built-ins — usd, eur, cad, aud, nzd, cny, each with per-coin mass,
//	  diameter and composition
//	• Get / Names / All — defensive-copy lookups of the built-ins
//	• Store — persistent custom systems, validated on the way in and on
//	  the way out
//	• Resolve — one lookup across built-ins and store
//	• EncodeSystem / DecodeSystem — the JSON wire form used by the CLI's
//	  systems add/export commands
//
// ✨ Guarantees:
//
//   - Immutability: every lookup returns a private deep copy; the shared
//     tables are never aliased to callers
//   - Validity: nothing leaves this package without passing
//     coins.(*System).Validate
//   - Honest hints: only usd carries CanonicalHint; the audit in package
//     coins stays the source of truth for every table
//
// Logging goes through a package-level zap logger, silent unless the host
// application installs one via SetLogger.
package registry
