// Package pattern compiles plugin-name patterns used by load order rules.
//
// A pattern is either a literal filename or a wildcard expression:
//
//   - `Morrowind.esm` - literal, compared case-insensitively
//   - `SomeMod*.esp` - `*` matches any run of characters
//   - `Patch?.esp` - `?` matches exactly one character
//   - `Mod<VER>.esp` - `<VER>` matches a numeric version such as 1.2.3
//
// Matching is always anchored to the whole name and ignores case. A
// pattern that fails to compile becomes a matcher that matches nothing, so
// one malformed rule never stops the rest of a rule file from loading.
package pattern
