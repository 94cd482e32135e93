// Package key provides keyboard event types and key specification parsing.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key names: DOM-style key values ("ArrowDown", "Home", "Enter", " ", "a")
//   - Modifier: the Ctrl/Shift/Alt/Meta bit mask, plus the ModAny wildcard
//   - Event: a single key press carrying its key, modifiers and target element
//
// # Key Specifications
//
// Key specifications are used by scenario scripts and tooling:
//
//   - Simple keys: "a", "Enter", "Escape", "Space", "Down"
//   - With modifiers: "Shift+ArrowDown", "Ctrl+a", "Ctrl+Shift+Home"
//   - Vim-style: "<S-Down>", "<C-a>", "<CR>"
//
// Events are compared against bindings by exact modifier equality; see
// Modifier.Matches.
package key
