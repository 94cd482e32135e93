// Package mouse provides pointer event types for the input system.
//
// A pointer Event carries the button (DOM numbering, primary = 0), the
// modifier keys held at the time, and the innermost element under the
// pointer. Patterns resolve the item that was hit by walking up from Target
// with dom.Closest.
package mouse
