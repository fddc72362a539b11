// Package display renders the nested raw output of analysis containers as
// an indented tree for terminal display. It is a thin collaborator: the
// engine itself never depends on it.
package display
