/*
Package tui implements the interactive browsers.

# Overview

One bubbletea model drives all three browsers. The kind-specific parts
— items, table columns, the preview pane and the exit operations — sit
behind the Browser interface (issues.go, patches.go, inbox.go); Model
owns navigation, the search line, the help overlay and the selection
returned to the invoking command.

# Modes

	Browse  the item table has focus
	Search  the search line has focus; the filter previews live
	Detail  the preview pane has focus and scrolls
	Help    the help overlay is open

The search line keeps a committed value and an edit buffer: typing
filters the list immediately, enter commits, escape restores the last
committed value.

# Selection

Selecting an item (or pressing an operation key) stores a Selection on
the model and quits the program. Nothing is printed here: stdout is the
terminal, and the caller writes the selection to stderr.
*/
package tui
