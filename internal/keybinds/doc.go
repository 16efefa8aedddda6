/*
Package keybinds provides customizable keyboard binding management.

# Overview

Keys map to actions within contexts. A context that doesn't bind a key
falls through to its parent: the per-browser contexts (issues, patches,
inbox) inherit from browser, and everything inherits from global.

# Configuration

Users override bindings through the `keybinds` section of the settings
file, grouped by context name:

	keybinds:
	  browser:
	    "ctrl+n": navigate_down
	  patches:
	    "o": checkout

Binding a key to the empty string removes the default binding. ctrl+c
is reserved and always force-quits.

# Multi-Key Sequences

The registry supports the vim-style 'gg' sequence through
MatchMultiKey: a key bound to go_to_top_prepare arms the sequence, the
next key completes or cancels it.
*/
package keybinds
