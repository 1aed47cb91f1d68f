/*
Package types defines core data structures shared across codefolio.

# Overview

The types package provides shared type definitions for:
  - Virtual files shown in the explorer
  - The theme preference and its two literal values
  - The persisted preference pair (theme, coffee count)

# Theme

Theme is a closed enum with two values, "dark" and "light". The string form
is also the persisted form, so ParseTheme accepts exactly those literals.

# VirtualFile

VirtualFile is a static registry entry. Files are never created or destroyed
at runtime; a file in a collapsed folder is simply not rendered.
*/
package types
