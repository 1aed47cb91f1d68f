/*
Package explorer implements the virtual file registry and the explorer
sidebar state.

The registry is static: nine files under src and four displayed folders.
State tracks the expanded folders (initially portfolio and src), the active
file (initially about_me.ts), the search query and a keyboard cursor over
the flattened tree returned by Rows.

SelectFile accepts any id, including ids with no registry entry; resolving
such ids is the content package's job.
*/
package explorer
