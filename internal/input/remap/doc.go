// Package remap maps physical inputs (keys, buttons, axes) to logical
// action names. A Table holds three independent bidirectional mappings;
// a Profile bundles a named Table with per-gamepad axis configuration,
// combo/sequence definitions, and touch regions. A Registry owns all
// profiles and designates one as active, and a Watcher hot-reloads
// profile files when they change on disk.
package remap
