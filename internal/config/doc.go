// Package config loads and watches kanaflow configuration files.
//
// A configuration file declares the active input mode and a set of
// keymaps whose bindings are written in key notation. Files may be
// TOML or YAML, selected by extension, and may be stored in the legacy
// Japanese encodings (EUC-JP, Shift_JIS, ISO-2022-JP) that predate
// UTF-8 notation configs.
//
// The Manager ties loading to a keymap.Registry and, optionally, to an
// fsnotify watcher so edited configuration files take effect without a
// restart.
package config
