// Package keysym resolves symbolic key names to key symbol identifiers.
//
// A keysym identifies a logical key independent of keyboard layout or
// terminal encoding. Identifiers follow X11 keysym numbering: printable
// Latin-1 characters are their own identifiers, function and editing keys
// live on the 0xff00 page, and Unicode keysyms embed a code point as
// 0x01000000|cp. The distinguished Void identifier means "no such keysym".
//
// The package provides:
//
//   - ID: a key symbol identifier
//   - Resolver: the lookup interface consumed by the notation codec
//   - Table: the built-in name table derived from keysymdef.h
//
// Resolution is read-only after construction, so a single Table may be
// shared by any number of concurrent callers.
package keysym
