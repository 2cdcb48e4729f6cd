package keysym

// ID identifies a key symbol. Values follow the X11 keysym numbering:
// printable Latin-1 characters are their own codepoint, function and
// editing keys live on the 0xff00 page, and any other Unicode
// codepoint is carried as 0x01000000 plus the codepoint.
type ID uint32

// Void is the null keysym. Resolvers return it for names they do not
// recognize.
const Void ID = 0xffffff

const unicodeBase ID = 0x01000000

// Resolver maps between key names, keysym identifiers, and literal
// characters. Implementations must be safe for concurrent use.
type Resolver interface {
	// Resolve returns the ID for a key name, or Void when the name is
	// unknown.
	Resolve(name string) ID
	// Name returns the canonical name for an ID, or "" when it has
	// none.
	Name(id ID) string
	// Char returns the literal character an ID produces, or 0 when it
	// produces none.
	Char(id ID) rune
}

// IsUnicode reports whether the ID is a Unicode-escape keysym rather
// than a Latin-1 or function-key value.
func (id ID) IsUnicode() bool {
	return id&unicodeBase != 0 && id != Void
}

// FromRune returns the keysym for a literal character. Printable
// Latin-1 characters map to their own codepoint; everything else is
// carried as a Unicode-escape keysym.
func FromRune(r rune) ID {
	if r >= 0x20 && r <= 0x7e || r >= 0xa0 && r <= 0xff {
		return ID(r)
	}
	return unicodeBase | ID(r)
}

// charOf derives the literal character for an ID. TTY function keys on
// the 0xff00 page carry their ASCII control code in the low bits, and
// the keypad mirrors the printable characters of its keys.
func charOf(id ID) rune {
	switch {
	case id >= 0x20 && id <= 0x7e, id >= 0xa0 && id <= 0xff:
		return rune(id)
	case id == ksBackSpace, id == ksTab, id == ksLinefeed, id == ksReturn, id == ksEscape:
		return rune(id & 0x7f)
	case id == ksDelete:
		return 0x7f
	case id == ksKPSpace:
		return ' '
	case id == ksKPTab:
		return '\t'
	case id == ksKPEnter:
		return '\r'
	case id >= ksKPMultiply && id <= ksKP9:
		return rune(id & 0x7f)
	case id.IsUnicode():
		return rune(id &^ unicodeBase)
	default:
		return 0
	}
}
