package keysym

import (
	"strconv"
	"strings"
	"unicode"
)

// Identifiers for keys the default table names and the char derivation
// relies on. Values follow /usr/include/X11/keysymdef.h.
const (
	ksBackSpace  ID = 0xff08
	ksTab        ID = 0xff09
	ksLinefeed   ID = 0xff0a
	ksReturn     ID = 0xff0d
	ksPause      ID = 0xff13
	ksScrollLock ID = 0xff14
	ksEscape     ID = 0xff1b
	ksDelete     ID = 0xffff

	ksKanji            ID = 0xff21
	ksMuhenkan         ID = 0xff22
	ksHenkan           ID = 0xff23
	ksRomaji           ID = 0xff24
	ksHiragana         ID = 0xff25
	ksKatakana         ID = 0xff26
	ksHiraganaKatakana ID = 0xff27
	ksZenkaku          ID = 0xff28
	ksHankaku          ID = 0xff29
	ksZenkakuHankaku   ID = 0xff2a
	ksKanaLock         ID = 0xff2d
	ksKanaShift        ID = 0xff2e
	ksEisuShift        ID = 0xff2f
	ksEisuToggle       ID = 0xff30

	ksHome  ID = 0xff50
	ksLeft  ID = 0xff51
	ksUp    ID = 0xff52
	ksRight ID = 0xff53
	ksDown  ID = 0xff54
	ksPrior ID = 0xff55
	ksNext  ID = 0xff56
	ksEnd   ID = 0xff57
	ksBegin ID = 0xff58

	ksSelect     ID = 0xff60
	ksPrint      ID = 0xff61
	ksInsert     ID = 0xff63
	ksUndo       ID = 0xff65
	ksMenu       ID = 0xff67
	ksHelp       ID = 0xff6a
	ksBreak      ID = 0xff6b
	ksModeSwitch ID = 0xff7e
	ksNumLock    ID = 0xff7f

	ksKPSpace    ID = 0xff80
	ksKPTab      ID = 0xff89
	ksKPEnter    ID = 0xff8d
	ksKPMultiply ID = 0xffaa
	ksKPAdd      ID = 0xffab
	ksKPSubtract ID = 0xffad
	ksKPDecimal  ID = 0xffae
	ksKPDivide   ID = 0xffaf
	ksKP0        ID = 0xffb0
	ksKP9        ID = 0xffb9

	ksF1  ID = 0xffbe
	ksF12 ID = 0xffc9

	ksShiftL   ID = 0xffe1
	ksShiftR   ID = 0xffe2
	ksControlL ID = 0xffe3
	ksControlR ID = 0xffe4
	ksCapsLock ID = 0xffe5
	ksMetaL    ID = 0xffe7
	ksMetaR    ID = 0xffe8
	ksAltL     ID = 0xffe9
	ksAltR     ID = 0xffea
	ksSuperL   ID = 0xffeb
	ksSuperR   ID = 0xffec
	ksHyperL   ID = 0xffed
	ksHyperR   ID = 0xffee
)

type entry struct {
	name string
	id   ID
}

// tableEntries lists named keysyms in definition order. The first entry
// for an ID supplies its canonical name; later entries are aliases.
var tableEntries = []entry{
	// Latin-1 punctuation. Single characters resolve through the
	// printable-rune fallback; these give them their spelled names.
	{"space", 0x20},
	{"exclam", 0x21},
	{"quotedbl", 0x22},
	{"numbersign", 0x23},
	{"dollar", 0x24},
	{"percent", 0x25},
	{"ampersand", 0x26},
	{"apostrophe", 0x27},
	{"quoteright", 0x27},
	{"parenleft", 0x28},
	{"parenright", 0x29},
	{"asterisk", 0x2a},
	{"plus", 0x2b},
	{"comma", 0x2c},
	{"minus", 0x2d},
	{"period", 0x2e},
	{"slash", 0x2f},
	{"colon", 0x3a},
	{"semicolon", 0x3b},
	{"less", 0x3c},
	{"equal", 0x3d},
	{"greater", 0x3e},
	{"question", 0x3f},
	{"at", 0x40},
	{"bracketleft", 0x5b},
	{"backslash", 0x5c},
	{"bracketright", 0x5d},
	{"asciicircum", 0x5e},
	{"underscore", 0x5f},
	{"grave", 0x60},
	{"quoteleft", 0x60},
	{"braceleft", 0x7b},
	{"bar", 0x7c},
	{"braceright", 0x7d},
	{"asciitilde", 0x7e},
	{"yen", 0xa5},

	// TTY function keys.
	{"BackSpace", ksBackSpace},
	{"Tab", ksTab},
	{"Linefeed", ksLinefeed},
	{"Return", ksReturn},
	{"Enter", ksReturn},
	{"Pause", ksPause},
	{"Scroll_Lock", ksScrollLock},
	{"Escape", ksEscape},
	{"Esc", ksEscape},
	{"Delete", ksDelete},

	// Japanese input keys.
	{"Kanji", ksKanji},
	{"Muhenkan", ksMuhenkan},
	{"Henkan", ksHenkan},
	{"Henkan_Mode", ksHenkan},
	{"Romaji", ksRomaji},
	{"Hiragana", ksHiragana},
	{"Katakana", ksKatakana},
	{"Hiragana_Katakana", ksHiraganaKatakana},
	{"Zenkaku", ksZenkaku},
	{"Hankaku", ksHankaku},
	{"Zenkaku_Hankaku", ksZenkakuHankaku},
	{"Kana_Lock", ksKanaLock},
	{"Kana_Shift", ksKanaShift},
	{"Eisu_Shift", ksEisuShift},
	{"Eisu_toggle", ksEisuToggle},

	// Motion keys.
	{"Home", ksHome},
	{"Left", ksLeft},
	{"Up", ksUp},
	{"Right", ksRight},
	{"Down", ksDown},
	{"Prior", ksPrior},
	{"Page_Up", ksPrior},
	{"Next", ksNext},
	{"Page_Down", ksNext},
	{"End", ksEnd},
	{"Begin", ksBegin},

	// Misc editing keys.
	{"Select", ksSelect},
	{"Print", ksPrint},
	{"Insert", ksInsert},
	{"Undo", ksUndo},
	{"Menu", ksMenu},
	{"Help", ksHelp},
	{"Break", ksBreak},
	{"Mode_switch", ksModeSwitch},
	{"Num_Lock", ksNumLock},

	// Keypad.
	{"KP_Space", ksKPSpace},
	{"KP_Tab", ksKPTab},
	{"KP_Enter", ksKPEnter},
	{"KP_Multiply", ksKPMultiply},
	{"KP_Add", ksKPAdd},
	{"KP_Separator", 0xffac},
	{"KP_Subtract", ksKPSubtract},
	{"KP_Decimal", ksKPDecimal},
	{"KP_Divide", ksKPDivide},

	// Modifier keys.
	{"Shift_L", ksShiftL},
	{"Shift_R", ksShiftR},
	{"Control_L", ksControlL},
	{"Control_R", ksControlR},
	{"Caps_Lock", ksCapsLock},
	{"Meta_L", ksMetaL},
	{"Meta_R", ksMetaR},
	{"Alt_L", ksAltL},
	{"Alt_R", ksAltR},
	{"Super_L", ksSuperL},
	{"Super_R", ksSuperR},
	{"Hyper_L", ksHyperL},
	{"Hyper_R", ksHyperR},
}

// Table is the built-in Resolver. It is read-only after construction.
type Table struct {
	byName map[string]ID
	byFold map[string]ID
	names  map[ID]string
}

// NewTable builds a table from the built-in keysym definitions.
func NewTable() *Table {
	t := &Table{
		byName: make(map[string]ID, len(tableEntries)+128),
		byFold: make(map[string]ID, len(tableEntries)+128),
		names:  make(map[ID]string, len(tableEntries)+128),
	}

	add := func(name string, id ID) {
		if _, ok := t.byName[name]; !ok {
			t.byName[name] = id
		}
		fold := strings.ToLower(name)
		if _, ok := t.byFold[fold]; !ok {
			t.byFold[fold] = id
		}
		if _, ok := t.names[id]; !ok {
			t.names[id] = name
		}
	}

	// Letters and digits are their own names.
	for r := 'a'; r <= 'z'; r++ {
		add(string(r), ID(r))
	}
	for r := 'A'; r <= 'Z'; r++ {
		add(string(r), ID(r))
	}
	for r := '0'; r <= '9'; r++ {
		add(string(r), ID(r))
	}
	for i, id := 1, ksF1; id <= ksF12; i, id = i+1, id+1 {
		add("F"+strconv.Itoa(i), id)
	}
	for i, id := 0, ksKP0; id <= ksKP9; i, id = i+1, id+1 {
		add("KP_"+strconv.Itoa(i), id)
	}

	for _, e := range tableEntries {
		add(e.name, e.id)
	}

	return t
}

var std = NewTable()

// Default returns the shared built-in table.
func Default() *Table { return std }

var _ Resolver = (*Table)(nil)

// Resolve returns the ID for a key name. Lookup is exact first, then
// case-insensitive, then a single printable character resolves to its
// own identifier. Unknown names return Void.
func (t *Table) Resolve(name string) ID {
	if id, ok := t.byName[name]; ok {
		return id
	}
	if id, ok := t.byFold[strings.ToLower(name)]; ok {
		return id
	}
	if rs := []rune(name); len(rs) == 1 && unicode.IsPrint(rs[0]) {
		return FromRune(rs[0])
	}
	return Void
}

// Name returns the canonical name for an ID, or "" when the table has
// no name for it.
func (t *Table) Name(id ID) string {
	return t.names[id]
}

// Char returns the literal character for an ID, or 0 when none.
func (t *Table) Char(id ID) rune {
	return charOf(id)
}
