package demo

import "strconv"

// digitFont is a 3x5 block font for the counter.
var digitFont = map[rune][digitsHeight]string{
	'0': {"███", "█ █", "█ █", "█ █", "███"},
	'1': {" ██", "  █", "  █", "  █", "  █"},
	'2': {"███", "  █", "███", "█  ", "███"},
	'3': {"███", "  █", "███", "  █", "███"},
	'4': {"█ █", "█ █", "███", "  █", "  █"},
	'5': {"███", "█  ", "███", "  █", "███"},
	'6': {"███", "█  ", "███", "█ █", "███"},
	'7': {"███", "  █", "  █", "  █", "  █"},
	'8': {"███", "█ █", "███", "█ █", "███"},
	'9': {"███", "█ █", "███", "  █", "███"},
}

// bigDigits renders n in the block font, one space between glyphs.
func bigDigits(n int) []string {
	rows := make([]string, digitsHeight)
	for i, ch := range strconv.Itoa(n) {
		glyph, ok := digitFont[ch]
		if !ok {
			continue
		}
		for r := range rows {
			if i > 0 {
				rows[r] += " "
			}
			rows[r] += glyph[r]
		}
	}
	return rows
}
