package cpi

import "io"
import "fmt"

import "golang.org/x/text/encoding/charmap"

// Charmap returns the character map matching a DOS codepage number, or
// nil when the codepage has no mapping. Only used to label characters
// in textual dumps; extraction itself never needs one.
func Charmap(codePage int) *charmap.Charmap {
	switch codePage {
	case 437: return charmap.CodePage437
	case 850: return charmap.CodePage850
	case 852: return charmap.CodePage852
	case 855: return charmap.CodePage855
	case 858: return charmap.CodePage858
	case 860: return charmap.CodePage860
	case 862: return charmap.CodePage862
	case 863: return charmap.CodePage863
	case 865: return charmap.CodePage865
	case 866: return charmap.CodePage866
	default: return nil
	}
}

// DumpFont writes a textual bit-row dump of every glyph in the block,
// one labelled header line per character. When the block's codepage has
// a known character map the label includes the rune the code decodes to.
func DumpFont(writer io.Writer, block *FontBlock) error {
	cmap := Charmap(block.CodePage)
	text := fmt.Appendf(nil, "%s:\n", block.Name())
	for _, group := range block.Groups {
		for _, glyph := range group {
			if cmap != nil {
				text = fmt.Appendf(text, "%3d %q\n", glyph.Code, cmap.DecodeByte(glyph.Code))
			} else {
				text = fmt.Appendf(text, "%3d\n", glyph.Code)
			}
			for _, row := range glyph.Bitmap {
				text = append(text, ' ', ' ', '[')
				text = appendRowBits(text, row, block.Width)
				text = append(text, ']', '\n')
			}
		}
	}
	_, err := writer.Write(text)
	return err
}

// Leftmost pixel lives in the most significant bit of each row byte.
func appendRowBits(text []byte, row byte, width int) []byte {
	if width > 8 || width < 1 { width = 8 }
	for i := 0; i < width; i++ {
		if row & (0x80 >> i) != 0 {
			text = append(text, 'X')
		} else {
			text = append(text, ' ')
		}
	}
	return text
}
