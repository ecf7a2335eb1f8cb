package cpi

import "io"
import "fmt"

// GlyphBitmap holds the raw row bytes of a single character cell,
// 1 bit per pixel, top row first.
type GlyphBitmap []byte

// A Glyph pairs a character code with its extracted bitmap.
type Glyph struct {
	Code uint8
	Bitmap GlyphBitmap
}

// A FontBlock carries every glyph selected from one font of one
// codepage, grouped by the ranges that selected them. Group order and
// in-group order reproduce the selection order exactly.
type FontBlock struct {
	CodePage int
	Width int
	Height int // row count per glyph; the cell size on DR-DOS fonts
	Extended bool // DR-DOS fonts use a different text framing
	Groups [][]Glyph
}

// Returns the deterministic identifier used to name this block's
// output, e.g. "CP437_8x16__1bpp".
func (self *FontBlock) Name() string {
	return fmt.Sprintf("CP%d_%dx%d__1bpp", self.CodePage, self.Width, self.Height)
}

// Returns the total byte size of the block's selected glyph data.
func (self *FontBlock) DataSize() int {
	var size int
	for _, group := range self.Groups { size += len(group)*self.Height }
	return size
}

// Serializer consumes extracted fonts one block at a time.
type Serializer interface {
	EmitFont(block *FontBlock) error
}

// SourceWriter renders font blocks as C-style byte array literals,
// appending every block of the run to the same destination. The exact
// framing (separator placement, line breaks, the fused closing brace)
// matches the output of the original cpi2hex tool byte for byte.
type SourceWriter struct {
	Target io.Writer
}

func (self *SourceWriter) EmitFont(block *FontBlock) error {
	text := fmt.Appendf(nil, "const unsigned char %s[%d] = {\n", block.Name(), block.DataSize())
	if block.Extended {
		text = appendGlyphLines(text, block)
	} else {
		text = appendRowBytes(text, block)
	}
	_, err := self.Target.Write(text)
	if err != nil { return fmt.Errorf("%w: %s", ErrOutputUnavailable, err.Error()) }
	return nil
}

// Standard framing: one comma-separated hex byte per data byte, with a
// cosmetic line break after every Height bytes. The column counter
// resets at each range boundary, and the very last byte carries the
// closing brace instead of a separator. The brace placement counts the
// actual data bytes rather than trusting group positions: trailing
// groups can be empty when a range overshoots the font's glyph count,
// and the block must still close.
func appendRowBytes(text []byte, block *FontBlock) []byte {
	remaining := block.DataSize()
	if remaining == 0 { return append(text, []byte("};\n")...) }
	for _, group := range block.Groups {
		col := 0
		for _, glyph := range group {
			for _, value := range glyph.Bitmap {
				remaining--
				if remaining == 0 {
					text = fmt.Appendf(text, "0x%02X};\n", value)
				} else {
					text = fmt.Appendf(text, "0x%02X,", value)
				}
				col++
				if col == block.Height {
					text = append(text, '\n')
					col = 0
				}
			}
		}
	}
	return text
}

// DR-DOS framing: one line per character cell, bytes comma-separated
// within the line, a trailing comma between cells and the closing brace
// plus a blank line after the last cell. Like appendRowBytes, the
// closing brace goes on the last cell actually present, not on a group
// position that may be empty.
func appendGlyphLines(text []byte, block *FontBlock) []byte {
	remaining := 0
	for _, group := range block.Groups { remaining += len(group) }
	if remaining == 0 { return append(text, []byte("};\n\n")...) }
	for _, group := range block.Groups {
		for _, glyph := range group {
			for i, value := range glyph.Bitmap {
				text = fmt.Appendf(text, "0x%02X", value)
				if i < len(glyph.Bitmap) - 1 { text = append(text, ',') }
			}
			remaining--
			if remaining == 0 {
				text = append(text, []byte("};\n\n")...)
			} else {
				text = append(text, []byte(",\n")...)
			}
		}
	}
	return text
}

// RawWriter writes each font block as a raw byte stream, one
// destination per block, no separators or headers. Create receives the
// block's deterministic name; standard blocks get a ".bin" suffix,
// DR-DOS blocks keep the bare name (as the original tool named them).
type RawWriter struct {
	Create func(name string) (io.WriteCloser, error)
}

func (self *RawWriter) EmitFont(block *FontBlock) error {
	name := block.Name()
	if !block.Extended { name += ".bin" }
	out, err := self.Create(name)
	if err != nil {
		return fmt.Errorf("%w %s: %s", ErrOutputUnavailable, name, err.Error())
	}
	for _, group := range block.Groups {
		for _, glyph := range group {
			_, err = out.Write(glyph.Bitmap)
			if err != nil {
				out.Close()
				return fmt.Errorf("%w %s: %s", ErrOutputUnavailable, name, err.Error())
			}
		}
	}
	return out.Close()
}
