package cpi

import "io"
import "fmt"

import "github.com/tinne26/cpi/internal"

// Options configures a single extraction run. The value is treated as
// immutable: nothing in the package mutates it, and defaults derived
// from it (like per-font ranges) never leak between fonts.
type Options struct {
	InfoOnly bool // decode and report headers only, skip all bitmap data
	Debug bool // replace progress lines with header dumps on the package logger
	CodePage int // only extract this codepage; 0 extracts all of them
	Ranges RangeSet // characters to extract; empty selects all, per context
	Progress io.Writer // per-codepage progress lines; nil discards them
	Preview io.Writer // textual glyph dump destination; nil disables the dump
}

// Extract walks every codepage of a CPI file and hands the selected
// glyph bitmaps of each font to the given serializer. The source must
// be positioned at the start of the file.
//
// Printer-device entries and codepages excluded by Options.CodePage are
// skipped without error. Any truncation is fatal for the remaining
// codepages: the file is presumed corrupt past that point.
func Extract(src io.ReadSeeker, opts Options, sink Serializer) error {
	reader := internal.NewReader(src)

	fileHeader, err := decodeFileHeader(reader)
	if err != nil { return err }
	if opts.Debug {
		Logger().Debug(
			"FontFileHeader",
			"signature", fmt.Sprintf("0x%02X", fileHeader.Signature),
			"id", string(fileHeader.ID[:]),
			"printerNum", fileHeader.PrinterNum,
			"printerType", fileHeader.PrinterType,
			"infoOffset", fmt.Sprintf("0x%X", fileHeader.InfoOffset),
		)
	}

	var extHeader ExtendedHeader
	if fileHeader.Extended() {
		extHeader, err = decodeExtendedHeader(reader)
		if err != nil { return err }
		if opts.Debug {
			Logger().Debug("DRDOSExtendedFontFileHeader", "numFonts", extHeader.NumFonts())
			for i := range extHeader.CellSizes {
				Logger().Debug(
					"DRDOSExtendedFontFileHeader font",
					"cellSize", extHeader.CellSizes[i],
					"dfdOffset", fmt.Sprintf("0x%X", extHeader.DFDOffsets[i]),
				)
			}
		}
	}

	err = reader.SeekTo(int64(fileHeader.InfoOffset))
	if err != nil { return err }
	infoHeader, err := decodeFontInfoHeader(reader)
	if err != nil { return err }
	if opts.Debug { Logger().Debug("FontInfoHeader", "numCodePages", infoHeader.NumCodePages) }

	for cp := 0; cp < int(infoHeader.NumCodePages); cp++ {
		entryStart := reader.Pos()
		entry, err := decodeCodePageEntry(reader)
		if err != nil { return err }

		if entry.DeviceType == DevicePrinter {
			progressf(&opts, "Printer font, skipping...\n\n")
			err = seekNextEntry(reader, &fileHeader, &entry, entryStart)
			if err != nil { return err }
			continue
		}

		if opts.CodePage != 0 && opts.CodePage != int(entry.CodePage) {
			err = seekNextEntry(reader, &fileHeader, &entry, entryStart)
			if err != nil { return err }
			continue
		}

		if opts.Debug {
			Logger().Debug(
				"CodePageEntryHeader",
				"size", fmt.Sprintf("0x%X", entry.Size),
				"deviceType", entry.DeviceType,
				"deviceName", string(entry.DeviceName[:]),
				"codePage", entry.CodePage,
				"infoOffset", fmt.Sprintf("0x%X", entry.InfoOffset),
			)
		} else {
			progressf(&opts, "Code Page: %d\n", entry.CodePage)
		}

		info, err := decodeCodePageInfo(reader)
		if err != nil { return err }
		if opts.Debug {
			Logger().Debug(
				"CodePageInfoHeader",
				"version", info.Version,
				"numFonts", info.NumFonts,
				"size", fmt.Sprintf("0x%X", info.Size),
			)
		}

		if fileHeader.Extended() {
			err = extractExtended(reader, &opts, sink, &extHeader, &entry, &info)
		} else {
			err = extractStandard(reader, &opts, sink, &entry, &info)
		}
		if err != nil { return err }
		progressf(&opts, "\n")

		err = seekNextEntry(reader, &fileHeader, &entry, entryStart)
		if err != nil { return err }
	}

	return nil
}

// Standard layout: each font's glyph block is Height*NumChars
// contiguous bytes right after its header, character code indexing the
// block directly.
func extractStandard(reader *internal.Reader, opts *Options, sink Serializer, entry *CodePageEntry, info *CodePageInfo) error {
	for font := 0; font < int(info.NumFonts); font++ {
		fontHeader, err := decodeScreenFontHeader(reader)
		if err != nil { return err }
		reportFont(opts, &fontHeader)

		height := int(fontHeader.Height)
		dataSize := int(fontHeader.NumChars)*height
		if opts.Debug { Logger().Debug("ScreenFontHeader bitmap", "length", fmt.Sprintf("0x%X", dataSize)) }

		if opts.InfoOnly {
			err = reader.Skip(int64(dataSize))
			if err != nil { return err }
			continue
		}

		data, err := reader.ReadBytes(dataSize)
		if err != nil { return err }

		ranges := opts.Ranges
		if len(ranges) == 0 { ranges = DefaultRanges(int(fontHeader.NumChars)) }

		block := FontBlock{
			CodePage: int(entry.CodePage),
			Width: int(fontHeader.Width),
			Height: height,
			Groups: make([][]Glyph, 0, len(ranges)),
		}
		for _, rng := range ranges {
			group := make([]Glyph, 0, rng.CharCount())
			for char := int(rng.Start); char <= int(rng.End); char++ {
				start := char*height
				if start + height > len(data) { continue } // range exceeds this font's glyph count
				group = append(group, Glyph{ Code: uint8(char), Bitmap: GlyphBitmap(data[start : start + height]) })
			}
			block.Groups = append(block.Groups, group)
		}

		err = emitBlock(opts, sink, &block)
		if err != nil { return err }
	}
	return nil
}

// DR-DOS layout: font bodies live outside the codepage entry. After the
// per-font headers comes one character index table for the codepage,
// and each glyph is fetched individually from
// index[char]*cellSize + dfdOffset of the extended header's font.
func extractExtended(reader *internal.Reader, opts *Options, sink Serializer, ext *ExtendedHeader, entry *CodePageEntry, info *CodePageInfo) error {
	for font := 0; font < int(info.NumFonts); font++ {
		fontHeader, err := decodeScreenFontHeader(reader)
		if err != nil { return err }
		reportFont(opts, &fontHeader)
	}
	if opts.InfoOnly { return nil }

	// table lifetime is exactly this codepage iteration
	table, err := decodeCharacterIndexTable(reader)
	if err != nil { return err }

	ranges := opts.Ranges
	if len(ranges) == 0 { ranges = DefaultRanges(indexTableLen) }

	for font := 0; font < ext.NumFonts(); font++ {
		cellSize := int(ext.CellSizes[font])
		block := FontBlock{
			CodePage: int(entry.CodePage),
			Width: 8,
			Height: cellSize,
			Extended: true,
			Groups: make([][]Glyph, 0, len(ranges)),
		}
		for _, rng := range ranges {
			group := make([]Glyph, 0, rng.CharCount())
			for char := int(rng.Start); char <= int(rng.End); char++ {
				offset := int64(table[char])*int64(cellSize) + int64(ext.DFDOffsets[font])
				err = reader.SeekTo(offset)
				if err != nil { return err }
				bitmap, err := reader.ReadBytes(cellSize)
				if err != nil { return err }
				group = append(group, Glyph{ Code: uint8(char), Bitmap: GlyphBitmap(bitmap) })
			}
			block.Groups = append(block.Groups, group)
		}

		err = emitBlock(opts, sink, &block)
		if err != nil { return err }
	}
	return nil
}

func emitBlock(opts *Options, sink Serializer, block *FontBlock) error {
	if opts.Preview != nil {
		err := DumpFont(opts.Preview, block)
		if err != nil { return err }
	}
	return sink.EmitFont(block)
}

// Advance to the next codepage entry. FONT.NT files store the offset
// relative to the current entry's start; every other variant stores it
// absolute. This is a genuine quirk of the legacy format (DOS vs
// Windows NT codepage files) and must be preserved as is.
func seekNextEntry(reader *internal.Reader, fileHeader *FileHeader, entry *CodePageEntry, entryStart int64) error {
	if fileHeader.FontNT() {
		return reader.SeekTo(entryStart + int64(entry.NextOffset))
	}
	return reader.SeekTo(int64(entry.NextOffset))
}

func reportFont(opts *Options, fontHeader *ScreenFontHeader) {
	if opts.Debug {
		Logger().Debug(
			"ScreenFontHeader",
			"height", fontHeader.Height,
			"width", fontHeader.Width,
			"numChars", fontHeader.NumChars,
		)
	} else {
		progressf(opts, "%dx%d\t%d characters\n", fontHeader.Width, fontHeader.Height, fontHeader.NumChars)
	}
}

func progressf(opts *Options, format string, args ...any) {
	if opts.Progress == nil { return }
	fmt.Fprintf(opts.Progress, format, args...)
}
