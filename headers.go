package cpi

import "fmt"

import "github.com/tinne26/cpi/internal"

// Header layouts of the CPI container. Field order and width are part
// of the on-disk contract; every decode function reads its fields in
// declaration order, little endian, from the current cursor position.
// Beyond the file signature no consistency checking is performed: the
// legacy format has none, and consumers that need strict validation
// should wrap this package instead.

// FileHeader is the fixed 23-byte header at the start of every CPI
// file. The signature byte decides which of the two container layouts
// the rest of the file uses.
type FileHeader struct {
	Signature uint8
	ID [7]byte
	Reserved [8]byte
	PrinterNum uint16
	PrinterType uint8
	InfoOffset uint32 // absolute offset of the FontInfoHeader
}

// Returns whether the file uses the DR-DOS extended layout.
func (self *FileHeader) Extended() bool { return self.Signature == SigExtended }

// Returns whether the file declares itself as a Windows NT codepage
// file, which changes how next-entry offsets are interpreted.
func (self *FileHeader) FontNT() bool { return string(self.ID[:]) == idFontNT }

func decodeFileHeader(reader *internal.Reader) (FileHeader, error) {
	var header FileHeader
	var err error
	header.Signature, err = reader.ReadUint8()
	if err != nil { return header, err }
	if header.Signature != SigStandard && header.Signature != SigExtended {
		return header, fmt.Errorf("%w (signature 0x%02X)", ErrUnsupportedFormat, header.Signature)
	}
	err = reader.ReadFull(header.ID[:])
	if err != nil { return header, err }
	err = reader.ReadFull(header.Reserved[:])
	if err != nil { return header, err }
	header.PrinterNum, err = reader.ReadUint16()
	if err != nil { return header, err }
	header.PrinterType, err = reader.ReadUint8()
	if err != nil { return header, err }
	header.InfoOffset, err = reader.ReadUint32()
	return header, err
}

// ExtendedHeader follows the FileHeader on DR-DOS files. The per-font
// sequences are sized by a count field that precedes them, so both are
// read as "count first, then allocate and fill".
type ExtendedHeader struct {
	CellSizes []uint8    // bytes per glyph, one per font
	DFDOffsets []uint32  // absolute offset of each font's bitmap table
}

func (self *ExtendedHeader) NumFonts() int { return len(self.CellSizes) }

func decodeExtendedHeader(reader *internal.Reader) (ExtendedHeader, error) {
	var header ExtendedHeader
	numFonts, err := reader.ReadUint8()
	if err != nil { return header, err }
	header.CellSizes = make([]uint8, numFonts)
	for i := range header.CellSizes {
		header.CellSizes[i], err = reader.ReadUint8()
		if err != nil { return header, err }
	}
	header.DFDOffsets = make([]uint32, numFonts)
	for i := range header.DFDOffsets {
		header.DFDOffsets[i], err = reader.ReadUint32()
		if err != nil { return header, err }
	}
	return header, nil
}

// FontInfoHeader declares how many codepage entries follow.
type FontInfoHeader struct {
	NumCodePages uint16
}

func decodeFontInfoHeader(reader *internal.Reader) (FontInfoHeader, error) {
	var header FontInfoHeader
	var err error
	header.NumCodePages, err = reader.ReadUint16()
	return header, err
}

// CodePageEntry heads each codepage within the file. InfoOffset points
// to the entry's CodePageInfo, but like the original tools we decode
// that header sequentially and never follow the offset.
type CodePageEntry struct {
	Size uint16
	NextOffset uint32 // next entry; absolute, or relative to this entry's start on FONT.NT files
	DeviceType uint16
	DeviceName [8]byte
	CodePage uint16
	Reserved [6]byte
	InfoOffset uint32
}

func decodeCodePageEntry(reader *internal.Reader) (CodePageEntry, error) {
	var entry CodePageEntry
	var err error
	entry.Size, err = reader.ReadUint16()
	if err != nil { return entry, err }
	entry.NextOffset, err = reader.ReadUint32()
	if err != nil { return entry, err }
	entry.DeviceType, err = reader.ReadUint16()
	if err != nil { return entry, err }
	err = reader.ReadFull(entry.DeviceName[:])
	if err != nil { return entry, err }
	entry.CodePage, err = reader.ReadUint16()
	if err != nil { return entry, err }
	err = reader.ReadFull(entry.Reserved[:])
	if err != nil { return entry, err }
	entry.InfoOffset, err = reader.ReadUint32()
	return entry, err
}

// CodePageInfo describes the font data block of one codepage.
type CodePageInfo struct {
	Version uint16
	NumFonts uint16
	Size uint16
}

func decodeCodePageInfo(reader *internal.Reader) (CodePageInfo, error) {
	var info CodePageInfo
	var err error
	info.Version, err = reader.ReadUint16()
	if err != nil { return info, err }
	info.NumFonts, err = reader.ReadUint16()
	if err != nil { return info, err }
	info.Size, err = reader.ReadUint16()
	return info, err
}

// ScreenFontHeader describes one font within a codepage. The aspect
// fields exist in the format but play no role in extraction.
type ScreenFontHeader struct {
	Height uint8
	Width uint8
	YAspect uint8
	XAspect uint8
	NumChars uint16
}

func decodeScreenFontHeader(reader *internal.Reader) (ScreenFontHeader, error) {
	var header ScreenFontHeader
	var err error
	header.Height, err = reader.ReadUint8()
	if err != nil { return header, err }
	header.Width, err = reader.ReadUint8()
	if err != nil { return header, err }
	header.YAspect, err = reader.ReadUint8()
	if err != nil { return header, err }
	header.XAspect, err = reader.ReadUint8()
	if err != nil { return header, err }
	header.NumChars, err = reader.ReadUint16()
	return header, err
}

// CharacterIndexTable maps character codes to glyph slots on DR-DOS
// files. Indices are signed in the format, so they are kept signed here.
type CharacterIndexTable [indexTableLen]int16

func decodeCharacterIndexTable(reader *internal.Reader) (CharacterIndexTable, error) {
	var table CharacterIndexTable
	var err error
	for i := range table {
		table[i], err = reader.ReadInt16()
		if err != nil { return table, err }
	}
	return table, nil
}
