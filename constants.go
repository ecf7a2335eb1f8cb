package cpi

// File signature bytes, first byte of every CPI file.
const SigStandard = 0xFF // FONT and FONT.NT files
const SigExtended = 0x7F // DR-DOS DRFONT files

// FONT.NT files store next-entry offsets relative to the current entry
// start instead of the file start. Detected through the 7-byte file
// identifier, exactly like the original DOS tools did.
const idFontNT = "FONT.NT"

// Device types of a codepage entry.
const DeviceScreen = 1
const DevicePrinter = 2

// Entries in a DR-DOS character index table.
const indexTableLen = 256
