package sods

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	recordBOF     = 0x809
	recordEOF     = 0x00a
	recordFont    = 0x031
	recordXF      = 0x0e0
	recordPalette = 0x092
)

// FormatTable collects the formatting records of a BIFF workbook globals
// stream: fonts, XF records and the palette.
type FormatTable struct {
	Is5ver  bool
	Fonts   []FontInfo
	Xfs     []XF
	Palette Palette
}

// Handler function type for BIFF records.
type recordHandler func(t *FormatTable, data []byte) error

var recordHandlers = map[uint16]recordHandler{
	recordBOF:     handleBOF,
	recordFont:    handleFont,
	recordXF:      handleXF,
	recordPalette: handlePalette,
}

// ReadFormatTable reads BIFF records from r up to the first EOF record and
// keeps the ones describing cell formatting. r is the workbook globals
// stream, already extracted from its container.
func ReadFormatTable(r io.Reader) (*FormatTable, error) {
	t := &FormatTable{Palette: DefaultPalette()}

	for {
		rec, data, err := nextRecord(r)
		if errors.Is(err, io.EOF) {
			return t, nil
		}
		if err != nil {
			return nil, err
		}

		if rec.ID == recordEOF {
			return t, nil
		}

		handler := recordHandlers[rec.ID]
		if handler == nil {
			continue
		}

		if err := handler(t, data); err != nil {
			return nil, err
		}
	}
}

func handleBOF(t *FormatTable, data []byte) error {
	// BIFF5 headers are shorter, only the version matters here
	if len(data) < 2 {
		return fmt.Errorf("%w: bof", ErrShortRecord)
	}
	t.Is5ver = binary.LittleEndian.Uint16(data) != 0x600

	return nil
}

func handleFont(t *FormatTable, data []byte) error {
	f, err := DecodeFont(data)
	if err != nil {
		return err
	}
	t.Fonts = append(t.Fonts, *f)

	return nil
}

func handleXF(t *FormatTable, data []byte) error {
	xf, err := DecodeXF(data, t.Is5ver)
	if err != nil {
		return err
	}
	t.Xfs = append(t.Xfs, xf)

	return nil
}

func handlePalette(t *FormatTable, data []byte) error {
	pal, err := DecodePalette(data)
	if err != nil {
		return err
	}
	t.Palette = pal

	return nil
}

// Style returns the style of the XF record at index i.
func (t *FormatTable) Style(i int) (*Style, error) {
	xf, err := t.xf(i)
	if err != nil {
		return nil, err
	}

	return xf.CellStyle(t.Fonts, t.Palette)
}

// Border returns the border of the XF record at index i.
func (t *FormatTable) Border(i int) (*Border, error) {
	xf, err := t.xf(i)
	if err != nil {
		return nil, err
	}

	return xf.CellBorder(t.Palette), nil
}

func (t *FormatTable) xf(i int) (XF, error) {
	if i < 0 || i >= len(t.Xfs) {
		return nil, fmt.Errorf("sods: xf index %d out of range [0, %d)", i, len(t.Xfs))
	}

	return t.Xfs[i], nil
}
