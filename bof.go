package sods

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// the information unit in a BIFF stream.
type bof struct {
	ID   uint16
	Size uint16
}

// nextRecord reads one record header and its payload. io.EOF marks a clean
// end of stream.
func nextRecord(r io.Reader) (bof, []byte, error) {
	var b bof
	if err := binary.Read(r, binary.LittleEndian, &b); err != nil {
		if errors.Is(err, io.EOF) {
			return b, nil, io.EOF
		}
		return b, nil, fmt.Errorf("%w: record header: %w", ErrShortRecord, err)
	}

	data := make([]byte, b.Size)
	if _, err := io.ReadFull(r, data); err != nil {
		return b, nil, fmt.Errorf("%w: record 0x%03x: %w", ErrShortRecord, b.ID, err)
	}

	return b, data, nil
}
