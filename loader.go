package kanaize

import (
	"io"
)

// MappingReader yields dictionary entries one-by-one.
// It should return io.EOF when the stream is exhausted.
type MappingReader interface {
	Next() (sequence, symbol string, flags Flags, err error)
}

// LoadMappings puts every entry of reader, including the variants its flags
// ask for, into kb. It returns the number of entries read.
//
// File format parsing is intentionally outside the base package. Use adapters
// like package kanadict to parse concrete formats and feed this API.
func LoadMappings(kb *KanaBuilder, reader MappingReader) (int, error) {
	count := 0
	for {
		sequence, symbol, flags, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, err
		}
		if err = kb.PutVariants(sequence, symbol, flags); err != nil {
			return count, err
		}
		count++
	}
	tracer().Debugf("loaded %d dictionary entries, %d mappings", count, kb.Len())
	return count, nil
}
