package hintfmt

import (
	"encoding/json"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"loglens/internal/driver"
)

// JSON writes the records as an indented JSON array.
func JSON(w io.Writer, res *driver.Result, base string, mode PathMode) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(Records(res, base, mode))
}

// MsgPack writes the records as a msgpack array.
func MsgPack(w io.Writer, res *driver.Result, base string, mode PathMode) error {
	enc := msgpack.NewEncoder(w)
	return enc.Encode(Records(res, base, mode))
}

// DecodeMsgPack reads records written by MsgPack.
func DecodeMsgPack(r io.Reader) ([]Record, error) {
	var out []Record
	dec := msgpack.NewDecoder(r)
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}
