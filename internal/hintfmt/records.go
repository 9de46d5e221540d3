package hintfmt

import (
	"loglens/internal/driver"
)

// Record is the serialized form of one annotation or one failed file.
type Record struct {
	Path   string `json:"path" msgpack:"path"`
	Line   uint32 `json:"line,omitempty" msgpack:"line,omitempty"`
	Col    uint32 `json:"col,omitempty" msgpack:"col,omitempty"`
	Offset int    `json:"offset" msgpack:"offset"`
	Label  string `json:"label,omitempty" msgpack:"label,omitempty"`
	Link   string `json:"link,omitempty" msgpack:"link,omitempty"`
	Error  string `json:"error,omitempty" msgpack:"error,omitempty"`
}

// Records flattens a scan result in file order. Failed files become a
// single record carrying Error.
func Records(res *driver.Result, base string, mode PathMode) []Record {
	if res == nil {
		return []Record{}
	}
	out := make([]Record, 0, res.Count())
	for _, f := range res.Files {
		path := displayPath(f.Path, base, mode)
		if f.Err != nil {
			out = append(out, Record{Path: path, Error: f.Err.Error()})
			continue
		}
		for _, a := range f.Annotations {
			out = append(out, Record{
				Path:   path,
				Line:   a.Line,
				Col:    a.Col,
				Offset: a.Offset,
				Label:  a.Label,
				Link:   a.Link,
			})
		}
	}
	return out
}
