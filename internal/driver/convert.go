package driver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/Yurihaia/ycf"
)

// ConvertFormat — целевой формат конвертации
type ConvertFormat string

const (
	ConvertJSON    ConvertFormat = "json"
	ConvertMsgpack ConvertFormat = "msgpack"
)

// Convert reads a document and re-encodes its value tree in the target
// format. JSON output is indented; msgpack is the compact binary form.
func Convert(path string, target ConvertFormat) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	v, err := ycf.ParseValue(data)
	if err != nil {
		return nil, err
	}

	switch target {
	case ConvertJSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v.Interface()); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case ConvertMsgpack:
		return msgpack.Marshal(v.Interface())
	default:
		return nil, fmt.Errorf("unknown target format %q", target)
	}
}
