package figure

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
)

/*
Encode renders the figure as JSON. HTML characters are written as is so the
<br> separators of the hover text stay readable.
*/
func Encode(fig Figure) ([]byte, error) {
	return marshal(fig)
}

/*
EncodeDocument renders the file contents for fig. When doubleEncode is set
the figure JSON is wrapped once more as a JSON string.
*/
func EncodeDocument(fig Figure, doubleEncode bool) ([]byte, error) {
	data, err := Encode(fig)
	if err != nil {
		return nil, err
	}
	if !doubleEncode {
		return data, nil
	}
	return marshal(string(data))
}

/*
DecodeDocument parses a document written by EncodeDocument, in either form.
*/
func DecodeDocument(data []byte) (Figure, error) {
	var fig Figure

	var inner string
	if err := json.Unmarshal(data, &inner); err == nil {
		data = []byte(inner)
	}

	if err := json.Unmarshal(data, &fig); err != nil {
		return Figure{}, err
	}
	return fig, nil
}

/*
WriteFile writes the figure document to path, creating parent directories as
needed, and returns the number of bytes written.
*/
func WriteFile(path string, fig Figure, doubleEncode bool) (int, error) {
	data, err := EncodeDocument(fig, doubleEncode)
	if err != nil {
		return 0, err
	}

	// Create output directory if it doesn't exist
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return 0, err
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	n, err := file.Write(data)
	if err != nil {
		return n, err
	}
	return n, file.Close()
}

func marshal(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
