package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// PhotoID is the identifier the remote photo store assigns. The store may
// send it as a JSON number or a JSON string; it is kept in string form.
type PhotoID string

// UnmarshalJSON accepts both numeric and string ids.
func (id *PhotoID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = PhotoID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("photo id must be a number or string: %w", err)
	}
	*id = PhotoID(n.String())
	return nil
}

// MarshalJSON writes integer ids back as numbers and everything else as strings.
func (id PhotoID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// PhotoRecord is one element of the remote store's GET /api/Photos response.
type PhotoRecord struct {
	ID          PhotoID `json:"id"`
	FileName    string  `json:"fileName"`
	FileData    string  `json:"fileData"` // base64
	ContentType string  `json:"contentType"`
}
