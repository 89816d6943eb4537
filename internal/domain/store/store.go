package store

import (
	"bytes"
	"encoding/json"
)

type Store struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"Name"`
	Address     string `json:"Address"`
	PhoneNumber string `json:"PhoneNumber"`
	Email       string `json:"Email"`
	FloorArea   Area   `json:"FloorArea"`
	Established string `json:"Established"`
}

type ListFilter struct {
	Query string
}

// Area is a floor area kept as text. The API serves it either as a JSON
// number or as a string.
type Area string

func (a Area) String() string {
	return string(a)
}

func (a *Area) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Area(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*a = Area(n.String())
	return nil
}
