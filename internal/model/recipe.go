package model

import (
	"bytes"
	"strconv"

	"github.com/goccy/go-json"
)

// RecipeID is the server-assigned identifier. The catalog may send it as a
// number or as a string; it is kept as opaque text either way.
type RecipeID string

func (id *RecipeID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = RecipeID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = RecipeID(n.String())
	return nil
}

func (id RecipeID) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(string(id))), nil
}

func (id RecipeID) String() string { return string(id) }

type Recipe struct {
	ID           RecipeID `json:"id"`
	Title        string   `json:"title"`
	ImageURL     string   `json:"image_url"`
	Instructions string   `json:"instructions"`
}

// RecipeInput is the writable part of a recipe, sent on create and update.
type RecipeInput struct {
	Title        string `json:"title" form:"title"`
	ImageURL     string `json:"image_url" form:"image_url"`
	Instructions string `json:"instructions" form:"instructions"`
}
