package catalog

import (
	"encoding/json"
	"fmt"
)

// Station is one entry of the JSON radio catalog.
//
// The document served upstream looks like:
//
//	{"radio": [
//	  {
//	    "id":     "radio_01",
//	    "title":  "Title of the radio station",
//	    "genre":  "Primary genre of the radio station",
//	    "source": "Address of the station stream",
//	    "image":  "Station artwork, absolute or relative to the catalog",
//	    "site":   "Home page of the station, if any"
//	  }
//	]}
//
// A relative image such as "logo.jpg" in a catalog served from
// https://www.example.com/json/radio.json resolves to
// https://www.example.com/json/logo.jpg.
type Station struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Genre  string `json:"genre"`
	Source string `json:"source"`
	Image  string `json:"image"`
	Site   string `json:"site"`
}

// Document is the top level catalog object
type Document struct {
	Radio []Station `json:"radio"`
}

// Parse decodes a catalog document. A missing or null "radio" list yields an
// empty, non-nil station slice.
func Parse(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{Radio: []Station{}}, fmt.Errorf("parse catalog: %w", err)
	}
	if doc.Radio == nil {
		doc.Radio = []Station{}
	}
	return doc, nil
}
