package models

// Beer is a catalogue row from GET /get_all_beers. Field names follow the
// upstream CSV header.
type Beer struct {
	Name   string `json:"Name"`
	ABV    string `json:"ABV"`
	Origin string `json:"Origin"`
	Sort   string `json:"Sort"`
	Type   string `json:"Type"`
	Type1  string `json:"Type1"`
}
