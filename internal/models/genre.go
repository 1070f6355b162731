package models

// Genre is a distinct genre label of the catalogue and how many movies carry it.
type Genre struct {
	Name  string `json:"name" example:"Sci-Fi"`
	Count int    `json:"count" example:"3"`
}
