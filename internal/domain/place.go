package domain

// PlacePrediction - подсказка адреса из Places Autocomplete
type PlacePrediction struct {
	PlaceID       string   `json:"place_id"`
	Description   string   `json:"description"`
	MainText      string   `json:"main_text"`
	SecondaryText string   `json:"secondary_text"`
	Types         []string `json:"types"`
}
