package dto

type StationResponse struct {
	Name         string  `json:"name"`
	Longitude    float64 `json:"longitude"`
	Latitude     float64 `json:"latitude"`
	TollPerCross float64 `json:"toll_per_cross"`
}
