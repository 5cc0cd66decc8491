package dto

type PingResponse struct {
	Car       int     `json:"car"`
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Date      string  `json:"date"`
}

type NarrowRoadSightingResponse struct {
	Car       int     `json:"car"`
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Date      string  `json:"date"`
	RoadName  string  `json:"roadName"`
}
