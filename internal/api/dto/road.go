package dto

type RoadResponse struct {
	Name           string  `json:"name"`
	LongitudeStart float64 `json:"longitudeStart"`
	LatitudeStart  float64 `json:"latitudeStart"`
	LongitudeEnd   float64 `json:"longitudeEnd"`
	LatitudeEnd    float64 `json:"latitudeEnd"`
	Width          float64 `json:"width"`
}
