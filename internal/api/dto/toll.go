package dto

// DayTollResponse is the toll statement of one vehicle for one day. Station
// keys stay positional for wire compatibility with existing consumers.
type DayTollResponse struct {
	StationOne        float64 `json:"station_one"`
	StationTwo        float64 `json:"station_two"`
	StationThree      float64 `json:"station_three"`
	StationFour       float64 `json:"station_four"`
	OversizeSurcharge float64 `json:"oversize_surcharge"`
	Total             float64 `json:"total"`
}

type VehicleTollResponse struct {
	CarID      int     `json:"carId"`
	Toll       float64 `json:"toll"`
	TollBigCar float64 `json:"tollBigCar"`
}

type OwnerTollResponse struct {
	TotalToll float64               `json:"total_toll"`
	Detail    []VehicleTollResponse `json:"detail"`
}
