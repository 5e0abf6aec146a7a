package domain

// Point - географическая точка
type Point struct {
	Lat float64 `json:"lat" db:"lat"`
	Lon float64 `json:"lon" db:"lon"`
}

// Anchor - фиксированная точка начала и конца каждого дня маршрута
type Anchor struct {
	Name  string `json:"name"`
	Point Point  `json:"point"`
}
