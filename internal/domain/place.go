package domain

import "time"

// Place представляет достопримечательность из каталога
type Place struct {
	PlaceID              string    `json:"place_id" db:"place_id"`
	Name                 string    `json:"name" db:"name"`
	District             string    `json:"district" db:"district"`
	Region               string    `json:"region" db:"region"`
	Category             string    `json:"category" db:"category"`
	Description          string    `json:"description" db:"description"`
	EstimatedTimeToVisit *float64  `json:"estimated_time_to_visit,omitempty" db:"estimated_time_to_visit"`
	Latitude             *float64  `json:"latitude,omitempty" db:"latitude"`
	Longitude            *float64  `json:"longitude,omitempty" db:"longitude"`
	CreatedAt            time.Time `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time `json:"updated_at" db:"updated_at"`
}

// HasCoordinates - места без координат не участвуют в планировании
func (p *Place) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// Point возвращает координаты места; вызывать только при HasCoordinates
func (p *Place) Point() Point {
	return Point{Lat: *p.Latitude, Lon: *p.Longitude}
}

// VisitDurationHours - оценка времени посещения, 2 часа если не задана
func (p *Place) VisitDurationHours() float64 {
	if p.EstimatedTimeToVisit == nil || *p.EstimatedTimeToVisit < 0 {
		return DefaultVisitDurationHours
	}
	return *p.EstimatedTimeToVisit
}

// DefaultVisitDurationHours - длительность посещения по умолчанию
const DefaultVisitDurationHours = 2.0

// PlaceFilter - фильтр списка каталога (пустые поля не ограничивают выборку)
type PlaceFilter struct {
	Categories []string
	District   string
	Limit      int
	Offset     int
}
