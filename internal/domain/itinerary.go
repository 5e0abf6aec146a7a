package domain

import "time"

// Статусы сгенерированного маршрута
const (
	StatusGeneratedByML = "Generated by ML Model"
	StatusGenerated     = "Generated"
)

// Стратегии планирования
const (
	StrategyDelegated = "delegated"
	StrategyRuleBased = "rule_based"
)

// DateLayout - формат дат маршрута
const DateLayout = "2006-01-02"

// Границы дня
const (
	DayStartTime = "08:00"
	DayEndTime   = "18:00"
	DayStartHour = 8
	DayEndHour   = 18
)

// GenerationRequest - параметры генерации маршрута (уже провалидированные)
type GenerationRequest struct {
	Title               string
	StartDate           time.Time
	EndDate             time.Time
	TotalDays           int
	AdultsCount         int
	ChildrenCount       int
	StudentsCount       int
	ForeignersCount     int
	PreferredCategories []string
	BudgetRange         string
	StartingLocation    string
	TransportPreference string
	IncludeWeather      *bool
	MaxTravelDistanceKm *float64
}

// TotalTravelers - сумма путешественников по всем тарифным категориям
func (r *GenerationRequest) TotalTravelers() int {
	return r.AdultsCount + r.ChildrenCount + r.StudentsCount + r.ForeignersCount
}

// PartySize - размер группы для расчёта стоимости проезда (не меньше 1)
func (r *GenerationRequest) PartySize() int {
	if n := r.TotalTravelers(); n > 0 {
		return n
	}
	return 1
}

// WeatherEnabled - погода включена по умолчанию
func (r *GenerationRequest) WeatherEnabled() bool {
	return r.IncludeWeather == nil || *r.IncludeWeather
}

// Weather - погодная аннотация визита
type Weather struct {
	Condition          string  `json:"condition"`
	TemperatureCelsius float64 `json:"temperature_celsius"`
}

// VisitLeg - переезд от предыдущей позиции и посещение места
type VisitLeg struct {
	PlaceID                     string   `json:"place_id"`
	PlaceName                   string   `json:"place_name"`
	Category                    string   `json:"category"`
	District                    string   `json:"district"`
	Description                 string   `json:"description,omitempty"`
	Latitude                    float64  `json:"latitude"`
	Longitude                   float64  `json:"longitude"`
	VisitOrder                  int      `json:"visit_order"`
	ArrivalTime                 string   `json:"arrival_time"`
	DepartureTime               string   `json:"departure_time"`
	EstimatedVisitDurationHours float64  `json:"estimated_visit_duration_hours"`
	EntryCost                   float64  `json:"total_entry_cost"`
	TransportMode               string   `json:"transport_from_previous"`
	TransportCost               float64  `json:"transport_cost"`
	DistanceFromPreviousKm      float64  `json:"distance_from_previous_km"`
	TravelTimeFromPreviousHours float64  `json:"travel_time_from_previous_hours"`
	Weather                     *Weather `json:"weather,omitempty"`
}

// DayPlan - план одного дня
type DayPlan struct {
	DayNumber            int        `json:"day_number"`
	Date                 string     `json:"date"`
	StartTime            string     `json:"start_time"`
	EndTime              string     `json:"end_time"`
	StartLocation        string     `json:"start_location"`
	EndLocation          string     `json:"end_location"`
	Places               []VisitLeg `json:"places"`
	TotalDistanceKm      float64    `json:"total_distance_km"`
	TotalTravelTimeHours float64    `json:"estimated_travel_time_hours"`
	DayBudget            float64    `json:"day_budget"`
	DroppedPlaceIDs      []string   `json:"dropped_place_ids,omitempty"`
}

// Itinerary - итоговый многодневный маршрут
type Itinerary struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	StartDate          string    `json:"start_date"`
	EndDate            string    `json:"end_date"`
	TotalDays          int       `json:"total_days"`
	TotalPeople        int       `json:"total_people"`
	Status             string    `json:"status"`
	Strategy           string    `json:"strategy"`
	CreatedAt          time.Time `json:"created_at"`
	Days               []DayPlan `json:"days"`
	TotalEstimatedCost float64   `json:"total_estimated_cost"`
}

// PlaceCount - количество посещений во всех днях
func (it *Itinerary) PlaceCount() int {
	n := 0
	for _, d := range it.Days {
		n += len(d.Places)
	}
	return n
}
