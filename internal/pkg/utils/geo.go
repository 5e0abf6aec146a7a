package utils

import (
	"math"
	"strings"

	"github.com/golang/geo/s2"
)

const earthRadiusKm = 6371.0

// Режимы передвижения
const (
	ModeBus     = "bus"
	ModeTrain   = "train"
	ModeCar     = "car"
	ModePrivate = "private"
	ModeTaxi    = "taxi"
	ModeWalk    = "walk"
)

// DefaultTransportMode используется, когда предпочтение не указано
const DefaultTransportMode = ModeCar

// средняя скорость, км/ч
var averageSpeedKmh = map[string]float64{
	ModeBus:     40,
	ModeTrain:   50,
	ModeCar:     60,
	ModePrivate: 60,
	ModeTaxi:    60,
	ModeWalk:    5,
}

const defaultSpeedKmh = 60

type fareRule struct {
	perKm     float64
	perPerson bool
}

// тарифы за километр; perPerson=false означает оплату за весь автомобиль
var fareRules = map[string]fareRule{
	ModeBus:     {perKm: 3.0, perPerson: true},
	ModeTrain:   {perKm: 2.5, perPerson: true},
	ModeTaxi:    {perKm: 50.0},
	ModeCar:     {perKm: 15.0},
	ModePrivate: {perKm: 15.0},
	ModeWalk:    {perKm: 0},
}

// HaversineDistance вычисляет расстояние по большому кругу в километрах, округлённое до 0.01
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return Round2(p1.Distance(p2).Radians() * earthRadiusKm)
}

// NormalizeTransportMode приводит режим к нижнему регистру, пустой режим -> car
func NormalizeTransportMode(mode string) string {
	m := strings.ToLower(strings.TrimSpace(mode))
	if m == "" {
		return DefaultTransportMode
	}
	return m
}

// TravelTimeHours - время в пути для режима передвижения, неизвестный режим едет со скоростью по умолчанию
func TravelTimeHours(distanceKm float64, mode string) float64 {
	speed, ok := averageSpeedKmh[NormalizeTransportMode(mode)]
	if !ok {
		speed = defaultSpeedKmh
	}
	if distanceKm <= 0 {
		return 0
	}
	return Round2(distanceKm / speed)
}

// TransportCost - стоимость переезда, округлённая до целой денежной единицы
func TransportCost(distanceKm float64, mode string, partySize int) float64 {
	rule, ok := fareRules[NormalizeTransportMode(mode)]
	if !ok {
		rule = fareRules[DefaultTransportMode]
	}
	if distanceKm <= 0 || rule.perKm == 0 {
		return 0
	}

	cost := distanceKm * rule.perKm
	if rule.perPerson {
		if partySize < 1 {
			partySize = 1
		}
		cost *= float64(partySize)
	}
	return math.Round(cost)
}

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// Round2 округляет до двух знаков после запятой
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 округляет до одного знака после запятой
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
