package usecase

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/itinerary-service/internal/domain"
	"github.com/itinerary-service/internal/pkg/utils"
)

// WeatherProvider - источник погодной аннотации визита
type WeatherProvider interface {
	Forecast(date string, place *domain.Place) *domain.Weather
}

// StubWeather - заглушка: переменная облачность, 27..33 °C
type StubWeather struct{}

func (StubWeather) Forecast(_ string, _ *domain.Place) *domain.Weather {
	return &domain.Weather{
		Condition:          "Partly Cloudy",
		TemperatureCelsius: utils.Round1(27 + rand.Float64()*6),
	}
}

// DayRouteInput - входные данные для построения одного дня
type DayRouteInput struct {
	Anchor         domain.Anchor
	StartLocation  string
	DayNumber      int
	Date           string
	Places         []*domain.Place
	TransportMode  string
	PartySize      int
	IncludeWeather bool
}

// DayRouteBuilder строит последовательность визитов в порядке входного списка
type DayRouteBuilder struct {
	entryCost float64
	weather   WeatherProvider
}

// NewDayRouteBuilder - создание построителя дня
func NewDayRouteBuilder(entryCost float64, weather WeatherProvider) *DayRouteBuilder {
	if weather == nil {
		weather = StubWeather{}
	}
	return &DayRouteBuilder{entryCost: entryCost, weather: weather}
}

const (
	dayLengthHours = float64(domain.DayEndHour - domain.DayStartHour)
	clockEpsilon   = 1e-9
)

// BuildDay рассчитывает визиты, время и стоимость дня.
// Визит, который не укладывается до конца дня, пропускается и попадает в DroppedPlaceIDs.
func (b *DayRouteBuilder) BuildDay(in DayRouteInput) domain.DayPlan {
	label := in.StartLocation
	if label == "" {
		label = in.Anchor.Name
	}

	plan := domain.DayPlan{
		DayNumber:     in.DayNumber,
		Date:          in.Date,
		StartTime:     domain.DayStartTime,
		EndTime:       domain.DayEndTime,
		StartLocation: label,
		EndLocation:   label,
		Places:        make([]domain.VisitLeg, 0, len(in.Places)),
	}

	mode := utils.NormalizeTransportMode(in.TransportMode)
	pos := in.Anchor.Point
	elapsed := 0.0
	var distance, travel, budget float64

	for _, p := range in.Places {
		if p == nil || !p.HasCoordinates() {
			continue
		}

		dist := utils.HaversineDistance(pos.Lat, pos.Lon, *p.Latitude, *p.Longitude)
		travelHours := utils.TravelTimeHours(dist, mode)
		visitHours := p.VisitDurationHours()

		if elapsed+travelHours+visitHours > dayLengthHours+clockEpsilon {
			plan.DroppedPlaceIDs = append(plan.DroppedPlaceIDs, p.PlaceID)
			continue
		}

		arrival := elapsed + travelHours
		departure := arrival + visitHours
		transportCost := utils.TransportCost(dist, mode, in.PartySize)

		leg := domain.VisitLeg{
			PlaceID:                     p.PlaceID,
			PlaceName:                   p.Name,
			Category:                    p.Category,
			District:                    p.District,
			Description:                 p.Description,
			Latitude:                    *p.Latitude,
			Longitude:                   *p.Longitude,
			VisitOrder:                  len(plan.Places) + 1,
			ArrivalTime:                 clockAt(arrival),
			DepartureTime:               clockAt(departure),
			EstimatedVisitDurationHours: visitHours,
			EntryCost:                   b.entryCost,
			TransportMode:               mode,
			TransportCost:               transportCost,
			DistanceFromPreviousKm:      dist,
			TravelTimeFromPreviousHours: travelHours,
		}
		if in.IncludeWeather {
			leg.Weather = b.weather.Forecast(in.Date, p)
		}
		plan.Places = append(plan.Places, leg)

		distance += dist
		travel += travelHours
		budget += transportCost + b.entryCost
		pos = p.Point()
		elapsed = departure
	}

	if len(plan.Places) > 0 {
		// Обратный переезд в якорь учитывается только в итогах дня
		back := utils.HaversineDistance(pos.Lat, pos.Lon, in.Anchor.Point.Lat, in.Anchor.Point.Lon)
		distance += back
		travel += utils.TravelTimeHours(back, mode)
		budget += utils.TransportCost(back, mode, in.PartySize)
	}

	plan.TotalDistanceKm = utils.Round2(distance)
	plan.TotalTravelTimeHours = utils.Round2(travel)
	plan.DayBudget = utils.Round2(budget)
	return plan
}

// clockAt переводит часы от начала дня в "HH:MM"
func clockAt(hoursFromStart float64) string {
	minutes := int(math.Round(hoursFromStart*60)) + domain.DayStartHour*60
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
