package usecase

import "github.com/itinerary-service/internal/domain"

// ClusterDraw - сколько мест взять из кластера
type ClusterDraw struct {
	Cluster domain.Cluster
	Max     int
}

// DayTemplate - рецепт состава одного дня
type DayTemplate struct {
	DayNumber int
	Draws     []ClusterDraw
	Cap       int
	ReturnDay bool
}

// regionalRotation - порядок дальних регионов для средних дней
var regionalRotation = []domain.Cluster{
	domain.ClusterCentral,
	domain.ClusterSouth,
	domain.ClusterHighland,
	domain.ClusterAncientCities,
	domain.ClusterWest,
}

// returnIntermediate - промежуточный кластер по пути обратно к якорю
var returnIntermediate = map[domain.Cluster]domain.Cluster{
	domain.ClusterCentral:       domain.ClusterWest,
	domain.ClusterSouth:         domain.ClusterWest,
	domain.ClusterHighland:      domain.ClusterCentral,
	domain.ClusterAncientCities: domain.ClusterCentral,
	domain.ClusterWest:          domain.ClusterAnchorNear,
}

const (
	singleDayCap = 4
	firstDayCap  = 3
	regionalCap  = 4
	returnDayCap = 3
)

// SelectDayTemplates возвращает ровно totalDays шаблонов (пустой список при totalDays < 1)
func SelectDayTemplates(totalDays int) []DayTemplate {
	if totalDays < 1 {
		return []DayTemplate{}
	}

	if totalDays == 1 {
		return []DayTemplate{{
			DayNumber: 1,
			Draws: []ClusterDraw{
				{Cluster: domain.ClusterAnchorNear, Max: singleDayCap},
				{Cluster: domain.ClusterWest, Max: singleDayCap},
			},
			Cap: singleDayCap,
		}}
	}

	templates := make([]DayTemplate, 0, totalDays)
	templates = append(templates, DayTemplate{
		DayNumber: 1,
		Draws:     []ClusterDraw{{Cluster: domain.ClusterAnchorNear, Max: firstDayCap}},
		Cap:       firstDayCap,
	})

	if totalDays == 2 {
		// Второй день сам по себе возвращает в якорь
		return append(templates, DayTemplate{
			DayNumber: 2,
			Draws:     []ClusterDraw{{Cluster: domain.ClusterCentral, Max: firstDayCap}},
			Cap:       firstDayCap,
			ReturnDay: true,
		})
	}

	last := domain.ClusterCentral
	for day := 2; day < totalDays; day++ {
		last = regionalRotation[(day-2)%len(regionalRotation)]
		templates = append(templates, DayTemplate{
			DayNumber: day,
			Draws:     []ClusterDraw{{Cluster: last, Max: regionalCap}},
			Cap:       regionalCap,
		})
	}

	return append(templates, returnTemplate(totalDays, last))
}

func returnTemplate(day int, lastRegional domain.Cluster) DayTemplate {
	intermediate, ok := returnIntermediate[lastRegional]
	if !ok {
		intermediate = domain.ClusterWest
	}
	return DayTemplate{
		DayNumber: day,
		Draws: []ClusterDraw{
			{Cluster: intermediate, Max: 1},
			{Cluster: domain.ClusterAnchorNear, Max: returnDayCap},
		},
		Cap:       returnDayCap,
		ReturnDay: true,
	}
}

// ResolveTemplate выбирает места для дня по шаблону.
// used пополняется выбранными местами, повторный выбор исключён.
func ResolveTemplate(tpl DayTemplate, clusters domain.RegionClusters, used map[string]struct{}) []*domain.Place {
	selected := make([]*domain.Place, 0, tpl.Cap)
	for _, draw := range tpl.Draws {
		taken := 0
		for _, p := range clusters[draw.Cluster] {
			if len(selected) >= tpl.Cap || taken >= draw.Max {
				break
			}
			if _, ok := used[p.PlaceID]; ok {
				continue
			}
			used[p.PlaceID] = struct{}{}
			selected = append(selected, p)
			taken++
		}
	}
	return selected
}
