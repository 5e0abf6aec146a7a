package usecase

import (
	"strings"

	"github.com/itinerary-service/internal/domain"
	"github.com/itinerary-service/internal/pkg/utils"
)

type districtCluster struct {
	key     string
	cluster domain.Cluster
}

// districtTable - порядок важен: первое совпадение подстроки выигрывает
var districtTable = []districtCluster{
	{"colombo", domain.ClusterAnchorNear},
	{"dehiwala", domain.ClusterAnchorNear},
	{"mount lavinia", domain.ClusterAnchorNear},
	{"kotte", domain.ClusterAnchorNear},
	{"moratuwa", domain.ClusterAnchorNear},

	{"gampaha", domain.ClusterWest},
	{"negombo", domain.ClusterWest},
	{"kalutara", domain.ClusterWest},
	{"puttalam", domain.ClusterWest},
	{"kurunegala", domain.ClusterWest},
	{"chilaw", domain.ClusterWest},

	{"kandy", domain.ClusterCentral},
	{"matale", domain.ClusterCentral},
	{"kegalle", domain.ClusterCentral},

	{"galle", domain.ClusterSouth},
	{"matara", domain.ClusterSouth},
	{"hambantota", domain.ClusterSouth},
	{"mirissa", domain.ClusterSouth},
	{"tangalle", domain.ClusterSouth},

	{"nuwara eliya", domain.ClusterHighland},
	{"badulla", domain.ClusterHighland},
	{"ella", domain.ClusterHighland},
	{"ratnapura", domain.ClusterHighland},
	{"haputale", domain.ClusterHighland},
	{"moneragala", domain.ClusterHighland},

	{"anuradhapura", domain.ClusterAncientCities},
	{"polonnaruwa", domain.ClusterAncientCities},
	{"dambulla", domain.ClusterAncientCities},
	{"sigiriya", domain.ClusterAncientCities},
	{"jaffna", domain.ClusterAncientCities},
	{"kilinochchi", domain.ClusterAncientCities},
	{"mullaitivu", domain.ClusterAncientCities},
	{"vavuniya", domain.ClusterAncientCities},
	{"mannar", domain.ClusterAncientCities},
	{"trincomalee", domain.ClusterAncientCities},
	{"batticaloa", domain.ClusterAncientCities},
	{"ampara", domain.ClusterAncientCities},
}

// Границы полос удалённости от якорной точки, км
const (
	anchorNearRadiusKm = 30.0
	westRadiusKm       = 60.0
	centralRadiusKm    = 120.0
)

// ClassifyPlaces распределяет места с координатами по кластерам.
// Места без координат пропускаются, порядок внутри кластера сохраняет порядок входа.
func ClassifyPlaces(places []*domain.Place, anchor domain.Anchor) domain.RegionClusters {
	clusters := make(domain.RegionClusters)
	for _, p := range places {
		if p == nil || !p.HasCoordinates() {
			continue
		}
		c := classifyPlace(p, anchor)
		clusters[c] = append(clusters[c], p)
	}
	return clusters
}

func classifyPlace(p *domain.Place, anchor domain.Anchor) domain.Cluster {
	if c, ok := clusterByDistrict(p.District); ok {
		return c
	}
	return clusterByDistance(utils.HaversineDistance(anchor.Point.Lat, anchor.Point.Lon, *p.Latitude, *p.Longitude))
}

func clusterByDistrict(district string) (domain.Cluster, bool) {
	d := strings.ToLower(strings.TrimSpace(district))
	if d == "" {
		return "", false
	}
	for _, entry := range districtTable {
		if strings.Contains(d, entry.key) {
			return entry.cluster, true
		}
	}
	return "", false
}

func clusterByDistance(km float64) domain.Cluster {
	switch {
	case km <= anchorNearRadiusKm:
		return domain.ClusterAnchorNear
	case km <= westRadiusKm:
		return domain.ClusterWest
	case km <= centralRadiusKm:
		return domain.ClusterCentral
	default:
		return domain.ClusterAncientCities
	}
}

// KnownDistricts - ключи таблицы районов, сгруппированные по кластеру
func KnownDistricts() map[domain.Cluster][]string {
	out := make(map[domain.Cluster][]string, len(domain.AllClusters))
	for _, entry := range districtTable {
		out[entry.cluster] = append(out[entry.cluster], entry.key)
	}
	return out
}
