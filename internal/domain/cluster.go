package domain

// Cluster - именованная географическая группа мест
type Cluster string

const (
	ClusterAnchorNear    Cluster = "Anchor-Near"
	ClusterWest          Cluster = "West"
	ClusterCentral       Cluster = "Central"
	ClusterSouth         Cluster = "South"
	ClusterHighland      Cluster = "Highland"
	ClusterAncientCities Cluster = "Ancient-Cities"
)

// AllClusters - все кластеры в порядке удалённости от якорной точки
var AllClusters = []Cluster{
	ClusterAnchorNear,
	ClusterWest,
	ClusterCentral,
	ClusterSouth,
	ClusterHighland,
	ClusterAncientCities,
}

// RegionClusters - распределение кандидатов по кластерам (порядок внутри кластера = порядок каталога)
type RegionClusters map[Cluster][]*Place

// Total возвращает общее количество мест во всех кластерах
func (rc RegionClusters) Total() int {
	n := 0
	for _, places := range rc {
		n += len(places)
	}
	return n
}
