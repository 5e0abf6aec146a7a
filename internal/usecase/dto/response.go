package dto

import "github.com/itinerary-service/internal/domain"

// PlaceListResponse - список мест каталога
type PlaceListResponse struct {
	Places []*domain.Place `json:"places"`
	// Total - число мест под фильтром во всём каталоге, не только на странице
	Total int `json:"total"`
}

// ReferenceListResponse - справочник (категории, районы)
type ReferenceListResponse struct {
	Items []string `json:"items"`
	Total int      `json:"total"`
}

// ClusterSummary - кластер с известными районами и количеством мест каталога
type ClusterSummary struct {
	Cluster    domain.Cluster `json:"cluster"`
	Districts  []string       `json:"districts"`
	PlaceCount int            `json:"place_count"`
}

// ClustersResponse - все кластеры в порядке удалённости
type ClustersResponse struct {
	Clusters []ClusterSummary `json:"clusters"`
}

// RecommenderStatusResponse - состояние ML-сервиса
type RecommenderStatusResponse struct {
	Enabled bool                     `json:"enabled"`
	Health  domain.RecommenderHealth `json:"health"`
}
