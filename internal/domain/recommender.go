package domain

// RecommenderHealth - результат проверки доступности ML-сервиса
type RecommenderHealth struct {
	Available   bool   `json:"available"`
	ModelLoaded bool   `json:"model_loaded"`
	Status      string `json:"status,omitempty"`
	Reason      string `json:"reason,omitempty"`
}

// RecommenderPlanRequest - плоский запрос на генерацию плана во внешнем сервисе
type RecommenderPlanRequest struct {
	TotalDays           int      `json:"totalDays"`
	AdultsCount         int      `json:"adultsCount"`
	ChildrenCount       int      `json:"childrenCount"`
	StudentsCount       int      `json:"studentsCount"`
	ForeignersCount     int      `json:"foreignersCount"`
	BudgetRange         string   `json:"budgetRange"`
	PreferredCategories []string `json:"preferredCategories"`
	TransportPreference string   `json:"transportPreference"`
	MaxTravelDistanceKm *float64 `json:"maxTravelDistanceKm,omitempty"`
}

// RecommenderPlan - план, предложенный внешним сервисом (только состав и порядок мест)
type RecommenderPlan struct {
	Title string           `json:"title"`
	Days  []RecommenderDay `json:"daily_plans"`
}

// RecommenderDay - один день плана внешнего сервиса
type RecommenderDay struct {
	Day    int                `json:"day"`
	Places []RecommenderPlace `json:"places"`
}

// RecommenderPlace - место в плане внешнего сервиса
type RecommenderPlace struct {
	PlaceID              string   `json:"place_id"`
	Name                 string   `json:"name"`
	Category             string   `json:"category"`
	District             string   `json:"district"`
	Description          string   `json:"description"`
	Latitude             *float64 `json:"latitude"`
	Longitude            *float64 `json:"longitude"`
	EstimatedTimeToVisit *float64 `json:"estimated_time_to_visit,omitempty"`
}
