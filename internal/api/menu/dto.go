package menu

import "time"

type MenuResponse struct {
	Restaurant     RestaurantDTO      `json:"restaurant"`
	Categories     []CategoryDTO      `json:"categories"`
	ActiveSchedule *ActiveScheduleDTO `json:"active_schedule"`
	Watermark      bool               `json:"watermark"`
	RefreshAt      *time.Time         `json:"refresh_at"`
}

type RestaurantDTO struct {
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Timezone string `json:"timezone"`
}

type CategoryDTO struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Items []ItemDTO `json:"items"`
}

type ItemDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PriceCents  int64  `json:"price_cents"`
}

type ActiveScheduleDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}
