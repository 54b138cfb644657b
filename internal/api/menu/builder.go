package menu

import (
	"time"

	"menu-app/internal/domain/access"
	"menu-app/internal/domain/restaurants"
	"menu-app/internal/domain/schedules"
	"menu-app/internal/domain/subscriptions"
	"menu-app/internal/platform/clock"
)

// MenuInput is everything loaded from storage for one public menu view.
type MenuInput struct {
	Restaurant   *restaurants.Restaurant
	Categories   []restaurants.Category
	Schedules    []restaurants.MenuSchedule
	Subscription *subscriptions.Subscription
}

// BuildMenuResponse evaluates schedules and access at one instant. The
// restaurant's own timezone wins over fallback.
func BuildMenuResponse(in MenuInput, now clock.Func, fallback *time.Location) (MenuResponse, access.Status) {
	at := clock.OrSystem(now)()
	fixed := clock.Fixed(at)

	loc := in.Restaurant.Location(fallback)
	sr := schedules.NewResolver(fixed, loc)
	visible, active := sr.FilterCategories(in.Categories, in.Schedules)

	snap := access.NewResolver(fixed).Evaluate(in.Subscription, in.Restaurant)

	resp := MenuResponse{
		Categories: make([]CategoryDTO, 0, len(visible)),
		Watermark:  snap.Watermark,
		RefreshAt:  sr.NextChangeTime(in.Schedules),
	}
	if in.Restaurant != nil {
		resp.Restaurant = RestaurantDTO{
			Name:     in.Restaurant.Name,
			Slug:     in.Restaurant.Slug,
			Timezone: sr.Location().String(),
		}
	}
	for _, c := range visible {
		resp.Categories = append(resp.Categories, buildCategory(c))
	}
	if active != nil {
		resp.ActiveSchedule = &ActiveScheduleDTO{
			ID:        active.ID,
			Name:      active.Name,
			StartTime: active.StartTime,
			EndTime:   active.EndTime,
		}
	}
	return resp, snap.Status
}

func buildCategory(c restaurants.Category) CategoryDTO {
	dto := CategoryDTO{
		ID:    c.ID,
		Name:  c.Name,
		Items: make([]ItemDTO, 0, len(c.Items)),
	}
	for _, it := range c.Items {
		if !it.Available {
			continue
		}
		dto.Items = append(dto.Items, ItemDTO{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			PriceCents:  it.PriceCents,
		})
	}
	return dto
}
