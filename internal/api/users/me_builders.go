package users

import (
	"menu-app/internal/domain/access"
	"menu-app/internal/domain/restaurants"
	"menu-app/internal/domain/subscriptions"
	"menu-app/internal/domain/users"
)

func BuildUserDTO(u users.User) UserDTO {
	return UserDTO{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}
}

func BuildRestaurantDTO(r *restaurants.Restaurant, appURL string) *RestaurantDTO {
	if r == nil {
		return nil
	}
	return &RestaurantDTO{
		ID:        r.ID,
		Name:      r.Name,
		Slug:      r.Slug,
		Timezone:  r.Timezone,
		PublicURL: restaurants.BuildPublicURL(appURL, r.Slug),
	}
}

func BuildSubscriptionDTO(s *subscriptions.Subscription) *SubscriptionDTO {
	if s == nil {
		return nil
	}
	return &SubscriptionDTO{
		Plan:                 s.Plan,
		Status:               s.Status,
		CurrentPeriodEnd:     s.CurrentPeriodEnd,
		StripeSubscriptionID: s.StripeSubscriptionID,
	}
}

func BuildAccessDTO(snap access.Snapshot) AccessDTO {
	caps := snap.Capabilities
	if caps == nil {
		caps = []string{}
	}
	return AccessDTO{
		Status:        string(snap.Status),
		TrialEndsAt:   snap.TrialEndsAt,
		DaysRemaining: snap.DaysRemaining,
		FullAccess:    snap.FullAccess,
		Watermark:     snap.Watermark,
		TrialWarning:  snap.TrialWarning,
		Capabilities:  caps,
	}
}

func BuildMeResponse(u users.User, rest *restaurants.Restaurant, sub *subscriptions.Subscription, snap access.Snapshot, appURL string) MeResponse {
	return MeResponse{
		User:         BuildUserDTO(u),
		Restaurant:   BuildRestaurantDTO(rest, appURL),
		Subscription: BuildSubscriptionDTO(sub),
		Access:       BuildAccessDTO(snap),
	}
}
