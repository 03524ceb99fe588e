package dim

import "context"

// WhoAmI retrieves the profile of the authenticated user.
func (c *Client) WhoAmI(ctx context.Context) (UserInfo, error) {
	var user UserInfo
	err := c.getInto(ctx, "auth/whoami", nil, &user)
	return user, err
}

// Settings retrieves the user's playback and UI preferences.
func (c *Client) Settings(ctx context.Context) (UserSettings, error) {
	var settings UserSettings
	err := c.getInto(ctx, "user/settings", nil, &settings)
	return settings, err
}

// Dashboard retrieves the landing-page media sections.
func (c *Client) Dashboard(ctx context.Context) (Dashboard, error) {
	dashboard := make(Dashboard)
	err := c.getInto(ctx, "dashboard", nil, &dashboard)
	return dashboard, err
}

// Banner retrieves the rotating banner entries for the dashboard.
func (c *Client) Banner(ctx context.Context) ([]BannerCard, error) {
	var cards []BannerCard
	err := c.getInto(ctx, "dashboard/banner", nil, &cards)
	return cards, err
}
