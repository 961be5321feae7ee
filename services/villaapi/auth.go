package villaapi

import (
	"context"
	"net/http"

	"villadash/dto"
	"villadash/models"
)

// Login authenticates and stores the returned token pair.
func (c *Client) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	var res dto.LoginResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.Do(ctx, http.MethodPost, loginPath, nil, body, &res); err != nil {
		return nil, err
	}
	c.tokens.SetTokens(res.Access, res.Refresh)
	return &res, nil
}

// Logout tells the API to blacklist the refresh token and clears the
// session. API failures are ignored; the local session is torn down anyway.
func (c *Client) Logout(ctx context.Context) {
	if refresh := c.tokens.RefreshToken(); refresh != "" {
		if err := c.Do(ctx, http.MethodPost, "/auth/logout/", nil, dto.RefreshRequest{Refresh: refresh}, nil); err != nil {
			c.logger.Info("logout call failed, clearing session anyway: %v", err)
		}
	}
	c.tokens.Clear()
}

// Me returns the logged-in user.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.Do(ctx, http.MethodGet, "/auth/me/", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
