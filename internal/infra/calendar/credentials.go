package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
)

// authorizedUser is the token file written by the installed-app OAuth flow.
// It carries no "type" field, unlike the JSON google.CredentialsFromJSON
// understands.
type authorizedUser struct {
	Type         string   `json:"type"`
	Token        string   `json:"token"`
	RefreshToken string   `json:"refresh_token"`
	ClientID     string   `json:"client_id"`
	ClientSecret string   `json:"client_secret"`
	TokenURI     string   `json:"token_uri"`
	Scopes       []string `json:"scopes"`
}

// HTTPClientFromFile builds an authenticated client from either a saved
// user token or a service account / ADC JSON file.
func HTTPClientFromFile(ctx context.Context, path string) (*http.Client, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read credentials %s: %w", path, err)
	}

	var au authorizedUser
	if err := json.Unmarshal(raw, &au); err != nil {
		return nil, fmt.Errorf("parse credentials %s: %w", path, err)
	}

	if au.Type != "" {
		creds, err := google.CredentialsFromJSON(ctx, raw, gcal.CalendarScope)
		if err != nil {
			return nil, fmt.Errorf("load credentials: %w", err)
		}
		return oauth2.NewClient(ctx, creds.TokenSource), nil
	}

	if au.RefreshToken == "" || au.ClientID == "" {
		return nil, fmt.Errorf("credentials %s: missing refresh_token or client_id", path)
	}

	endpoint := google.Endpoint
	if au.TokenURI != "" {
		endpoint.TokenURL = au.TokenURI
	}
	scopes := au.Scopes
	if len(scopes) == 0 {
		scopes = []string{gcal.CalendarScope}
	}

	conf := &oauth2.Config{
		ClientID:     au.ClientID,
		ClientSecret: au.ClientSecret,
		Endpoint:     endpoint,
		Scopes:       scopes,
	}
	ts := conf.TokenSource(ctx, &oauth2.Token{
		AccessToken:  au.Token,
		RefreshToken: au.RefreshToken,
	})
	return oauth2.NewClient(ctx, ts), nil
}
