package domain

import "encoding/json"

type LoginCredentials struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginData is the data of a successful login or refresh. The server has
// used both camelCase and snake_case token names.
type LoginData struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         *UserProfile `json:"user,omitempty"`
}

func (d *LoginData) UnmarshalJSON(data []byte) error {
	var wire struct {
		AccessToken       string       `json:"accessToken"`
		AccessTokenSnake  string       `json:"access_token"`
		RefreshToken      string       `json:"refreshToken"`
		RefreshTokenSnake string       `json:"refresh_token"`
		User              *UserProfile `json:"user"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	d.AccessToken = firstNonEmpty(wire.AccessToken, wire.AccessTokenSnake)
	d.RefreshToken = firstNonEmpty(wire.RefreshToken, wire.RefreshTokenSnake)
	d.User = wire.User
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
