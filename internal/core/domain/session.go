package domain

// Storage keys of the persisted session.
const (
	AccessTokenKey  = "goride_access_token"
	RefreshTokenKey = "goride_refresh_token"
	UserKey         = "goride_user"
)

// Session is a read-only snapshot of the persisted session.
type Session struct {
	AccessToken  string       `json:"-"`
	RefreshToken string       `json:"-"`
	User         *UserProfile `json:"user,omitempty"`
}

func (s Session) IsLoggedIn() bool {
	return s.AccessToken != ""
}
