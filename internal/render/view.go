package render

import "github.com/inovacc/ghexplorer/internal/model"

const (
	// NoDescription is shown, emphasized, on cards without a description.
	NoDescription = "No description"

	// NoRepositories replaces the grid for users without public repositories.
	NoRepositories = "No public repositories found."

	// UnknownLogin is shown when the profile has no login.
	UnknownLogin = "N/A"

	// NoProfileURL is the profile link target when the API gave none.
	NoProfileURL = "#"
)

// OptionalText is a profile field that is hidden, and cleared, when empty.
type OptionalText struct {
	Text    string
	Visible bool
}

func optional(s string) OptionalText {
	if s == "" {
		return OptionalText{}
	}

	return OptionalText{Text: s, Visible: true}
}

// Profile is the profile panel content.
type Profile struct {
	Login      string
	Name       OptionalText
	Bio        OptionalText
	Location   OptionalText
	AvatarSrc  string
	AvatarAlt  string
	ProfileURL string
	Followers  int
	Following  int
}

// NewProfile derives the profile panel content from u.
func NewProfile(u model.User) Profile {
	login := u.Login
	if login == "" {
		login = UnknownLogin
	}

	profileURL := u.HTMLURL
	if profileURL == "" {
		profileURL = NoProfileURL
	}

	return Profile{
		Login:      login,
		Name:       optional(u.Name),
		Bio:        optional(u.Bio),
		Location:   optional(u.Location),
		AvatarSrc:  u.AvatarURL,
		AvatarAlt:  u.Login + "'s avatar",
		ProfileURL: profileURL,
		Followers:  max(u.Followers, 0),
		Following:  max(u.Following, 0),
	}
}

// Card is one repository in the grid. The whole card links to URL and must
// be opened without giving the new page a handle to the opener.
type Card struct {
	Name           string
	Description    string
	HasDescription bool
	Stars          int
	URL            string
}

// NewCards sorts repos by stars, highest first, and builds their cards.
func NewCards(repos []model.Repository) []Card {
	sorted := model.SortByStars(repos)

	cards := make([]Card, 0, len(sorted))
	for _, r := range sorted {
		cards = append(cards, Card{
			Name:           r.Name,
			Description:    r.Description,
			HasDescription: r.Description != "",
			Stars:          max(r.Stars, 0),
			URL:            r.HTMLURL,
		})
	}

	return cards
}
