package model

import (
	"cmp"
	"slices"
)

// User is a GitHub user profile. Optional string fields are empty when the
// API omits them or returns null.
type User struct {
	// Login is the GitHub username
	Login string `json:"login"`

	// Name is the display name
	Name string `json:"name,omitempty"`

	// Bio is the profile biography
	Bio string `json:"bio,omitempty"`

	// Location is the free-form location string
	Location string `json:"location,omitempty"`

	// AvatarURL points to the profile picture
	AvatarURL string `json:"avatar_url,omitempty"`

	// HTMLURL is the profile page on github.com
	HTMLURL string `json:"html_url,omitempty"`

	Followers int `json:"followers"`
	Following int `json:"following"`
}

// Repository is a public repository owned by a User.
type Repository struct {
	// Name is the repository name without the owner prefix
	Name string `json:"name"`

	// Description is empty when the repository has none
	Description string `json:"description,omitempty"`

	// HTMLURL is the repository page on github.com
	HTMLURL string `json:"html_url"`

	// Stars is the stargazer count
	Stars int `json:"stargazers_count"`
}

// SortByStars returns a copy of repos ordered by star count, highest first.
// Repositories with equal counts keep their relative order.
func SortByStars(repos []Repository) []Repository {
	out := slices.Clone(repos)

	slices.SortStableFunc(out, func(a, b Repository) int {
		return cmp.Compare(b.Stars, a.Stars)
	})

	return out
}
