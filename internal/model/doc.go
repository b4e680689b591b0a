// Package model defines the data structures shared by ghexplorer packages.
//
// # User and Repository
//
// [User] and [Repository] are the decoded GitHub REST payloads. They carry
// plain strings and ints: optional fields are empty when the API omits them,
// so rendering code never has to deal with nil pointers.
//
// [SortByStars] orders repositories for display. The sort is stable, so
// repositories with equal star counts keep the order the API returned.
//
// # Theme
//
// [Theme] is the persisted color scheme. [ParseTheme] never fails; unknown
// or empty values fall back to [DefaultTheme].
//
// # Config
//
// [Config] holds the application configuration, loaded by the config package
// from defaults, an INI file and the environment.
package model
