package tvmaze

import (
	"github.com/oapi-codegen/nullable"
)

const (
	// DateFormat is used for premiered, ended and airdate
	DateFormat = "2006-01-02"
)

// SearchResult is one hit from /search/shows
type SearchResult struct {
	Score float64 `json:"score"`
	Show  Show    `json:"show"`
}

// Show is the subset of the TVmaze show resource the catalog reads.
// Every field other than id and name may be null or missing upstream.
type Show struct {
	ID        int                         `json:"id"`
	URL       string                      `json:"url,omitempty"`
	Name      string                      `json:"name"`
	Type      nullable.Nullable[string]   `json:"type,omitempty"`
	Language  nullable.Nullable[string]   `json:"language,omitempty"`
	Status    nullable.Nullable[string]   `json:"status,omitempty"`
	Premiered nullable.Nullable[string]   `json:"premiered,omitempty"`
	Ended     nullable.Nullable[string]   `json:"ended,omitempty"`
	Rating    nullable.Nullable[Rating]   `json:"rating,omitempty"`
	Image     nullable.Nullable[Image]    `json:"image,omitempty"`
	Summary   nullable.Nullable[string]   `json:"summary,omitempty"`
	Updated   nullable.Nullable[int64]    `json:"updated,omitempty"`
	Embedded  nullable.Nullable[Embedded] `json:"_embedded,omitempty"`
}

type Rating struct {
	Average nullable.Nullable[float64] `json:"average,omitempty"`
}

type Image struct {
	Medium   nullable.Nullable[string] `json:"medium,omitempty"`
	Original nullable.Nullable[string] `json:"original,omitempty"`
}

type Embedded struct {
	Episodes []Episode `json:"episodes,omitempty"`
}

// Episode is a TVmaze episode. Specials come back with a null number.
type Episode struct {
	ID       int                       `json:"id"`
	Name     string                    `json:"name"`
	Season   nullable.Nullable[int]    `json:"season,omitempty"`
	Number   nullable.Nullable[int]    `json:"number,omitempty"`
	Type     nullable.Nullable[string] `json:"type,omitempty"`
	Airdate  nullable.Nullable[string] `json:"airdate,omitempty"`
	Airtime  nullable.Nullable[string] `json:"airtime,omitempty"`
	Airstamp nullable.Nullable[string] `json:"airstamp,omitempty"`
	Runtime  nullable.Nullable[int]    `json:"runtime,omitempty"`
	Summary  nullable.Nullable[string] `json:"summary,omitempty"`
}

// Value returns the value of n or the zero value when it is null or unspecified.
func Value[T any](n nullable.Nullable[T]) (T, bool) {
	v, err := n.Get()
	if err != nil {
		var zero T
		return zero, false
	}
	return v, true
}
