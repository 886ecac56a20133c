// Package models defines the records the travelmate client exchanges with
// the travel service and caches locally.
package models

// Album is a user photo album as reported by the server. Name doubles as the
// identifier: the albums API addresses albums by name.
type Album struct {
	Name       string `json:"name"`
	ImageCount int    `json:"image_count"`
	CreatedAt  string `json:"created_at,omitempty"`
}

// AlbumImage is a single image inside an album.
type AlbumImage struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	Landmark string `json:"landmark,omitempty"`
}
