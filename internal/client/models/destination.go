package models

// Destination is a travel destination returned by the recommendation
// endpoints. Only fields the client renders are mapped.
type Destination struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Rating      float64  `json:"rating,omitempty"`
	Price       string   `json:"price,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Distance    float64  `json:"distance,omitempty"`
}

// Recognition is the result of a landmark recognition call.
type Recognition struct {
	DestinationName string  `json:"destination_name"`
	Description     string  `json:"description"`
	Location        string  `json:"location"`
	Confidence      float64 `json:"confidence"`
}
