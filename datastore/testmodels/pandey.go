package testmodels

import (
	"github.com/go-openapi/strfmt"

	"github.com/suparena/alchemy/datastore"
)

// Pandey is a sample document used by tests that seed the mock store.

type Pandey struct {

	// Storage key of the document.
	// Required: true
	Key string `json:"_key"`

	// First name of the pandey.
	// Required: true
	FirstName string `json:"firstName"`

	// Last name of the pandey.
	LastName string `json:"lastName,omitempty"`

	// Numeric tags attached to the document.
	Tags []int64 `json:"tags,omitempty"`

	// Timestamp when the document was created.
	// Format: date-time
	CreatedAt *strfmt.DateTime `json:"createdAt,omitempty"`
}

// Document renders the model as the semi-structured map shape the store
// returns, for seeding mock results.
func (p Pandey) Document() datastore.Document {
	doc := datastore.Document{
		"_key":      p.Key,
		"firstName": p.FirstName,
	}
	if p.LastName != "" {
		doc["lastName"] = p.LastName
	}
	if p.Tags != nil {
		tags := make([]interface{}, len(p.Tags))
		for i, t := range p.Tags {
			tags[i] = t
		}
		doc["tags"] = tags
	}
	if p.CreatedAt != nil {
		doc["createdAt"] = p.CreatedAt.String()
	}
	return doc
}
