package model

import (
	"fmt"
	"strings"
)

// IDCaptionFormat renders the caption shown next to the stepper
const IDCaptionFormat = "Resource ID: %d"

// ViewModel is the display-ready projection of a Resource and the ID it was
// requested with. It is recomputed on every successful fetch.
type ViewModel struct {
	DisplayName string
	IDCaption   string
}

// NewViewModel builds the view model for a resource fetched with id
func NewViewModel(r Resource, id int) ViewModel {
	return ViewModel{
		DisplayName: strings.ToUpper(r.Name),
		IDCaption:   fmt.Sprintf(IDCaptionFormat, id),
	}
}
