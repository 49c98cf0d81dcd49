package models

// Collaborator is the display identity attached to comments and
// contributions.
type Collaborator struct {
	ID          string  `json:"id"`
	DisplayName string  `json:"displayName"`
	Role        string  `json:"role"`
	AvatarURL   *string `json:"avatarUrl"`
}

// PlaceholderCollaborator builds a deterministic stand-in identity for an id
// that no resolver could match.
func PlaceholderCollaborator(id string) Collaborator {
	short := id
	if len(short) > 6 {
		short = short[:6]
	}
	return Collaborator{
		ID:          id,
		DisplayName: "Contributor " + short,
		Role:        "Collaborator",
	}
}
