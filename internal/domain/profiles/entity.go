package profiles

import "time"

// ProfileID identifier type
type ProfileID string

// Prompt is one generated LinkedIn post prompt.
type Prompt struct {
	Prompt string `json:"prompt"`
	Hook   string `json:"hook"`
	Style  string `json:"style"`
}

// Aggregate Root: Profile
type Profile struct {
	ID              ProfileID `json:"id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Email           string    `json:"email,omitempty"`
	LinkedInURL     string    `json:"linkedin_url,omitempty"`
	ContentStrategy string    `json:"content_strategy,omitempty"`
	LinkedInPrompts []Prompt  `json:"linkedin_prompts,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// FullName for display and export metadata.
func (p *Profile) FullName() string {
	return p.FirstName + " " + p.LastName
}
