package models

// ChatRole identifies the author of a chat message.
type ChatRole string

const (
	ChatRoleUser ChatRole = "user"
	ChatRoleAI   ChatRole = "ai"
)

// ItemKind discriminates which entity collection a result payload carries.
type ItemKind string

const (
	ItemKindJobs      ItemKind = "jobs"
	ItemKindTalents   ItemKind = "talents"
	ItemKindCompanies ItemKind = "companies"
)

// ResultPayload is the typed search result attached to an assistant message.
// Exactly one of the item slices is populated, selected by Kind, and it is
// never empty: zero-result turns are represented by a text-only message.
type ResultPayload struct {
	Kind      ItemKind  `json:"kind"`
	Jobs      []Job     `json:"jobs,omitempty"`
	Talents   []Talent  `json:"talents,omitempty"`
	Companies []Company `json:"companies,omitempty"`
}

// Len returns the number of items carried by the payload.
func (p *ResultPayload) Len() int {
	if p == nil {
		return 0
	}
	switch p.Kind {
	case ItemKindJobs:
		return len(p.Jobs)
	case ItemKindTalents:
		return len(p.Talents)
	case ItemKindCompanies:
		return len(p.Companies)
	}
	return 0
}

// ChatMessage is a single entry in a search-session transcript.
// IDs are time-ordered unique tokens (UUIDv7).
type ChatMessage struct {
	ID   string         `json:"id"`
	Role ChatRole       `json:"role"`
	Text string         `json:"text"`
	Data *ResultPayload `json:"data,omitempty"`
}
