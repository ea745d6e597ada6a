package wizard

// Role distinguishes the lead applicant from accompanying travelers.
type Role string

const (
	RoleMain       Role = "main"
	RoleAdditional Role = "additional"
)

// Profession categorizes a traveler for document requirements.
type Profession string

const (
	ProfessionJobHolder   Profession = "job_holder"
	ProfessionBusinessman Profession = "businessman"
	ProfessionStudent     Profession = "student"
)

// ValidProfessions enumerates the accepted profession answers.
var ValidProfessions = map[Profession]bool{
	ProfessionJobHolder:   true,
	ProfessionBusinessman: true,
	ProfessionStudent:     true,
}

// Sponsorship answers who funds an additional traveler's trip.
type Sponsorship string

const (
	SponsorshipYes            Sponsorship = "yes"
	SponsorshipNo             Sponsorship = "no"
	SponsorshipMainSponsoring Sponsorship = "main_sponsoring"
)

// ValidSponsorships enumerates the accepted sponsorship answers.
var ValidSponsorships = map[Sponsorship]bool{
	SponsorshipYes:            true,
	SponsorshipNo:             true,
	SponsorshipMainSponsoring: true,
}

// Traveler is one person covered by the application. Index 0 is always the
// main traveler; Relationship is meaningful only for additional travelers.
type Traveler struct {
	Index        int         `json:"index"`
	Role         Role        `json:"role"`
	FullName     string      `json:"full_name"`
	Profession   Profession  `json:"profession"`
	Relationship string      `json:"relationship,omitempty"`
	Sponsorship  Sponsorship `json:"is_sponsoring"`
}

// defaultTravelers builds the deterministic fresh traveler sequence for a
// given count: the main traveler defaults to a job holder funding their own
// trip, additional travelers default to being sponsored by the main one.
func defaultTravelers(count int) []Traveler {
	out := make([]Traveler, count)
	for i := range out {
		if i == 0 {
			out[i] = Traveler{
				Index:       0,
				Role:        RoleMain,
				Profession:  ProfessionJobHolder,
				Sponsorship: SponsorshipNo,
			}
			continue
		}
		out[i] = Traveler{
			Index:       i,
			Role:        RoleAdditional,
			Profession:  ProfessionJobHolder,
			Sponsorship: SponsorshipMainSponsoring,
		}
	}
	return out
}

// SponsorshipPromptVisible reports whether the sponsorship question is shown
// for this traveler: only the main traveler sees it, and only when they are
// not traveling alone.
func SponsorshipPromptVisible(t Traveler, travelerCount int) bool {
	return t.Role == RoleMain && travelerCount > 1
}

// RelationshipVisible reports whether the relationship selector is shown:
// only additional travelers declare their relationship to the main one.
func RelationshipVisible(t Traveler) bool {
	return t.Role == RoleAdditional
}
