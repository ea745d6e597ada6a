package wizard

// Document is one item a traveler must provide in the document step.
type Document struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Required bool   `json:"required"`
}

var (
	docPassport = Document{Key: "passport_copy", Label: "Passport copy", Required: true}
	docPhoto    = Document{Key: "photo", Label: "Recent passport-size photo", Required: true}

	professionDocs = map[Profession]Document{
		ProfessionJobHolder:   {Key: "noc_letter", Label: "No objection certificate from employer", Required: true},
		ProfessionBusinessman: {Key: "trade_license", Label: "Trade license copy", Required: true},
		ProfessionStudent:     {Key: "student_id", Label: "Educational institution ID card", Required: true},
	}

	docFinancial = Document{Key: "bank_statement", Label: "Bank statement for the last six months", Required: true}
	docMarriage  = Document{Key: "marriage_certificate", Label: "Marriage certificate", Required: true}
)

// Checklist derives the document list for a traveler from their answers.
// The result depends only on the traveler's fields, never on wizard history,
// so re-answering a question always yields the same list.
func Checklist(t Traveler) []Document {
	docs := []Document{docPassport, docPhoto}

	if d, ok := professionDocs[t.Profession]; ok {
		docs = append(docs, d)
	}

	// A traveler shows their own finances when they lead the application or
	// explicitly fund their own trip.
	if t.Role == RoleMain || t.Sponsorship == SponsorshipNo {
		docs = append(docs, docFinancial)
	}

	if t.Relationship == "spouse" {
		docs = append(docs, docMarriage)
	}

	return docs
}
