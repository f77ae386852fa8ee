package resume

// Address is the structured postal address inside PersonalInfo.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// PersonalInfo holds name parts and contact fields.
type PersonalInfo struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Mobile    string  `json:"mobile"`
	LinkedIn  string  `json:"linkedIn"`
	Address   Address `json:"address"`
}

// Job is one work history entry. Dates use YYYY-MM, EndDate may be the
// literal "Present".
type Job struct {
	Company     string `json:"company"`
	Title       string `json:"title"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// Education is one degree entry.
type Education struct {
	Institution    string `json:"institution"`
	Degree         string `json:"degree"`
	Major          string `json:"major"`
	GraduationYear string `json:"graduationYear"`
}

// Parsed is the nested response schema the parser prompt instructs the
// model to produce. It doubles as the shape of error bodies so callers
// always receive schema-shaped JSON.
type Parsed struct {
	PersonalInfo         PersonalInfo `json:"personalInfo"`
	WorkHistory          []Job        `json:"workHistory"`
	Education            []Education  `json:"education"`
	Skills               []string     `json:"skills"`
	Certifications       []string     `json:"certifications"`
	Summary              string       `json:"summary"`
	TotalYearsExperience float64      `json:"totalYearsExperience"`
}

// EmptyParsed returns the zero-valued schema with non-nil collections so
// that they serialize as [] rather than null.
func EmptyParsed() Parsed {
	return Parsed{
		WorkHistory:    []Job{},
		Education:      []Education{},
		Skills:         []string{},
		Certifications: []string{},
	}
}
