package model

// Go models for the resume document consumed by the visibility and
// export layers. The shape follows the JSON Resume convention: a basics
// block plus named array sections.

type Profile struct {
	Network  string `json:"network"`
	Username string `json:"username,omitempty"`
	URL      string `json:"url,omitempty"`
}

type Location struct {
	Address     string `json:"address,omitempty"`
	City        string `json:"city,omitempty"`
	PostalCode  string `json:"postalCode,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
	Region      string `json:"region,omitempty"`
}

type Basics struct {
	Name     string    `json:"name"`
	Label    string    `json:"label,omitempty"`
	Image    string    `json:"image,omitempty"`
	Email    string    `json:"email,omitempty"`
	Phone    string    `json:"phone,omitempty"`
	URL      string    `json:"url,omitempty"`
	Summary  string    `json:"summary,omitempty"`
	Location Location  `json:"location"`
	Profiles []Profile `json:"profiles,omitempty"`
}

type WorkItem struct {
	Name       string   `json:"name"`
	Position   string   `json:"position,omitempty"`
	URL        string   `json:"url,omitempty"`
	StartDate  string   `json:"startDate,omitempty"`
	EndDate    string   `json:"endDate,omitempty"`
	Summary    string   `json:"summary,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
}

type VolunteerItem struct {
	Organization string   `json:"organization"`
	Position     string   `json:"position,omitempty"`
	URL          string   `json:"url,omitempty"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
	Summary      string   `json:"summary,omitempty"`
	Highlights   []string `json:"highlights,omitempty"`
}

type EducationItem struct {
	Institution string   `json:"institution"`
	URL         string   `json:"url,omitempty"`
	Area        string   `json:"area,omitempty"`
	StudyType   string   `json:"studyType,omitempty"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	Score       string   `json:"score,omitempty"`
	Courses     []string `json:"courses,omitempty"`
}

type AwardItem struct {
	Title   string `json:"title"`
	Date    string `json:"date,omitempty"`
	Awarder string `json:"awarder,omitempty"`
	Summary string `json:"summary,omitempty"`
}

type CertificateItem struct {
	Name   string `json:"name"`
	Date   string `json:"date,omitempty"`
	Issuer string `json:"issuer,omitempty"`
	URL    string `json:"url,omitempty"`
}

type PublicationItem struct {
	Name        string `json:"name"`
	Publisher   string `json:"publisher,omitempty"`
	ReleaseDate string `json:"releaseDate,omitempty"`
	URL         string `json:"url,omitempty"`
	Summary     string `json:"summary,omitempty"`
}

type SkillItem struct {
	Name     string   `json:"name"`
	Level    string   `json:"level,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

type LanguageItem struct {
	Language string `json:"language"`
	Fluency  string `json:"fluency,omitempty"`
}

type InterestItem struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords,omitempty"`
}

type ReferenceItem struct {
	Name      string `json:"name"`
	Reference string `json:"reference,omitempty"`
}

type ProjectItem struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	URL         string   `json:"url,omitempty"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	Highlights  []string `json:"highlights,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
}

type Resume struct {
	Basics       Basics            `json:"basics"`
	Work         []WorkItem        `json:"work,omitempty"`
	Volunteer    []VolunteerItem   `json:"volunteer,omitempty"`
	Education    []EducationItem   `json:"education,omitempty"`
	Awards       []AwardItem       `json:"awards,omitempty"`
	Certificates []CertificateItem `json:"certificates,omitempty"`
	Publications []PublicationItem `json:"publications,omitempty"`
	Skills       []SkillItem       `json:"skills,omitempty"`
	Languages    []LanguageItem    `json:"languages,omitempty"`
	Interests    []InterestItem    `json:"interests,omitempty"`
	References   []ReferenceItem   `json:"references,omitempty"`
	Projects     []ProjectItem     `json:"projects,omitempty"`
}
