package form

// Education is one entry of the education list.
type Education struct {
	Institute   string `json:"institute" yaml:"institute"`
	Year        string `json:"year" yaml:"year"`
	Designation string `json:"designation" yaml:"designation"`
}

var educationFields = []Field{
	{Name: "institute", Label: "Institute"},
	{Name: "year", Label: "Year"},
	{Name: "designation", Label: "Designation/Degree"},
}

func (Education) Fields() []Field {
	return append([]Field(nil), educationFields...)
}

func (e Education) Get(name string) (string, bool) {
	switch name {
	case "institute":
		return e.Institute, true
	case "year":
		return e.Year, true
	case "designation":
		return e.Designation, true
	}
	return "", false
}

func (e Education) Set(name, value string) (Education, bool) {
	switch name {
	case "institute":
		e.Institute = value
	case "year":
		e.Year = value
	case "designation":
		e.Designation = value
	default:
		return e, false
	}
	return e, true
}

// Experience is one entry of the experience list.
type Experience struct {
	Company     string `json:"company" yaml:"company"`
	Year        string `json:"year" yaml:"year"`
	Designation string `json:"designation" yaml:"designation"`
}

var experienceFields = []Field{
	{Name: "company", Label: "Company"},
	{Name: "year", Label: "Year"},
	{Name: "designation", Label: "Designation"},
}

func (Experience) Fields() []Field {
	return append([]Field(nil), experienceFields...)
}

func (e Experience) Get(name string) (string, bool) {
	switch name {
	case "company":
		return e.Company, true
	case "year":
		return e.Year, true
	case "designation":
		return e.Designation, true
	}
	return "", false
}

func (e Experience) Set(name, value string) (Experience, bool) {
	switch name {
	case "company":
		e.Company = value
	case "year":
		e.Year = value
	case "designation":
		e.Designation = value
	default:
		return e, false
	}
	return e, true
}
