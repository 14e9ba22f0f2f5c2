package models

// RegistrationRecord is the visitor's form input sent to the registration
// endpoint. All fields are required before submission.
// It is never stored locally.
type RegistrationRecord struct {
	// Name is the visitor's full name.
	Name string `json:"name"`

	// Email is the visitor's company email address.
	// It must pass the company-email policy before submission.
	Email string `json:"email"`

	// Location is the visitor's city or region.
	Location string `json:"location"`

	// Company is the visitor's employer.
	Company string `json:"company"`

	// Designation is the visitor's role within the company.
	Designation string `json:"designation"`
}

// Fields returns the record values in form order:
// name, email, company, designation, location.
func (r RegistrationRecord) Fields() []string {
	return []string{r.Name, r.Email, r.Company, r.Designation, r.Location}
}

// IsComplete reports whether every field is non-empty.
func (r RegistrationRecord) IsComplete() bool {
	for _, f := range r.Fields() {
		if f == "" {
			return false
		}
	}
	return true
}
