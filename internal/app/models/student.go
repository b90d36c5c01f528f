package models

// Student is a registered OJT trainee as returned by the API
type Student struct {
	ID               string `json:"id" example:"64f1c2"`
	StudentID        string `json:"studentId" example:"18-0-2132"`
	Firstname        string `json:"firstname" example:"Juan"`
	Middlename       string `json:"middlename,omitempty"`
	Lastname         string `json:"lastname" example:"Dela Cruz"`
	Prefix           string `json:"prefix,omitempty"`
	Email            string `json:"email" example:"juan@school.edu.ph"`
	Address          string `json:"address,omitempty"`
	Number           string `json:"number,omitempty" example:"09171234567"`
	Course           string `json:"course,omitempty" example:"BSIT"`
	Year             string `json:"year,omitempty" example:"4th"`
	Image            string `json:"image,omitempty"`
	NameOfSupervisor string `json:"nameOfSupervisor,omitempty"`
	HTEAddress       string `json:"hteAddress,omitempty"`
	ContactNumber    string `json:"contactNumber,omitempty"`
	Department       string `json:"department,omitempty"`
	Username         string `json:"username"`
	Status           string `json:"status,omitempty" example:"Active"`
	ArchivedStudents string `json:"archivedStudents,omitempty"`
	ResetToken       string `json:"resetToken,omitempty"`
}

// FullName joins the name parts the way the student list displays them
func (s Student) FullName() string {
	name := s.Firstname
	if s.Middlename != "" {
		name += " " + s.Middlename
	}
	if s.Lastname != "" {
		name += " " + s.Lastname
	}
	return name
}
