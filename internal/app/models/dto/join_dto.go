package dto

// JoinRequestForm is the public membership form. It binds from both
// form posts and JSON; required-field checking happens in the service
// so blank-after-trim values are caught too.
type JoinRequestForm struct {
	FullName   string `json:"full_name" form:"full_name"`
	Email      string `json:"email" form:"email"`
	Phone      string `json:"phone" form:"phone"`
	Profession string `json:"profession" form:"profession"`
	Message    string `json:"message" form:"message"`
}
