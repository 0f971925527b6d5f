package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/models/dto"
)

func validJoinForm() *dto.JoinRequestForm {
	return &dto.JoinRequestForm{
		FullName:   "Ainebyona Grace",
		Email:      "grace@example.com",
		Phone:      "+256700000000",
		Profession: "Student",
		Message:    "I would like to join the club.",
	}
}

func TestJoinValidateAcceptsCompleteForm(t *testing.T) {
	svc := NewJoinService(nil)

	errs := svc.Validate(validJoinForm())
	assert.False(t, errs.HasErrors())
}

func TestJoinValidateRejectsBlankFields(t *testing.T) {
	svc := NewJoinService(nil)

	tests := []struct {
		name   string
		mutate func(*dto.JoinRequestForm)
		field  string
	}{
		{"missing name", func(f *dto.JoinRequestForm) { f.FullName = "" }, "full_name"},
		{"whitespace name", func(f *dto.JoinRequestForm) { f.FullName = "   " }, "full_name"},
		{"missing email", func(f *dto.JoinRequestForm) { f.Email = "" }, "email"},
		{"whitespace phone", func(f *dto.JoinRequestForm) { f.Phone = "\t " }, "phone"},
		{"missing profession", func(f *dto.JoinRequestForm) { f.Profession = "" }, "profession"},
		{"whitespace message", func(f *dto.JoinRequestForm) { f.Message = "  \n" }, "message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validJoinForm()
			tt.mutate(form)

			errs := svc.Validate(form)
			assert.True(t, errs.HasErrors())
			assert.Len(t, errs.Errors, 1)
			assert.Equal(t, tt.field, errs.Errors[0].Field)
		})
	}
}

func TestJoinValidateRejectsMalformedEmail(t *testing.T) {
	svc := NewJoinService(nil)

	for _, email := range []string{"plainaddress", "no@tld", "spaces in@mail.com", "@missing.local"} {
		form := validJoinForm()
		form.Email = email

		errs := svc.Validate(form)
		assert.True(t, errs.HasErrors(), "expected %q to be rejected", email)
		assert.Equal(t, "email", errs.Errors[0].Field)
	}
}

func TestJoinValidateTrimsInPlace(t *testing.T) {
	svc := NewJoinService(nil)

	form := validJoinForm()
	form.FullName = "  Ainebyona Grace  "
	form.Email = " grace@example.com "

	errs := svc.Validate(form)
	assert.False(t, errs.HasErrors())
	assert.Equal(t, "Ainebyona Grace", form.FullName)
	assert.Equal(t, "grace@example.com", form.Email)
}

func TestJoinValidateReportsAllMissingFields(t *testing.T) {
	svc := NewJoinService(nil)

	errs := svc.Validate(&dto.JoinRequestForm{})
	assert.True(t, errs.HasErrors())
	assert.Len(t, errs.Errors, 5)
}
