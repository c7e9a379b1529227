package submit

import (
	"testing"

	"github.com/dalemusser/agendahub/internal/domain/models"
)

func validForm() formValues {
	return formValues{
		Department: "기획팀",
		Category:   models.CategoryGeneralReport,
		Content:    "주간 업무 보고",
		Status:     models.StatusInProgress,
		DueDate:    "2026-09-04",
		Owner:      "김담당",
	}
}

func TestValidate_AcceptsCompleteForm(t *testing.T) {
	if msg := validate(validForm(), "1234"); msg != "" {
		t.Fatalf("valid form rejected: %q", msg)
	}
}

func TestValidate_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*formValues)
		pin    string
	}{
		{"missing department", func(f *formValues) { f.Department = "" }, "1234"},
		{"unknown department", func(f *formValues) { f.Department = "없는부서" }, "1234"},
		{"bad category", func(f *formValues) { f.Category = "잡담" }, "1234"},
		{"empty content", func(f *formValues) { f.Content = "" }, "1234"},
		{"bad status", func(f *formValues) { f.Status = "몰라요" }, "1234"},
		{"short pin", func(f *formValues) { _ = f }, "123"},
		{"long pin", func(f *formValues) { _ = f }, "12345"},
		{"alpha pin", func(f *formValues) { _ = f }, "12a4"},
		{"empty pin", func(f *formValues) { _ = f }, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := validForm()
			tc.mutate(&form)
			if msg := validate(form, tc.pin); msg == "" {
				t.Fatal("validate accepted a bad submission")
			}
		})
	}
}

func TestValidPin(t *testing.T) {
	good := []string{"0000", "1234", "9999"}
	for _, p := range good {
		if !validPin(p) {
			t.Errorf("validPin(%q) = false, want true", p)
		}
	}
	bad := []string{"", "1", "123", "12345", " 1234", "1234 ", "12 4", "١٢٣٤"}
	for _, p := range bad {
		if validPin(p) {
			t.Errorf("validPin(%q) = true, want false", p)
		}
	}
}
