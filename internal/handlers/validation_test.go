package handlers

import (
	"testing"
)

func TestFormValidator_LunchMenu(t *testing.T) {
	v := newFormValidator(&mockForms{menus: testMenus})

	cases := []struct {
		name    string
		req     formUpdateRequest
		wantErr bool
	}{
		{"no fields", formUpdateRequest{}, false},
		{"offered menu", formUpdateRequest{Menu: strPtr("김치찌개")}, false},
		{"no meal option", formUpdateRequest{Menu: strPtr("안 먹겠음")}, false},
		{"placeholder clears", formUpdateRequest{Menu: strPtr("")}, false},
		{"unknown menu", formUpdateRequest{Menu: strPtr("pizza")}, true},
		{"empty name", formUpdateRequest{Name: strPtr("")}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(tc.req)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Struct(%+v) err=%v, wantErr=%v", tc.req, err, tc.wantErr)
			}
		})
	}
}

func TestFormValidator_NoMenusRejectsEveryChoice(t *testing.T) {
	v := newFormValidator(nil)
	if err := v.Struct(formUpdateRequest{Menu: strPtr("김치찌개")}); err == nil {
		t.Fatal("expected rejection without configured menus")
	}
	if err := v.Struct(formUpdateRequest{Menu: strPtr("")}); err != nil {
		t.Fatalf("placeholder should still pass: %v", err)
	}
}
