package chrome

import "testing"

func TestBarButtonTitle_Label(t *testing.T) {
	cases := []struct {
		name  string
		title BarButtonTitle
		want  string
	}{
		{"free-form text", Title("Next"), "Next"},
		{"add", TitleAdd, "Add"},
		{"cancel", TitleCancel, "Cancel"},
		{"done", TitleDone, "Done"},
		{"edit", TitleEdit, "Edit"},
		{"save", TitleSave, "Save"},
		{"text wins over system", BarButtonTitle{Text: "Custom", System: SystemAdd}, "Custom"},
		{"zero value", BarButtonTitle{}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.title.Label(); got != tc.want {
				t.Errorf("Label() = %q, want %q", got, tc.want)
			}
		})
	}
}
