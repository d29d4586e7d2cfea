package sanitize

import "testing"

func TestComment(t *testing.T) {
	cases := map[string]string{
		"ring twice":                          "ring twice",
		"<b>leave</b> at the\n\n door  ":      "leave at the door",
		"&lt;script&gt;alert(1)&lt;/script&gt;": "alert(1)",
		"   ":                                 "",
	}

	for input, want := range cases {
		if got := Comment(input); got != want {
			t.Fatalf("Comment(%q) = %q, want %q", input, got, want)
		}
	}
}
