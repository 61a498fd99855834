package game

import "testing"

func TestRoundIDFromWSPath(t *testing.T) {
	t.Parallel()

	const id = "3f2b8c1e-4a5d-4e6f-9a7b-1c2d3e4f5a6b"

	cases := []struct {
		name string
		path string
		want string
		ok   bool
	}{
		{name: "valid", path: "/ws/" + id, want: id, ok: true},
		{name: "missing", path: "/ws/", want: "", ok: false},
		{name: "missing_no_trailing_slash", path: "/ws", want: "", ok: false},
		{name: "wrong_prefix", path: "/wss/" + id, want: "", ok: false},
		{name: "extra_segment", path: "/ws/" + id + "/x", want: "", ok: false},
		{name: "upper_case", path: "/ws/3F2B8C1E-4A5D-4E6F-9A7B-1C2D3E4F5A6B", want: "", ok: false},
		{name: "urn_form", path: "/ws/urn:uuid:" + id, want: "", ok: false},
		{name: "not_uuid", path: "/ws/abc123", want: "", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := roundIDFromWSPath(tc.path)
			if ok != tc.ok {
				t.Fatalf("ok=%v, want %v (got=%q)", ok, tc.ok, got)
			}
			if got != tc.want {
				t.Fatalf("got=%q, want %q", got, tc.want)
			}
		})
	}
}
