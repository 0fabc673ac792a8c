package strings

import "testing"

func TestIfEmpty(t *testing.T) {
	t.Parallel()

	if got := IfEmpty([]int{1, 2, 3}, []int{9}); len(got) != 3 || got[0] != 1 {
		t.Fatalf("IfEmpty returned wrong slice: %#v", got)
	}
	var empty []string
	if got := IfEmpty(empty, []string{"*"}); len(got) != 1 || got[0] != "*" {
		t.Fatalf("IfEmpty did not return default: %#v", got)
	}
}

func TestMustString(t *testing.T) {
	t.Parallel()

	if got := MustString("games", "module name"); got != "games" {
		t.Fatalf("want games got %q", got)
	}
	defer func() {
		if r := recover(); r != "module name is required" {
			t.Fatalf("unexpected panic %v", r)
		}
	}()
	_ = MustString("   ", "module name")
}

func TestMustPrefix(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"/games/":       "/games",
		" word-banks  ": "/word-banks",
		"//users//":     "/users",
		"/":             "", // panics
		"":              "", // panics
	}
	for in, want := range cases {
		if want == "" {
			func() {
				defer func() {
					if recover() == nil {
						t.Fatalf("want panic for %q", in)
					}
				}()
				_ = MustPrefix(in)
			}()
			continue
		}
		if got := MustPrefix(in); got != want {
			t.Fatalf("in %q want %q got %q", in, want, got)
		}
	}
}

func TestPtr(t *testing.T) {
	t.Parallel()

	if Ptr("") != nil {
		t.Fatal("empty string should give nil")
	}
	if p := Ptr("Ada"); p == nil || *p != "Ada" {
		t.Fatalf("Ptr(Ada) = %v", p)
	}
}
