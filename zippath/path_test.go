package zippath

import "testing"

func TestSanitize(t *testing.T) {
	cases := []struct{ raw, want string }{
		{"a/b/c.txt", "a/b/c.txt"},
		{"../etc/passwd", "etc/passwd"},
		{"/etc/passwd", "etc/passwd"},
		{`C:\Windows\system32`, "Windows/system32"},
		{"a/./b/../c", "a/b/c"},
		{"dir/", "dir/"},
		{"", ""},
	}
	for _, c := range cases {
		if got := Sanitize(c.raw); got != c.want {
			t.Errorf("Sanitize(%q) = %q, want %q", c.raw, got, c.want)
		}
	}
}

func TestPathClassification(t *testing.T) {
	dir := New("a/b/", Attributes{Directory: true})
	if !dir.IsDir() || dir.IsFile() {
		t.Fatal("expected directory classification")
	}
	file := New("a/b.txt", Attributes{})
	if !file.IsFile() || file.IsDir() {
		t.Fatal("expected file classification")
	}
	if file.FileName() != "b.txt" {
		t.Fatalf("FileName = %q", file.FileName())
	}
}
