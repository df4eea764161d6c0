package platform

import "testing"

func TestParseRedHatReleaseWithLiteralToken(t *testing.T) {
	release, ok, err := parseRedHatRelease("CentOS Linux release 7.9.2009 (Core)\n")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected a match")
	}
	if release != "7.9.2009" {
		t.Errorf("release = %q, want %q", release, "7.9.2009")
	}
}

func TestParseRedHatReleaseFallsBackToThirdField(t *testing.T) {
	release, ok, err := parseRedHatRelease("SomeDistro Linux 8.1 (Ootpa)\n")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected a match")
	}
	if release != "8.1" {
		t.Errorf("release = %q, want %q", release, "8.1")
	}
}

func TestParseRedHatReleaseEmptyInput(t *testing.T) {
	_, ok, err := parseRedHatRelease("")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("expected no match for empty input")
	}
}

func TestParseRedHatReleaseTooShort(t *testing.T) {
	_, ok, err := parseRedHatRelease("Foo Bar")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("expected no match when fewer than three fields and no release token")
	}
}
