package id

import "testing"

func TestFormatUserNo_PadsToFiveDigits(t *testing.T) {
	cases := map[uint64]string{
		1:      "PMB-00001",
		42:     "PMB-00042",
		99999:  "PMB-99999",
		100001: "PMB-100001", // widens, never truncates
	}
	for n, want := range cases {
		if got := FormatUserNo(n); got != want {
			t.Errorf("FormatUserNo(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestParseUserNo_RoundTrip(t *testing.T) {
	for _, n := range []uint64{1, 7, 12, 99999, 100001} {
		got, ok := ParseUserNo(FormatUserNo(n))
		if !ok || got != n {
			t.Fatalf("ParseUserNo(FormatUserNo(%d)) = %d, %v", n, got, ok)
		}
	}
}

func TestParseUserNo_CaseInsensitiveAndTrimmed(t *testing.T) {
	got, ok := ParseUserNo("  pmb-00007 ")
	if !ok || got != 7 {
		t.Fatalf("got %d, %v", got, ok)
	}
}

func TestParseUserNo_Rejects(t *testing.T) {
	for _, s := range []string{"", "PMB-", "PMB-abc", "XYZ-00001", "00001", "PMB-00000", "pmb00007"} {
		if _, ok := ParseUserNo(s); ok {
			t.Errorf("ParseUserNo(%q) unexpectedly ok", s)
		}
	}
}
