package game

import "testing"

func TestParseCommand(t *testing.T) {
	tests := []struct {
		content  string
		wantKind intentKind
		wantArg  string
	}{
		{"!s create", intentCreate, ""},
		{"!spy create", intentCreate, ""},
		{"!جس انشاء", intentCreate, ""},
		{"!جاسوس انشاء", intentCreate, ""},
		{"!s join", intentJoin, ""},
		{"!جس انضم", intentJoin, ""},
		{"!spy start", intentStart, ""},
		{"!جاسوس بدء", intentStart, ""},
		{"!s end", intentEnd, ""},
		{"!جس انهاء", intentEnd, ""},
		{"!s kick 12345", intentKick, "12345"},
		{"!جاسوس طرد 12345", intentKick, "12345"},
		{"!spy 4242", intentGuess, "4242"},
		{"!جس 4242", intentGuess, "4242"},
		{"!s total channel", intentChannelTotals, ""},
		{"!جس مجموع القناه", intentChannelTotals, ""},
		{"!جاسوس مجموع القناة", intentChannelTotals, ""},
		{"!spy total global", intentGlobalTotals, ""},
		{"!جس مجموع عام", intentGlobalTotals, ""},
		{"!s help", intentHelp, ""},
		{"!spy help", intentHelp, ""},
		{"!مساعده", intentHelp, ""},
		{"!مساعدة", intentHelp, ""},
		{"  !spy create  ", intentCreate, ""},
		{"!s kick abc", intentNone, ""},
		{"!s kick", intentNone, ""},
		{"!spy 12 34", intentNone, ""},
		{"!spy unknown", intentNone, ""},
		{"!spycreate", intentNone, ""},
		{"hello there", intentNone, ""},
		{"1", intentNone, ""},
		{"", intentNone, ""},
	}
	for _, tt := range tests {
		got := parseCommand(tt.content)
		if got.kind != tt.wantKind || got.arg != tt.wantArg {
			t.Errorf("parseCommand(%q) = {%v %q}, want {%v %q}", tt.content, got.kind, got.arg, tt.wantKind, tt.wantArg)
		}
	}
}

func TestShortPrefixDoesNotSwallowFullPrefix(t *testing.T) {
	// "!spy join" must not parse as prefix "!s" with rest "py join".
	got := parseCommand("!spy join")
	if got.kind != intentJoin {
		t.Fatalf("expected join intent, got %v", got.kind)
	}
}
