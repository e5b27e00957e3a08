package game

import "strings"

// Command prefixes, short and full forms per language, matching the bot's
// chat surface.
const (
	prefixShortArabic  = "!جس"
	prefixFullArabic   = "!جاسوس"
	prefixShortEnglish = "!s"
	prefixFullEnglish  = "!spy"
)

type intentKind int

const (
	intentNone intentKind = iota
	intentHelp
	intentCreate
	intentJoin
	intentStart
	intentKick
	intentEnd
	intentGuess
	intentChannelTotals
	intentGlobalTotals
)

// intent is a parsed command. arg carries the participant id for kick and
// guess. intentNone means the message is not prefixed bot input; the state
// machine may still consume its raw content (mode digits, category letters,
// continuation replies).
type intent struct {
	kind intentKind
	arg  string
}

var helpTriggers = []string{"!مساعده", "!مساعدة", "!s help", "!spy help"}

// Longest prefixes first so "!spy" is not consumed as "!s".
var commandPrefixes = []string{prefixFullArabic, prefixFullEnglish, prefixShortArabic, prefixShortEnglish}

func parseCommand(content string) intent {
	content = strings.TrimSpace(content)
	for _, trigger := range helpTriggers {
		if content == trigger {
			return intent{kind: intentHelp}
		}
	}
	for _, prefix := range commandPrefixes {
		if !strings.HasPrefix(content, prefix+" ") {
			continue
		}
		rest := strings.TrimSpace(strings.TrimPrefix(content, prefix))
		return parseSubcommand(rest)
	}
	return intent{kind: intentNone}
}

func parseSubcommand(rest string) intent {
	switch rest {
	case "انشاء", "create":
		return intent{kind: intentCreate}
	case "انضم", "join":
		return intent{kind: intentJoin}
	case "بدء", "start":
		return intent{kind: intentStart}
	case "انهاء", "end":
		return intent{kind: intentEnd}
	case "مجموع القناه", "مجموع القناة", "total channel":
		return intent{kind: intentChannelTotals}
	case "مجموع عام", "total global":
		return intent{kind: intentGlobalTotals}
	}

	fields := strings.Fields(rest)
	if len(fields) == 2 && (fields[0] == "طرد" || fields[0] == "kick") && isDigits(fields[1]) {
		return intent{kind: intentKick, arg: fields[1]}
	}
	if len(fields) == 1 && isDigits(fields[0]) {
		return intent{kind: intentGuess, arg: fields[0]}
	}
	return intent{kind: intentNone}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
