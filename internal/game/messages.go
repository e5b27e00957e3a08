package game

import (
	"fmt"
	"strings"

	"github.com/majlislab/jasoos/internal/chat"
)

// User-facing texts follow the bot's bilingual chat surface; Arabic first,
// English fallback. Every helper picks by session (or message) locale.

func arabic(lang chat.Locale) bool {
	return lang == chat.LocaleArabic
}

func msgHelp(lang chat.Locale) string {
	if arabic(lang) {
		return strings.Join([]string{
			"1- \"!جس انشاء\" او \"!جاسوس انشاء\" لإنشاء اللعبه.",
			"2- \"!جس انضم\" او \"!جاسوس انضم\" للانضمام للعبه.",
			"3- \"!جس بدء\" او \"!جاسوس بدء\" لبدء اللعبه.",
			"4- \"!جس طرد (رقم العضويه)\" او \"!جاسوس طرد (رقم العضويه)\" لطرد لاعب معين.",
			"5- \"!جس انهاء\" او \"!جاسوس انهاء\" لانهاء اللعبه.",
			"6- \"!جس مجموع القناه\" او \"!جاسوس مجموع القناه\" لعرض نقاط القناه.",
			"7- \"!جس مجموع عام\" او \"!جاسوس مجموع عام\" لعرض الترتيب العام.",
		}, "\n")
	}
	return strings.Join([]string{
		"1- \"!s create\" or \"!spy create\" to create the game.",
		"2- \"!s join\" or \"!spy join\" to join the game.",
		"3- \"!s start\" or \"!spy start\" to start the game.",
		"4- \"!s kick (membership number)\" or \"!spy kick (membership number)\" to kick a specific player.",
		"5- \"!s end\" or \"!spy end\" to end the game.",
		"6- \"!s total channel\" or \"!spy total channel\" to view channel scores.",
		"7- \"!s total global\" or \"!spy total global\" to view the global ranking.",
	}, "\n")
}

func msgAlreadyActive(lang chat.Locale) string {
	if arabic(lang) {
		return "هناك لعبة جاسوس نشطة بالفعل في هذه القناة!"
	}
	return "A Spy game is already active in this channel!"
}

func msgModePrompt(lang chat.Locale) string {
	if arabic(lang) {
		return "ارحب يا بعد قلبي:\nتبي تلعب بفئه معينه اكتب 1\nتبي تلعب بشكل عشوائي اكتب 2"
	}
	return "Welcome, my dear:\nIf you want to play with a specific category, type 1.\nIf you want to play randomly, type 2."
}

func msgChooseOneOrTwo(lang chat.Locale) string {
	if arabic(lang) {
		return "اختر 1 أو 2."
	}
	return "Choose 1 or 2."
}

func msgCategoryList(lang chat.Locale, lines []string) string {
	header := "Choose category letter:"
	if arabic(lang) {
		header = "اختر حرف الفئة:"
	}
	return header + "\n" + strings.Join(lines, "\n")
}

func msgRandomChosen(lang chat.Locale) string {
	if arabic(lang) {
		return "تم اختيار اللعب العشوائي! يمكنك الآن الانضمام إلى اللعبة."
	}
	return "Random play chosen! You can now join the game."
}

func msgCategoryChosen(lang chat.Locale, name string) string {
	if arabic(lang) {
		return fmt.Sprintf("تم اختيار فئة: %s. يمكنك الآن الانضمام إلى اللعبة.", name)
	}
	return fmt.Sprintf("Category chosen: %s. You can now join the game.", name)
}

func msgInvalidCategory(lang chat.Locale) string {
	if arabic(lang) {
		return "فئة غير صحيحة. يرجى اختيار حرف فئة صحيح."
	}
	return "Invalid category. Please choose a correct category letter."
}

func msgCategoryTimeout(lang chat.Locale) string {
	if arabic(lang) {
		return "انتهت اللعبة تلقائيًا لعدم اختيار الفئة."
	}
	return "The game ended automatically because no category was chosen."
}

func msgNoJoinableGame(lang chat.Locale) string {
	if arabic(lang) {
		return "لا توجد لعبة تقبل الانضمام الآن."
	}
	return "There is no game accepting players right now."
}

func msgAlreadyJoined(lang chat.Locale) string {
	if arabic(lang) {
		return "أنت بالفعل منضم للعبة!"
	}
	return "You are already in the game!"
}

func msgJoined(lang chat.Locale, nickname string, count int) string {
	if arabic(lang) {
		return fmt.Sprintf("انضم %s إلى اللعبة! عدد اللاعبين: %d", nickname, count)
	}
	return fmt.Sprintf("%s joined the game! Players: %d", nickname, count)
}

func msgOnlyCreatorCanStart(lang chat.Locale) string {
	if arabic(lang) {
		return "فقط منشئ اللعبة يمكنه بدء اللعبة."
	}
	return "Only the game creator can start the game."
}

func msgNeedThreePlayers(lang chat.Locale) string {
	if arabic(lang) {
		return "تحتاج إلى 3 لاعبين على الأقل لبدء اللعبة."
	}
	return "You need at least 3 players to start the game."
}

func msgEmptyCategory(lang chat.Locale) string {
	if arabic(lang) {
		return "حدث خطأ: لا توجد عناصر في الفئة المختارة."
	}
	return "Error: No items in the chosen category."
}

func msgSpyDM(lang chat.Locale) string {
	if arabic(lang) {
		return "أنت الجاسوس 🥷! حاول التمويه على بقية اللاعبين. لا تعرف الكلمة السرية."
	}
	return "You are the Spy 🥷! Try to bluff the other players. You don't know the secret word."
}

func msgWordDM(lang chat.Locale, word, categoryName string) string {
	if arabic(lang) {
		return fmt.Sprintf("الكلمة السرية هي: \"%s\" (الفئة: %s). مهمتك هي اكتشاف الجاسوس.", word, categoryName)
	}
	return fmt.Sprintf("The secret word is: \"%s\" (Category: %s). Your mission is to find the spy.", word, categoryName)
}

func msgRoundStarted(lang chat.Locale) string {
	if arabic(lang) {
		return "تم بدء اللعبة! ابدأوا في البحث عن الجاسوس. تذكروا، لكل لاعب تخمين واحد. استخدموا الأمر (!جس رقم_العضوية) أو (!جاسوس رقم_العضوية) لتحديد الجاسوس."
	}
	return "Game started! Begin your hunt for the spy. Remember, each player has one guess. Use the command (!s membership_ID) or (!spy membership_ID) to identify the spy."
}

func msgNoActiveRound(lang chat.Locale) string {
	if arabic(lang) {
		return "لا توجد جولة نشطة الآن."
	}
	return "There is no active round right now."
}

func msgNotInGame(lang chat.Locale) string {
	if arabic(lang) {
		return "أنت لست منضمًا لهذه اللعبة."
	}
	return "You are not in this game."
}

func msgInvalidGuessTarget(lang chat.Locale) string {
	if arabic(lang) {
		return "عضوية غير صحيحة أو اللاعب ليس في اللعبة."
	}
	return "Invalid membership ID or player not in game."
}

func msgAlreadyGuessed(lang chat.Locale) string {
	if arabic(lang) {
		return "لقد وضعت تخمينك بالفعل. تخمين واحد لكل لاعب."
	}
	return "You already placed your guess. One guess per player."
}

func msgGuessPlaced(lang chat.Locale, nickname string) string {
	if arabic(lang) {
		return fmt.Sprintf("%s وضع تخمينه.", nickname)
	}
	return fmt.Sprintf("%s placed their guess.", nickname)
}

func msgGuessTimeout(lang chat.Locale) string {
	if arabic(lang) {
		return "انتهت اللعبة تلقائيًا لعدم وضع جميع اللاعبين تخميناتهم."
	}
	return "The game ended automatically because not all players placed their guesses."
}

func msgNoActiveGame(lang chat.Locale) string {
	if arabic(lang) {
		return "لا توجد لعبة نشطة في هذه القناة."
	}
	return "There is no active game in this channel."
}

func msgOnlyCreatorCanKick(lang chat.Locale) string {
	if arabic(lang) {
		return "فقط منشئ اللعبة يمكنه طرد اللاعبين."
	}
	return "Only the game creator can kick players."
}

func msgPlayerNotInGame(lang chat.Locale) string {
	if arabic(lang) {
		return "هذا اللاعب ليس في اللعبة."
	}
	return "This player is not in the game."
}

func msgKicked(lang chat.Locale, nickname string) string {
	if arabic(lang) {
		return fmt.Sprintf("%s تم طرده من اللعبة.", nickname)
	}
	return fmt.Sprintf("%s has been kicked from the game.", nickname)
}

func msgBelowMinimum(lang chat.Locale) string {
	if arabic(lang) {
		return "عدد اللاعبين أقل من 3. تم إنهاء اللعبة."
	}
	return "Less than 3 players. Game ended."
}

func msgNoGameToEnd(lang chat.Locale) string {
	if arabic(lang) {
		return "لا توجد لعبة نشطة لإنهاءها أو أنت لست منشئ اللعبة."
	}
	return "No active game to end or you are not the game creator."
}

func msgEndedByCreator(lang chat.Locale) string {
	if arabic(lang) {
		return "تم إنهاء اللعبة بواسطة المنشئ."
	}
	return "Game ended by creator."
}

func msgSpyReveal(lang chat.Locale, nickname string) string {
	if arabic(lang) {
		return fmt.Sprintf("الجاسوس هو: %s 🥷", nickname)
	}
	return fmt.Sprintf("The Spy is: %s 🥷", nickname)
}

func msgResultsHeader(lang chat.Locale) string {
	if arabic(lang) {
		return "قائمة نتائج اللاعبين:"
	}
	return "Player Results:"
}

func msgResultLine(lang chat.Locale, nickname string, delta, total int) string {
	sign := ""
	if delta > 0 {
		sign = "+"
	}
	if arabic(lang) {
		return fmt.Sprintf("%s: %s%d (مجموع: %d)", nickname, sign, delta, total)
	}
	return fmt.Sprintf("%s: %s%d (total: %d)", nickname, sign, delta, total)
}

func msgContinuePrompt(lang chat.Locale) string {
	if arabic(lang) {
		return "لو تبي تكمل يا قلبي ارسل رقم 1"
	}
	return "If you want to continue, my dear, send number 1."
}

func msgNewRoundStarted(lang chat.Locale) string {
	if arabic(lang) {
		return "جولة جديدة بدأت! يمكنكم الانضمام الآن."
	}
	return "New round started! You can join now."
}

func msgChannelTotalsHeader(lang chat.Locale) string {
	if arabic(lang) {
		return "نقاط اللاعبين في هذه القناة:"
	}
	return "Player scores in this channel:"
}

func msgNoChannelScores(lang chat.Locale) string {
	if arabic(lang) {
		return "لا توجد نقاط مسجلة في هذه القناة بعد."
	}
	return "No scores recorded in this channel yet."
}

func msgGlobalTotalsHeader(lang chat.Locale) string {
	if arabic(lang) {
		return "الترتيب العام للاعبين:"
	}
	return "Global player ranking:"
}

func msgNoGlobalScores(lang chat.Locale) string {
	if arabic(lang) {
		return "لا توجد نقاط مسجلة بعد."
	}
	return "No scores recorded yet."
}
