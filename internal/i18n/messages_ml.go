package i18n

// malayalamMessages holds the Malayalam translations.
// Keys missing here fall back to English in T().
var malayalamMessages = map[string]string{
	// App
	"app.name": "അഗ്രിമിത്ര",

	// Crop recommendation bot
	"cropBot.title":               "വിള ശുപാർശ സഹായി",
	"cropBot.subtitle":            "നിങ്ങളുടെ AI-പവേർഡ് കൃഷി ഉപദേശകൻ",
	"cropBot.welcomeMessage":      "നമസ്കാരം! ഞാൻ നിങ്ങളുടെ വിള ശുപാർശ സഹായിയാണ്. മണ്ണിന്റെ തരം, കാലാവസ്ഥ, സീസൺ, മാർക്കറ്റ് സാഹചര്യങ്ങൾ എന്നിവയെ അടിസ്ഥാനമാക്കി നിങ്ങളുടെ കൃഷിക്ക് ഏറ്റവും അനുയോജ്യമായ വിളകൾ തിരഞ്ഞെടുക്കാൻ എനിക്ക് സഹായിക്കാം. നിങ്ങൾക്ക് എന്താണ് അറിയേണ്ടത്?",
	"cropBot.inputPlaceholder":    "വിളകൾ, മണ്ണ്, കാലാവസ്ഥ, അല്ലെങ്കിൽ കൃഷി സാങ്കേതികതകളെക്കുറിച്ച് ചോദിക്കുക...",
	"cropBot.placeholderResponse": "നിങ്ങളുടെ ചോദ്യത്തിന് നന്ദി! AI ഇന്റഗ്രേഷൻ ഉടൻ വരുന്നു. നിങ്ങളുടെ പ്രത്യേക സാഹചര്യങ്ങൾ, പ്രാദേശിക കാലാവസ്ഥാ പാറ്റേണുകൾ, മാർക്കറ്റ് ട്രെന്റുകൾ എന്നിവയെ അടിസ്ഥാനമാക്കി വ്യക്തിഗത വിള ശുപാർശകൾ നൽകാൻ എനിക്ക് കഴിയും.",
	"cropBot.suggestedQuestions":  "ചോദിച്ച് നോക്കൂ:",
	"cropBot.question1":           "കളിമണ്ണിൽ ഏതു വിളകളാണ് നന്നായി വളരുന്നത്?",
	"cropBot.question2":           "ഈ സീസണിൽ ഏതു പച്ചക്കറികളാണ് ലാഭകരം?",
	"cropBot.question3":           "എന്റെ മണ്ണിന്റെ ഗുണനിലവാരം എങ്ങനെ മെച്ചപ്പെടുത്താം?",
	"cropBot.disclaimer":          "AI ശുപാർശകൾ പ്രാദേശിക കാർഷിക വിദഗ്ധരുമായി പരിശോധിക്കേണ്ടതാണ്",

	// Market analysis bot
	"marketBot.title":               "മാർക്കറ്റ് വിശകലന സഹായി",
	"marketBot.subtitle":            "നിങ്ങളുടെ AI-പവേർഡ് മാർക്കറ്റ് ഉപദേശകൻ",
	"marketBot.welcomeMessage":      "നമസ്കാരം! ഞാൻ നിങ്ങളുടെ മാർക്കറ്റ് വിശകലന സഹായിയാണ്. വിള വിലനിർണ്ണയം, മാർക്കറ്റ് ട്രെന്റുകൾ, ഡിമാൻഡ് പ്രവചനം, നിങ്ങളുടെ ഉൽപ്പന്നങ്ങൾക്ക് മികച്ച വാങ്ങുന്നവരെ കണ്ടെത്തൽ എന്നിവയിൽ എനിക്ക് സഹായിക്കാം. മാർക്കറ്റിനെക്കുറിച്ച് നിങ്ങൾക്ക് എന്താണ് അറിയേണ്ടത്?",
	"marketBot.inputPlaceholder":    "വിലകൾ, മാർക്കറ്റ് ട്രെന്റുകൾ, ഡിമാൻഡ് അല്ലെങ്കിൽ വാങ്ങുന്നവരെക്കുറിച്ച് ചോദിക്കുക...",
	"marketBot.placeholderResponse": "നിങ്ങളുടെ മാർക്കറ്റ് ചോദ്യത്തിന് നന്ദി! AI ഇന്റഗ്രേഷൻ ഉടൻ വരുന്നു. തത്സമയ മാർക്കറ്റ് വിലകൾ, ഡിമാൻഡ് വിശകലനം, സീസണൽ ട്രെന്റുകൾ നൽകാനും നിങ്ങളുടെ പ്രദേശത്തെ സാധ്യതയുള്ള വാങ്ങുന്നവരുമായി ബന്ധപ്പെടാനും എനിക്ക് കഴിയും.",
	"marketBot.suggestedQuestions":  "ചോദിച്ച് നോക്കൂ:",
	"marketBot.question1":           "എന്റെ പ്രദേശത്തെ നിലവിലെ തക്കാളി വിലയെന്താണ്?",
	"marketBot.question2":           "ഈ മാസം ഏറ്റവും കൂടുതൽ ഡിമാൻഡുള്ള വിളകൾ ഏവയാണ്?",
	"marketBot.question3":           "എന്റെ വിളവെടുപ്പ് വിൽക്കാൻ ഏറ്റവും നല്ല സമയം എപ്പോഴാണ്?",
	"marketBot.disclaimer":          "മാർക്കറ്റ് ഡാറ്റ പ്രാദേശിക വ്യാപാരികളും മാർക്കറ്റ്‌പ്ലേസുകളുമായി പരിശോധിക്കേണ്ടതാണ്",

	// Disease detection bot
	"diseaseBot.title":               "രോഗ നിർണ്ണയ സഹായി",
	"diseaseBot.subtitle":            "നിങ്ങളുടെ AI-പവേർഡ് സസ്യാരോഗ്യ ഉപദേശകൻ",
	"diseaseBot.welcomeMessage":      "നമസ്കാരം! ഞാൻ നിങ്ങളുടെ രോഗ നിർണ്ണയ സഹായിയാണ്. സസ്യരോഗങ്ങൾ തിരിച്ചറിയാനും ചികിത്സ നിർദ്ദേശിക്കാനും പ്രതിരോധ തന്ത്രങ്ങൾ നൽകാനും എനിക്ക് സഹായിക്കാം. വിശകലനത്തിനായി നിങ്ങൾക്ക് ലക്ഷണങ്ങൾ വിവരിക്കാനോ ഫോട്ടോകൾ അപ്‌ലോഡ് ചെയ്യാനോ കഴിയും. നിങ്ങളുടെ വിള ആരോഗ്യത്തിൽ എനിക്ക് എങ്ങനെ സഹായിക്കാം?",
	"diseaseBot.inputPlaceholder":    "ലക്ഷണങ്ങൾ വിവരിക്കുക അല്ലെങ്കിൽ സസ്യരോഗങ്ങളെക്കുറിച്ച് ചോദിക്കുക...",
	"diseaseBot.placeholderResponse": "നിങ്ങളുടെ സസ്യാരോഗ്യ ചോദ്യത്തിന് നന്ദി! AI ഇന്റഗ്രേഷൻ ഉടൻ വരുന്നു. രോഗബാധിതമായ സസ്യങ്ങളുടെ ഫോട്ടോകൾ വിശകലനം ചെയ്യാനും രോഗങ്ങളും കീടങ്ങളും തിരിച്ചറിയാനും ജൈവികവും രാസവുമായ ചികിത്സകൾ നിർദ്ദേശിക്കാനും പ്രതിരോധ തന്ത്രങ്ങൾ നൽകാനും എനിക്ക് കഴിയും.",
	"diseaseBot.suggestedQuestions":  "ചോദിച്ച് നോക്കൂ:",
	"diseaseBot.question1":           "എന്റെ തക്കാളി ഇലകളിൽ മഞ്ഞ പാടുകളുണ്ട്, ഇത് എന്താകാം?",
	"diseaseBot.question2":           "എന്റെ വിളകളിൽ ഫംഗൽ രോഗങ്ങൾ എങ്ങനെ തടയാം?",
	"diseaseBot.question3":           "കീടബാധയുടെ ലക്ഷണങ്ങൾ എവയാണ്?",
	"diseaseBot.disclaimer":          "രോഗനിർണ്ണയം കാർഷിക വിദഗ്ധർ സ്ഥിരീകരിക്കേണ്ടതാണ്",
}
