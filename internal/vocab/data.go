package vocab

// Alias tables for the controlled vocabularies. Canonical values follow
// the dataset convention: French names for diseases and animals,
// French country names for locations, acronyms or French names for
// organizations. Aliases cover English, French and Arabic variants.

// labelPrefixes are echoes of the prompt's answer label that models
// sometimes prepend.
var labelPrefixes = []string{
	"nom de la maladie:",
	"disease name:",
	"nom de l'animal:",
	"animal name:",
	"nom du pays:",
	"country name:",
	"nom de l'organisme:",
	"nom de l'organisation:",
	"organization name:",
	"organisme:",
	"organisation:",
	"organization:",
	"réponse:",
	"answer:",
	"name:",
	"nom:",
}

// invalidAnswers are the "nothing found" spellings the prompts ask for,
// plus common model variations.
var invalidAnswers = []string{
	"non trouve", "non trouvee", "non trouvé", "non trouvée", "non truve",
	"not found", "not founde", "no found", "no trouve",
	"n/a", "none", "null", "nan", "unknown", "...",
	"l'organisation", "the organization", "l'institution", "the institution",
	"le ministère", "the ministry", "المنظمة", "المؤسسة", "الوزارة",
	"l'animal", "the animal", "الحيوان",
}

// promptEchoMarkers betray a model answering with instructions instead
// of a value.
var promptEchoMarkers = []string{
	"you are", "tu es", "citation:", "très important", "very important",
	"here's", "assistant", "extract the",
}

func defaultTables() map[Kind]map[string]string {
	return map[Kind]map[string]string{
		KindDisease: {
			// fièvre aphteuse / foot-and-mouth disease
			"fmd":                    "fièvre aphteuse",
			"foot-and-mouth disease": "fièvre aphteuse",
			"foot and mouth disease": "fièvre aphteuse",
			"الحمى القلاعية":         "fièvre aphteuse",
			// grippe aviaire / avian influenza
			"avian influenza":      "grippe aviaire",
			"avian influenza h5n1": "grippe aviaire",
			"bird flu":             "grippe aviaire",
			"h5n1":                 "grippe aviaire",
			"influenza aviaire":    "grippe aviaire",
			"حمى الطيور":           "grippe aviaire",
			"إنفلونزا الطيور":      "grippe aviaire",
			// rage / rabies
			"rabies": "rage",
			"السعار": "rage",
			"داء الكلب": "rage",
			// dermatose nodulaire / lumpy skin disease
			"lumpy skin disease": "dermatose nodulaire",
			"lsd":                "dermatose nodulaire",
			"التهاب الجلد العقدي": "dermatose nodulaire",
			// fièvre catarrhale ovine / bluetongue
			"bluetongue":       "fièvre catarrhale ovine",
			"fièvre catarrhale": "fièvre catarrhale ovine",
			// anthrax / charbon
			"charbon bactéridien": "anthrax",
			"الجمرة الخبيثة":      "anthrax",
			// peste porcine africaine / African swine fever
			"african swine fever": "peste porcine africaine",
			"asf":                 "peste porcine africaine",
			"حمى الخنازير الأفريقية": "peste porcine africaine",
			// maladie de Newcastle
			"newcastle disease": "maladie de Newcastle",
			"مرض نيوكاسل":       "maladie de Newcastle",
			// maladie hémorragique épizootique
			"epizootic hemorrhagic disease": "maladie hémorragique épizootique",
			"ehd":                           "maladie hémorragique épizootique",
			"hémorragique épizootique":      "maladie hémorragique épizootique",
			// fièvre du Nil occidental / West Nile
			"west nile virus": "fièvre du Nil occidental",
			"west nile fever": "fièvre du Nil occidental",
			"حمى غرب النيل":   "fièvre du Nil occidental",
			// brucellose
			"brucellosis": "brucellose",
			"الحمى المالطية": "brucellose",
			// peste des petits ruminants
			"peste des petits ruminants": "peste des petits ruminants",
			"ppr":                        "peste des petits ruminants",
			"طاعون المجترات الصغيرة":     "peste des petits ruminants",
		},

		KindAnimal: {
			"cattle": "bovins", "cow": "bovins", "cows": "bovins",
			"bull": "bovins", "bulls": "bovins", "vache": "bovins",
			"vaches": "bovins", "bœufs": "bovins", "أبقار": "bovins",
			"عجول": "bovins", "ثيران": "bovins",

			"poultry": "volailles", "chicken": "volailles", "chickens": "volailles",
			"duck": "volailles", "ducks": "volailles", "turkey": "volailles",
			"turkeys": "volailles", "poulet": "volailles", "poulets": "volailles",
			"canards": "volailles", "دواجن": "volailles", "دجاج": "volailles",

			"sheep": "ovins", "lamb": "ovins", "lambs": "ovins",
			"mouton": "ovins", "moutons": "ovins", "brebis": "ovins",
			"أغنام": "ovins", "خروف": "ovins",

			"pig": "porcins", "pigs": "porcins", "swine": "porcins",
			"porc": "porcins", "porcs": "porcins", "cochons": "porcins",
			"خنازير": "porcins",

			"goat": "caprins", "goats": "caprins", "chèvre": "caprins",
			"chèvres": "caprins", "ماعز": "caprins",

			"horse": "chevaux", "horses": "chevaux", "cheval": "chevaux",
			"خيول": "chevaux", "حصان": "chevaux",

			"bird": "oiseaux", "birds": "oiseaux", "swan": "oiseaux",
			"swans": "oiseaux", "oiseau": "oiseaux", "طيور": "oiseaux",

			"dog": "chiens", "dogs": "chiens", "chien": "chiens",
			"كلاب": "chiens",

			"cat": "chats", "cats": "chats", "chat": "chats",
			"قطط": "chats",

			"deer": "cerfs", "cerf": "cerfs", "غزلان": "cerfs",

			"wild boar": "sangliers", "wild boars": "sangliers",
			"sanglier": "sangliers", "خنازير برية": "sangliers",

			"fox": "renards", "foxes": "renards", "renard": "renards",
			"ثعالب": "renards",

			"camel": "chameaux", "camels": "chameaux", "dromedary": "chameaux",
			"chameau": "chameaux", "جمال": "chameaux", "إبل": "chameaux",

			"rabbit": "lapins", "rabbits": "lapins", "lapin": "lapins",
			"أرانب": "lapins",

			"fish": "poissons", "poisson": "poissons", "أسماك": "poissons",

			"mouse": "rongeurs", "mice": "rongeurs", "rat": "rongeurs",
			"rats": "rongeurs", "souris": "rongeurs", "فئران": "rongeurs",
		},

		KindLocation: {
			"usa": "États-Unis", "united states": "États-Unis",
			"us": "États-Unis", "america": "États-Unis",
			"new york": "États-Unis", "rockland county": "États-Unis",
			"california": "États-Unis", "texas": "États-Unis",
			"kentucky": "États-Unis",

			"uk": "Royaume-Uni", "united kingdom": "Royaume-Uni",
			"britain": "Royaume-Uni", "england": "Royaume-Uni",
			"kent": "Royaume-Uni", "london": "Royaume-Uni",

			"south korea": "Corée du Sud", "korea": "Corée du Sud",
			"north korea": "Corée du Nord",

			"paris": "France", "lyon": "France", "marseille": "France",
			"corse": "France", "فرنسا": "France",

			"germany": "Allemagne", "spain": "Espagne", "italy": "Italie",
			"belgium": "Belgique", "belgique": "Belgique",
			"netherlands": "Pays-Bas", "switzerland": "Suisse",
			"austria": "Autriche", "poland": "Pologne",
			"ireland": "Irlande", "greece": "Grèce", "portugal": "Portugal",

			"china": "Chine", "japan": "Japon", "india": "Inde",
			"indonesia": "Indonésie", "philippines": "Philippines",
			"thailand": "Thaïlande", "vietnam": "Vietnam",
			"bangladesh": "Bangladesh", "pakistan": "Pakistan",

			"russia": "Russie", "ukraine": "Ukraine", "turkey": "Turquie",
			"kazakhstan": "Kazakhstan", "karaganda": "Kazakhstan",

			"brazil": "Brésil", "argentina": "Argentine",
			"paraguay": "Paraguay", "chile": "Chili",

			"egypt": "Égypte", "مصر": "Égypte", "cairo": "Égypte",
			"القاهرة": "Égypte", "قنا": "Égypte",
			"morocco": "Maroc", "المغرب": "Maroc", "casablanca": "Maroc",
			"الرباط": "Maroc", "الدار البيضاء": "Maroc",
			"algeria": "Algérie", "الجزائر": "Algérie",
			"tunisia": "Tunisie", "تونس": "Tunisie",
			"libya": "Libye", "ليبيا": "Libye",
			"saudi arabia": "Arabie saoudite", "السعودية": "Arabie saoudite",
			"uae": "Émirats arabes unis", "الإمارات": "Émirats arabes unis",
			"jordan": "Jordanie", "الأردن": "Jordanie",
			"lebanon": "Liban", "لبنان": "Liban",
			"iraq": "Irak", "العراق": "Irak",
			"iran": "Iran", "إيران": "Iran",
			"syria": "Syrie", "سوريا": "Syrie",

			"south africa": "Afrique du Sud", "limpopo": "Afrique du Sud",
			"uganda": "Ouganda", "zambia": "Zambie", "botswana": "Botswana",
			"australia": "Australie", "new zealand": "Nouvelle-Zélande",
		},

		KindOrganization: {
			"world health organization":          "OMS",
			"organisation mondiale de la santé":  "OMS",
			"منظمة الصحة العالمية":               "OMS",
			"who":                                "OMS",
			"food and agriculture organization":  "FAO",
			"منظمة الأغذية والزراعة":             "FAO",
			"world organisation for animal health": "WOAH",
			"world organization for animal health": "WOAH",
			"المنظمة العالمية لصحة الحيوان":        "WOAH",
			"oie":                                "OIE",
			"cdc":                                "CDC",
			"centers for disease control":        "CDC",
			"efsa":                               "EFSA",
			"anses":                              "ANSES",
			"usda":                               "USDA",
			"aphis":                              "APHIS",
			"defra":                              "DEFRA",
			"ministry of agriculture":            "Ministère de l'Agriculture",
			"ministère de l'agriculture":         "Ministère de l'Agriculture",
			"وزارة الزراعة":                      "Ministère de l'Agriculture",
			"ministry of health":                 "Ministère de la Santé",
			"ministère de la santé":              "Ministère de la Santé",
			"وزارة الصحة":                        "Ministère de la Santé",
		},

		// Dates are normalized structurally, not via aliases.
		KindDate: {},
	}
}
