package catalog

var defaultCategories = []Category{
	{
		Key:         "animals",
		NameArabic:  "حيوانات",
		NameEnglish: "Animals",
		Words: []string{
			"أسد", "نمر", "فيل", "زرافة", "جمل",
			"حصان", "قرد", "ذئب", "ثعلب", "دب",
		},
	},
	{
		Key:         "food",
		NameArabic:  "أكلات",
		NameEnglish: "Food",
		Words: []string{
			"كبسة", "مندي", "شاورما", "فلافل", "برياني",
			"مقلوبة", "كنافة", "بيتزا", "برجر", "معصوب",
		},
	},
	{
		Key:         "countries",
		NameArabic:  "دول",
		NameEnglish: "Countries",
		Words: []string{
			"السعودية", "مصر", "الكويت", "الإمارات", "قطر",
			"عمان", "البحرين", "الأردن", "العراق", "المغرب",
		},
	},
	{
		Key:         "sports",
		NameArabic:  "رياضات",
		NameEnglish: "Sports",
		Words: []string{
			"كرة القدم", "كرة السلة", "التنس", "السباحة", "الملاكمة",
			"الكاراتيه", "ركوب الخيل", "الجري", "الغوص", "كرة الطائرة",
		},
	},
	{
		Key:         "jobs",
		NameArabic:  "مهن",
		NameEnglish: "Jobs",
		Words: []string{
			"طبيب", "مهندس", "معلم", "طيار", "شرطي",
			"نجار", "طباخ", "مزارع", "صياد", "مصور",
		},
	},
}
