package prompt

import "vetwatch/internal/record"

// Answers the model is instructed to give when nothing is found. The
// extractor recognizes all of them as "no result".
const (
	NotFoundMarkerFr = "NON TROUVE"
	NotFoundMarkerEn = "NOT FOUND"
)

func builtinTemplates() map[key]string {
	return map[key]string{
		// Publication date.
		{TaskDate, record.LangFrench}: `Analyse ce texte d'actualité et extrais UNIQUEMENT la date de publication au format jj-mm-aaaa.

Titre: {title}
Contenu: {content}

Réponds UNIQUEMENT avec la date au format jj-mm-aaaa (exemple: 15-11-2023).
Si tu ne trouves pas de date, réponds "NON TROUVEE".`,

		{TaskDate, record.LangEnglish}: `Analyze this news text and extract ONLY the publication date in format dd-mm-yyyy.

Title: {title}
Content: {content}

Respond ONLY with the date in format dd-mm-yyyy (example: 15-11-2023).
If you don't find a date, respond "NOT FOUND".`,

		{TaskDate, record.LangArabic}: `حلل هذا النص واستخرج تاريخ النشر فقط بالتنسيق jj-mm-aaaa.

العنوان: {title}
المحتوى: {content}

أجب فقط بالتاريخ بالتنسيق jj-mm-aaaa (مثال: 15-11-2023).
إذا لم تجد تاريخاً، أجب "NON TROUVEE".`,

		// Animal disease.
		{TaskDisease, record.LangFrench}: `Tu es un expert en maladies animales. Extrais UNIQUEMENT le nom de la maladie animale mentionnée.

Texte:
{title}

{content}

RÈGLES STRICTES:
1. Extrais UNIQUEMENT le nom de la maladie (2-4 mots maximum)
2. Ne mets PAS le mot "maladie" avant le nom
3. Réponds SEULEMENT avec le nom, sans texte supplémentaire
4. Si aucune maladie n'est mentionnée, réponds "NON TROUVEE"

Exemples de bonnes réponses: "fièvre aphteuse", "grippe aviaire", "rage", "dermatose nodulaire"

Nom de la maladie:`,

		{TaskDisease, record.LangEnglish}: `You are an expert in animal diseases. Extract ONLY the name of the animal disease mentioned.

Text:
{title}

{content}

STRICT RULES:
1. Extract ONLY the disease name (2-4 words maximum)
2. Do NOT include the word "disease" before the name
3. Answer ONLY with the disease name, no additional text
4. If no disease is mentioned, respond "NOT FOUND"

Examples of correct answers: "foot-and-mouth disease", "avian influenza", "rabies", "lumpy skin disease"

Disease name:`,

		{TaskDisease, record.LangArabic}: `أنت خبير في الأمراض الحيوانية. استخرج اسم المرض الحيواني المذكور في النص.

النص:
{title}

{content}

قواعد صارمة:
1. استخرج فقط اسم المرض الحيواني (2-4 كلمات كحد أقصى)
2. لا تضع كلمة "مرض" قبل اسم المرض
3. أجب فقط باسم المرض، بدون أي نص إضافي
4. إذا لم تجد مرضاً، أجب فقط "NON TROUVEE"

اسم المرض:`,

		// Animal species.
		{TaskAnimal, record.LangFrench}: `Tu es un expert en maladies animales. Extrais le nom de l'animal ou de l'espèce animale mentionnée.

Texte:
{title}

{content}

RÈGLES STRICTES:
1. Extrais UNIQUEMENT le nom de l'animal (1-2 mots maximum)
2. Réponds SEULEMENT avec le nom, sans texte supplémentaire
3. Si aucun animal n'est mentionné, réponds "NON TROUVE"

Exemples de bonnes réponses: "bovins", "volailles", "ovins", "cerfs"

Nom de l'animal:`,

		{TaskAnimal, record.LangEnglish}: `You are an expert in animal diseases. Extract the name of the animal or animal species mentioned.

Text:
{title}

{content}

STRICT RULES:
1. Extract ONLY the animal name (1-2 words maximum)
2. Answer ONLY with the name, no additional text
3. If no animal is mentioned, respond "NOT FOUND"

Examples of correct answers: "cattle", "poultry", "sheep", "deer"

Animal name:`,

		{TaskAnimal, record.LangArabic}: `أنت خبير في الأمراض الحيوانية. استخرج اسم الحيوان أو نوع الحيوان المذكور في النص.

النص:
{title}

{content}

قواعد صارمة:
1. استخرج فقط اسم الحيوان (1-2 كلمات كحد أقصى)
2. أجب فقط باسم الحيوان، بدون أي نص إضافي
3. إذا لم تجد حيواناً، أجب "NON TROUVE"

اسم الحيوان:`,

		// Location: country of the event.
		{TaskLocation, record.LangFrench}: `Tu es un expert en géographie. Extrais UNIQUEMENT le pays où se déroule l'événement décrit.

Texte:
{title}

{content}

Très important:
- Réponds UNIQUEMENT avec le nom du pays, sans texte supplémentaire
- Si une ville ou région est mentionnée, donne UNIQUEMENT le pays correspondant
- Ne réponds PAS avec un ministère, un département ou une organisation
- Si aucun pays n'est identifiable, réponds "NON TROUVE"

Nom du pays:`,

		{TaskLocation, record.LangEnglish}: `You are a geography expert. Extract ONLY the country where the described event takes place.

Text:
{title}

{content}

Very important:
- Answer ONLY with the country name, no additional text
- If a city or region is mentioned, give ONLY the corresponding country
- Do NOT answer with a ministry, department or organization
- If no country can be identified, respond "NOT FOUND"

Country name:`,

		{TaskLocation, record.LangArabic}: `أنت خبير في الجغرافيا. استخرج فقط اسم البلد الذي يقع فيه الحدث الموصوف.

النص:
{title}

{content}

مهم جداً:
- أجب فقط باسم البلد بدون أي نص إضافي
- إذا ذكرت مدينة أو منطقة، اذكر اسم البلد فقط
- إذا لم تجد بلداً، أجب "NON TROUVE"

اسم البلد:`,

		// Organization.
		{TaskOrganization, record.LangFrench}: `Tu es un expert en analyse de textes. Extrais le nom de l'organisme, institution ou ministère mentionné.

Texte:
{title}

{content}

RÈGLES STRICTES:
1. Cherche TOUTE organisation mentionnée (exemples: Ministère de l'Agriculture, OMS, FAO, OIE, WOAH, CDC, ANSES)
2. Extrais UNIQUEMENT le nom de l'organisme (2-6 mots maximum)
3. Réponds SEULEMENT avec le nom, sans explication
4. Si aucune organisation n'est mentionnée, réponds "NON TROUVE"

Nom de l'organisme:`,

		{TaskOrganization, record.LangEnglish}: `You are an expert in text analysis. Extract the name of the organization, institution or ministry mentioned.

Text:
{title}

{content}

STRICT RULES:
1. Search for ANY organization mentioned (examples: Ministry of Agriculture, WHO, FAO, OIE, WOAH, CDC, EFSA)
2. Extract ONLY the organization name (2-6 words maximum)
3. Answer ONLY with the name, no explanation
4. If no organization is mentioned, respond "NOT FOUND"

Organization name:`,

		{TaskOrganization, record.LangArabic}: `أنت خبير في تحليل النصوص. استخرج اسم المنظمة أو المؤسسة أو الوزارة المذكورة في النص.

النص:
{title}

{content}

قواعد صارمة:
1. ابحث عن أي منظمة مذكورة (مثل: وزارة الزراعة، منظمة الصحة العالمية، FAO)
2. استخرج فقط اسم المنظمة (2-6 كلمات كحد أقصى)
3. أجب فقط باسم المنظمة، بدون شرح
4. إذا لم تجد منظمة، أجب "NON TROUVE"

اسم المنظمة:`,

		// Summary at a target word count.
		{TaskSummary, record.LangFrench}: `Analyse le contenu et produis un résumé cohérent, structuré et fidèle au contenu original.

EXIGENCES STRICTES:
- Le résumé DOIT être en français (même langue que le contenu original)
- Ne rajoute AUCUNE information externe qui n'est pas dans le texte original
- Garde uniquement les idées essentielles du texte original
- Écris des phrases complètes et structurées
- Commence directement par le contenu. Ne mets pas "Titre", "Résumé" ou d'autres mots avant le résumé

Titre: {title}

Texte:
{content}

Écris le résumé maintenant ({words} mots exactement). Commence directement par le contenu original:`,

		{TaskSummary, record.LangEnglish}: `Analyze the content and produce a coherent, structured, and faithful summary of the original content.

STRICT REQUIREMENTS:
- The summary MUST be in English (same language as the original content)
- Do NOT add ANY external information that is not in the original text
- Keep only the essential ideas from the original text
- Write complete, structured sentences
- Start directly with the content. Do not put "Title", "Summary" or other words before the summary

Title: {title}

Text:
{content}

Write the summary now (exactly {words} words). Start directly with the original content:`,

		{TaskSummary, record.LangArabic}: `لخص النص التالي في فقرة واحدة متماسكة تحتوي بالضبط على {words} كلمة.

المتطلبات الصارمة:
- استخدم اللغة العربية فقط، لا تستخدم الإنجليزية أو الفرنسية
- لا تضف أي معلومات خارجية غير موجودة في النص
- ابدأ الملخص مباشرة بالمحتوى، بدون كلمات مثل "عنوان" أو "ملخص"
- اكتب بجمل كاملة ومترابطة

العنوان: {title}

النص:
{content}

اكتب الملخص الآن ({words} كلمة بالضبط):`,
	}
}
