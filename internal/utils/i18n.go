package utils

// Server-side i18n for the fixed set of backend messages. The site ships in
// Arabic; English is the fallback table.

var translations = map[string]map[string]string{
	"ar": {
		"health.ok":                "جاهز",
		"auth.welcome":             "مرحباً %s!",
		"auth.invalid_credentials": "بيانات الدخول غير صحيحة",
		"auth.required_fields":     "يرجى تعبئة الحقول المطلوبة",
		"auth.password_short":      "كلمة المرور يجب ألا تقل عن 6 أحرف",
		"auth.password_mismatch":   "كلمتا المرور غير متطابقتان",
		"auth.email_taken":         "البريد الإلكتروني مستخدم بالفعل",
		"auth.registered":          "تم إنشاء الحساب بنجاح",
		"auth.logged_out":          "تم تسجيل الخروج بنجاح",
		"auth.login_required":      "يلزم تسجيل الدخول لتنفيذ هذا الإجراء",
		"newsletter.required":      "يرجى إدخال البريد الإلكتروني",
		"newsletter.invalid":       "البريد الإلكتروني غير صالح",
		"newsletter.already":       "أنت مشترك بالفعل في النشرة",
		"newsletter.subscribed":    "✓ تم الاشتراك في النشرة",
		"poll.not_found":           "الاستطلاع غير متاح حالياً",
		"poll.option_invalid":      "الخيار المطلوب غير متاح",
		"poll.already_voted":       "لقد شاركت في الاستطلاع مسبقاً",
		"poll.required_fields":     "يرجى إدخال سؤال وخيارات الاستطلاع",
		"poll.options_min":         "أدخل خيارين على الأقل",
		"poll.created":             "تم إنشاء الاستطلاع",
		"article.required_fields":  "يرجى إدخال عنوان ومحتوى للمقال",
		"article.published":        "تم حفظ المقال ونشره فوراً",
		"article.not_found":        "المقال غير موجود",
		"rating.required":          "يرجى اختيار تقييم",
		"rating.thanks":            "شكراً لتقييمك المحتوى",
		"user.required_fields":     "يرجى إدخال اسم وبريد المستخدم",
		"user.created":             "تم إضافة المستخدم بكلمة مرور افتراضية",
		"route.method_not_allowed": "طريقة الإرسال غير مدعومة",
		"route.not_found":          "المسار المطلوب غير متاح في بيئة التطوير المحلية",
	},
	"en": {
		"health.ok":                "ok",
		"auth.welcome":             "Welcome %s!",
		"auth.invalid_credentials": "Invalid credentials",
		"auth.required_fields":     "Please fill in the required fields",
		"auth.password_short":      "Password must be at least 6 characters",
		"auth.password_mismatch":   "Passwords do not match",
		"auth.email_taken":         "Email address is already in use",
		"auth.registered":          "Account created successfully",
		"auth.logged_out":          "Logged out successfully",
		"auth.login_required":      "You must be logged in to perform this action",
		"newsletter.required":      "Please enter an email address",
		"newsletter.invalid":       "Invalid email address",
		"newsletter.already":       "You are already subscribed to the newsletter",
		"newsletter.subscribed":    "✓ Subscribed to the newsletter",
		"poll.not_found":           "The poll is not available right now",
		"poll.option_invalid":      "The requested option is not available",
		"poll.already_voted":       "You have already voted in this poll",
		"poll.required_fields":     "Please enter a question and poll options",
		"poll.options_min":         "Enter at least two options",
		"poll.created":             "Poll created",
		"article.required_fields":  "Please enter a title and body for the article",
		"article.published":        "Article saved and published immediately",
		"article.not_found":        "Article not found",
		"rating.required":          "Please choose a rating",
		"rating.thanks":            "Thanks for rating the content",
		"user.required_fields":     "Please enter the user's name and email",
		"user.created":             "User added with a default password",
		"route.method_not_allowed": "Method not allowed",
		"route.not_found":          "The requested path is not available in the local dev environment",
	},
}

// T returns the translated string for key in locale; falls back to English.
func T(locale, key string) string {
	if m, ok := translations[locale]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if m, ok := translations["en"]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return key
}
