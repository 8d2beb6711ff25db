package backend

import (
	"time"

	"github.com/aqala-site/aqala/internal/models"
	"github.com/aqala-site/aqala/internal/services"
)

// DefaultPollID is the poll the homepage renders and the fallback id for the
// results route.
const DefaultPollID = "homepage-theme"

func seedTime(value string) time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return t
}

// SeedAggregate builds the demo dataset the site ships with. It is applied
// whenever the durable store is empty or carries a stale schema version.
func SeedAggregate() *models.Aggregate {
	users := []models.User{
		{
			ID:       "user-admin",
			Name:     "سارة المدير",
			Email:    "admin@aqala.com",
			Password: "aqala123",
			Role:     "admin",
			Avatar:   "assets/images/thumb-5.svg",
		},
		{
			ID:       "user-editor",
			Name:     "أمجد المشرف",
			Email:    "admin2@aqala.com",
			Password: "secure123",
			Role:     "admin",
			Avatar:   "assets/images/thumb-4.svg",
		},
	}

	posts := []models.Post{
		{
			ID:          "post-1",
			Slug:        "rational-discourse",
			Title:       "كيف نبني خطاباً عقلانياً يواجه الشبهات",
			Author:      "أحمد السلمي",
			PublishedAt: seedTime("2025-02-11T08:00:00Z"),
			Category:    "logic",
			Tags:        []string{"المنطق", "الفلسفة"},
			Excerpt:     "نظرة استراتيجية إلى أدوات الخطاب العقلاني وكيفية إعداد الحجج المضادة للشبهات المعاصرة.",
			HeroImage:   "assets/images/article-1.svg",
			CardImage:   "assets/images/article-1.svg",
			Body: services.NormalizeParagraphs(
				"يحتاج الخطاب العقلاني اليوم إلى مراجعة جذرية تستوعب التحولات السريعة في المجال المعرفي المعاصر. فمواجهة الشبهات لا تعتمد على استدعاء النصوص فحسب، بل تتطلب بناء منظومة فكرية تتقن أصول المنطق ومناهج النقد وقراءات التراث في سياقه.\n\nالمدخل الأول يبدأ من تحديد مصادر الشبهة وتحليل بنيتها المنطقية. كثير من الإشكالات المطروحة اليوم تعتمد على مغالطات تركيبية أو تفكيك سياقات النصوص عن بيئتها المعرفية، لذا يتعين تدريب المهتمين على كشف المغالطة قبل الرد على المضمون.\n\nكما ينبغي إدراك أن الخطاب الموجه للجمهور العام يختلف عن الخطاب الأكاديمي المتخصص. من المهم توفير طبقات متعددة من المحتوى: ملخصات مبسطة، مقالات بحثية، ودراسات مفصلة مع ملاحقها ومراجعها.\n\nالتاريخ الإسلامي يقدم نموذجاً ثرياً في التكامل بين النقل والعقل، خصوصاً في تجربة المتكلمين الذين واجهوا تيارات فكرية متعددة وأسهموا في بناء نظم معرفية دقيقة.\n\nوفي سياق مواجهة الشبهات، يجب أن يكون الهدف النهائي هو بناء ثقة معرفية تعزز اليقين وتفتح المجال للحوار الرشيد بعيداً عن التشنج أو الانغلاق."),
			Comments:         24,
			Status:           "published",
			TrendingScore:    9,
			RecommendedScore: 8,
		},
		{
			ID:          "post-2",
			Slug:        "linguistic-argument-quran",
			Title:       "تفكيك الشبهة اللغوية حول نصوص القرآن",
			Author:      "ليلى الغامدي",
			PublishedAt: seedTime("2025-01-24T08:00:00Z"),
			Category:    "doubts",
			Tags:        []string{"القرآن", "السنة"},
			Excerpt:     "تحليل للسياقات اللغوية والبلاغية التي تُغفل عند طرح الشبهات حول النص القرآني.",
			HeroImage:   "assets/images/article-2.svg",
			CardImage:   "assets/images/article-2.svg",
			Body: services.NormalizeParagraphs(
				"تبدأ معالجة الشبهات اللغوية بتأطير النص القرآني في سياقه التداولي، واستحضار فقه اللغة وتاريخ الألفاظ. كثير من الاعتراضات تُبنى على اقتطاع النصوص من سياقها الكامل، لذلك يلزم إعادة بناء السياق قبل الرد."),
			Comments:         18,
			Status:           "published",
			TrendingScore:    7,
			RecommendedScore: 6,
		},
		{
			ID:          "post-3",
			Slug:        "prophethood-evidence",
			Title:       "منهجية إثبات النبوة في ضوء الأدلة التاريخية",
			Author:      "سارة المدني",
			PublishedAt: seedTime("2024-12-22T08:00:00Z"),
			Category:    "prophethood",
			Tags:        []string{"النبوة", "السيرة"},
			Excerpt:     "رحلة في المصادر التاريخية والتحليل النقدي لإثبات دعوى النبوة.",
			HeroImage:   "assets/images/article-3.svg",
			CardImage:   "assets/images/article-3.svg",
			Body: services.NormalizeParagraphs(
				"يستند إثبات النبوة إلى براهين مركبة تجمع بين شهادة النص القطعي والوقائع التاريخية والتحول الحضاري الذي أحدثه الوحي."),
			Comments:         32,
			Status:           "published",
			TrendingScore:    8,
			RecommendedScore: 9,
		},
		{
			ID:          "post-4",
			Slug:        "logic-philosophy-overview",
			Title:       "مدخل معاصر إلى فلسفة المنطق والتحليل",
			Author:      "د. يوسف الحمادي",
			PublishedAt: seedTime("2024-12-05T08:00:00Z"),
			Category:    "logic",
			Tags:        []string{"المنطق"},
			Excerpt:     "تأملات في علاقة المنطق بالعلوم العقلية ومناهج البرهنة الحديثة.",
			HeroImage:   "assets/images/article-4.svg",
			CardImage:   "assets/images/article-4.svg",
			Body: services.NormalizeParagraphs(
				"يستعيد المقال الأساسات الكبرى للمنطق الصوري ثم يربطها بمباحث الاستدلال المعاصر مع مقارنة بين المدارس الإسلامية والاتجاهات الحديثة."),
			Comments:         11,
			Status:           "published",
			TrendingScore:    6,
			RecommendedScore: 7,
		},
		{
			ID:          "post-5",
			Slug:        "divine-justice-and-reason",
			Title:       "العدالة الإلهية بين النص والعقل",
			Author:      "مروان الراشد",
			PublishedAt: seedTime("2024-11-18T08:00:00Z"),
			Category:    "theology",
			Tags:        []string{"العقيدة", "العدالة"},
			Excerpt:     "تحقيق في مباحث العدل الإلهي بين المدارس الكلامية والفلسفية.",
			HeroImage:   "assets/images/article-5.svg",
			CardImage:   "assets/images/article-5.svg",
			Body: services.NormalizeParagraphs(
				"يوازن المقال بين المعالجة الكلامية التقليدية لقضية العدل الإلهي ومقاربات الفلسفة الأخلاقية المعاصرة مع إبراز نقاط الالتقاء والاختلاف."),
			Comments:         27,
			Status:           "published",
			TrendingScore:    9,
			RecommendedScore: 5,
		},
		{
			ID:          "post-6",
			Slug:        "epistemology-in-islamic-thought",
			Title:       "معرفة اليقين: قراءة في نظريات المعرفة الإسلامية",
			Author:      "آمنة الأنصاري",
			PublishedAt: seedTime("2024-10-29T08:00:00Z"),
			Category:    "philosophy",
			Tags:        []string{"الفلسفة", "الابستمولوجيا"},
			Excerpt:     "عرض تحليلي لمفهوم المعرفة عند علماء الإسلام ومقارنته بالاتجاهات الحديثة.",
			HeroImage:   "assets/images/article-6.svg",
			CardImage:   "assets/images/article-6.svg",
			Body: services.NormalizeParagraphs(
				"يتناول المقال محاور المعرفة اليقينية وقنواتها في التراث الإسلامي مع مقارنة موجزة بالمدارس التحليلية المعاصرة."),
			Comments:         9,
			Status:           "published",
			TrendingScore:    5,
			RecommendedScore: 8,
		},
	}

	poll := &models.Poll{
		ID:    DefaultPollID,
		Title: "أي سمة تفضل لعرض المقالات؟",
		Options: map[string]*models.PollOption{
			"light": {Value: "light", Label: "سمة مضيئة", Votes: 42},
			"dark":  {Value: "dark", Label: "سمة داكنة", Votes: 24},
			"sepia": {Value: "sepia", Label: "سمة دافئة", Votes: 12},
		},
	}

	return &models.Aggregate{
		Version:               models.DataVersion,
		Users:                 users,
		Posts:                 posts,
		Polls:                 map[string]*models.Poll{poll.ID: poll},
		NewsletterSubscribers: []string{},
		Ratings:               map[string][]models.Rating{},
	}
}
