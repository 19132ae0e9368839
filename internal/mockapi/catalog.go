package mockapi

import "github.com/neuroad/neuroad-cli/internal/api"

// Strategies is the seeded strategy catalog.
var Strategies = []api.Strategy{
	{ID: "hook", NameAr: "الخطاف", NameEn: "Hook Strategy", Icon: "hook", DescriptionAr: "عنصر مفاجئ يوقف التصفح", DescriptionEn: "Surprising element that stops scrolling", VisualInstructions: "Use HIGH CONTRAST colors, FISH-EYE angles, include ONE ILLOGICAL element. Text should be BOLD and off-center.", VideoInstructions: "Start with unexpected visual. Quick cuts, dynamic movement."},
	{ID: "shock_comparison", NameAr: "المقارنة الصادمة", NameEn: "Shock Comparison", Icon: "scale", DescriptionAr: "تقسيم يبرز التباين الحاد", DescriptionEn: "Split screen showing stark contrast", VisualInstructions: "SPLIT SCREEN - left dark/chaotic, right bright/organized. Sharp diagonal dividing line.", VideoInstructions: "Wipe transition from problem to solution."},
	{ID: "bold_opinion", NameAr: "الرأي الجريء", NameEn: "Bold Opinion", Icon: "megaphone", DescriptionAr: "موقف قوي يثير النقاش", DescriptionEn: "Strong stance that sparks discussion", VisualInstructions: "Extensive NEGATIVE SPACE (60%+). One powerful statement in large typography.", VideoInstructions: "Static shot with slowly appearing text."},
	{ID: "whisper_insight", NameAr: "الهمس", NameEn: "Whisper Insight", Icon: "lightbulb", DescriptionAr: "جو غامض يوحي بالسرية", DescriptionEn: "Mysterious atmosphere suggesting secrets", VisualInstructions: "DIM LIGHTING with spotlight. MACRO close-ups. Muted colors with one accent.", VideoInstructions: "Slow motion, shallow depth of field."},
	{ID: "pain_of_paying", NameAr: "ألم الدفع", NameEn: "Pain of Paying", Icon: "credit-card", DescriptionAr: "إظهار القيمة أكبر من السعر", DescriptionEn: "Show value larger than price", VisualInstructions: "VALUE in HUGE typography (200%+), price in small text. Green checkmarks.", VideoInstructions: "Items appearing with cha-ching effect."},
	{ID: "loss_aversion", NameAr: "تجنب الخسارة", NameEn: "Loss Aversion", Icon: "shield-alert", DescriptionAr: "الخوف من فقدان الفرصة", DescriptionEn: "Fear of missing out", VisualInstructions: "RED gradients. Product FADING effect. Countdown timer. Empty shelf imagery.", VideoInstructions: "Product slowly fading. Clock ticking."},
	{ID: "problem_solution", NameAr: "المشكلة والحل", NameEn: "Problem-Solution", Icon: "puzzle", DescriptionAr: "من الفوضى إلى الراحة", DescriptionEn: "From chaos to comfort", VisualInstructions: "Two-panel: Panel 1 GRAYSCALE showing frustration. Panel 2 FULL COLOR showing relief.", VideoInstructions: "Start BLACK AND WHITE, transition to full color."},
	{ID: "story_based", NameAr: "القصة", NameEn: "Story-Based", Icon: "book-open", DescriptionAr: "سرد قصة بداية ووسط ونهاية", DescriptionEn: "Narrative with beginning, middle, end", VisualInstructions: "CAROUSEL design (3-5 panels). Setup, Conflict, Resolution.", VideoInstructions: "Three-act structure. Character-driven."},
	{ID: "human_touch", NameAr: "اللمسة البشرية", NameEn: "Human Touch", Icon: "heart-handshake", DescriptionAr: "تواصل بصري مباشر مع الكاميرا", DescriptionEn: "Direct eye contact with camera", VisualInstructions: "DIRECT EYE CONTACT mandatory. Real human face. Genuine smile. Natural lighting.", VideoInstructions: "Person looking at camera. Authentic testimonial."},
	{ID: "engagement_cta", NameAr: "السؤال التفاعلي", NameEn: "Engagement CTA", Icon: "message-circle", DescriptionAr: "عنصر تفاعلي يدعو للمشاركة", DescriptionEn: "Interactive element inviting participation", VisualInstructions: "Include FAKE INTERACTIVE ELEMENTS: Poll buttons, A/B choices, quiz format.", VideoInstructions: "Pause for viewer. Point to comment section."},
	{ID: "herd_mentality", NameAr: "القطيع", NameEn: "Herd Mentality", Icon: "users", DescriptionAr: "ازدحام يظهر الشعبية", DescriptionEn: "Crowd showing popularity", VisualInstructions: "Show CROWD using the product. Queue imagery. 'Sold out' stamps.", VideoInstructions: "Multiple people unboxing. Counter showing growing numbers."},
	{ID: "social_proof", NameAr: "الدليل الاجتماعي", NameEn: "Social Proof", Icon: "star", DescriptionAr: "تقييمات وآراء العملاء", DescriptionEn: "Customer reviews and ratings", VisualInstructions: "STAR RATINGS prominently displayed. Chat bubble with testimonial. Trust badges.", VideoInstructions: "Testimonial clips. Star rating animation."},
	{ID: "reciprocity", NameAr: "المقايضة", NameEn: "Reciprocity Principle", Icon: "gift", DescriptionAr: "الهدية تلمع أكثر من المنتج", DescriptionEn: "Gift shines brighter than product", VisualInstructions: "FREE GIFT with GLOW effect - more prominent than main product.", VideoInstructions: "Gift reveal with sparkle effects."},
	{ID: "commitment", NameAr: "الالتزام", NameEn: "Commitment & Consistency", Icon: "check-circle", DescriptionAr: "شريط تقدم يوحي بالإنجاز", DescriptionEn: "Progress bar suggesting achievement", VisualInstructions: "PROGRESS BAR at 70-90%. Step indicators. 'Almost there!' messaging.", VideoInstructions: "Progress bar filling up. Confetti at milestones."},
	{ID: "scarcity", NameAr: "الندرة", NameEn: "Scarcity Principle", Icon: "clock", DescriptionAr: "عناصر توحي بالنفاد", DescriptionEn: "Elements suggesting running out", VisualInstructions: "EMPTY SHELVES with last item. COUNTDOWN TIMER. HOURGLASS. Red urgent colors.", VideoInstructions: "Clock ticking. Items disappearing from shelf."},
}

// Platforms is the seeded platform catalog.
var Platforms = []api.Platform{
	{ID: "tiktok_reels", Name: "تيك توك / ريلز", NameEn: "TikTok / Reels", Width: 1080, Height: 1920, Aspect: "9:16", Orientation: "vertical"},
	{ID: "post_square", Name: "بوست مربع", NameEn: "Square Post", Width: 1080, Height: 1080, Aspect: "1:1", Orientation: "square"},
	{ID: "youtube_banner", Name: "يوتيوب / بنر", NameEn: "YouTube / Banner", Width: 1920, Height: 1080, Aspect: "16:9", Orientation: "landscape"},
	{ID: "ig_story", Name: "ستوري", NameEn: "Story", Width: 1080, Height: 1920, Aspect: "9:16", Orientation: "vertical"},
	{ID: "fb_feed", Name: "فيسبوك فيد", NameEn: "Facebook Feed", Width: 1200, Height: 628, Aspect: "1.91:1", Orientation: "wide"},
}

// Tips is the seeded marketing-tip list.
var Tips = []api.MarketingTip{
	{Ar: "الإعلانات ذات الوجوه البشرية تحقق تفاعل أعلى بـ 38%", En: "Ads with human faces get 38% higher engagement"},
	{Ar: "اللون الأحمر يزيد الإحساس بالإلحاح", En: "Red color increases sense of urgency"},
	{Ar: "أول 3 ثوان تحدد 70% من نجاح الإعلان", En: "First 3 seconds determine 70% of ad success"},
	{Ar: "الأرقام الفردية (7, 9) أكثر إقناعاً", En: "Odd numbers (7, 9) are more persuasive"},
	{Ar: "التواصل البصري يزيد الثقة بـ 50%", En: "Eye contact increases trust by 50%"},
	{Ar: "الندرة تزيد القيمة المدركة بـ 200%", En: "Scarcity increases perceived value by 200%"},
	{Ar: "القصص تُذكر 22 مرة أكثر من الحقائق", En: "Stories are remembered 22x more than facts"},
	{Ar: "الألوان الدافئة تحفز القرار السريع", En: "Warm colors encourage quick decisions"},
}

var captionOpeners = map[string][2]string{
	"hook":          {"توقف! 🛑 هل رأيت هذا من قبل؟", "Stop! 🛑 Have you seen this before?"},
	"scarcity":      {"⏰ الكمية محدودة جداً!", "⏰ Very limited quantity!"},
	"social_proof":  {"⭐⭐⭐⭐⭐ آلاف العملاء السعداء", "⭐⭐⭐⭐⭐ Thousands of happy customers"},
	"loss_aversion": {"😱 لا تفوّت الفرصة!", "😱 Don't miss out!"},
}

var defaultHashtags = []string{"#اعلان", "#تسويق", "#عرض_خاص"}

func captionFor(strategyID, company string) api.Caption {
	opener, ok := captionOpeners[strategyID]
	if !ok {
		opener = [2]string{"عرض خاص ✨", "Special offer ✨"}
	}
	tags := "#اعلان #تسويق #عرض_خاص"
	return api.Caption{
		CaptionAr: opener[0] + "\n\n" + company + "\n\n" + tags,
		CaptionEn: opener[1] + "\n\n" + company + "\n\n" + tags,
		Hashtags:  append([]string(nil), defaultHashtags...),
	}
}
