package i18n

type entry struct {
	ar string
	en string
}

var table = [...]entry{
	KeyHome:       {"الرئيسية", "Home"},
	KeyNewProject: {"مشروع جديد", "New Project"},
	KeyProjects:   {"مشاريعي", "My Projects"},
	KeyLogin:      {"تسجيل الدخول", "Login"},
	KeyLogout:     {"تسجيل الخروج", "Logout"},

	KeyHeroTitle:    {"مساعدك الإبداعي للإعلانات", "Your Creative Ad Assistant"},
	KeyHeroSubtitle: {"توليد إعلانات عالية التحويل باستخدام استراتيجيات التسويق العصبي", "Generate high-converting ads using neuromarketing strategies"},
	KeyStartNow:     {"ابدأ الآن", "Start Now"},
	KeyViewProjects: {"عرض المشاريع", "View Projects"},

	KeyContentType:     {"نوع المحتوى", "Content Type"},
	KeyContentTypeHint: {"اختر نوع المحتوى الذي تريد إنشاء إعلانات له", "Choose the type of content you want to create ads for"},
	KeyStore:           {"متجر إلكتروني", "E-commerce Store"},
	KeyServiceWebsite:  {"موقع خدمات", "Service Website"},
	KeySpecificProduct: {"منتج محدد", "Specific Product"},
	KeySpecificService: {"خدمة محددة", "Specific Service"},

	KeyWebsiteURL:         {"رابط الموقع", "Website URL"},
	KeyExtractData:        {"تحليل ذكي", "Smart Analysis"},
	KeyExtracting:         {"جاري التحليل...", "Analyzing..."},
	KeyCompanyName:        {"اسم الشركة", "Company Name"},
	KeyCompanyDescription: {"نبذة عن الشركة", "Company Description"},
	KeyStrengths:          {"نقاط القوة", "Strengths"},
	KeyStrength:           {"نقطة قوة", "Strength"},
	KeyAddStrength:        {"إضافة نقطة قوة", "Add Strength"},
	KeyUploadImages:       {"الصور المرجعية", "Reference Images"},
	KeyUploadHint:         {"ارفع 4 صور للمنتج/الخدمة لضمان تثبيت الهوية", "Upload 4 product/service images to lock identity"},
	KeyUploadPrompt:       {"أدخل مسارات الصور المرجعية (4 صور كحد أقصى)", "Enter reference image paths (max 4)"},
	KeyScrapedImages:      {"صور مستخرجة من الموقع", "Images from website"},

	KeyDesignGoal:         {"هدف الحملة", "Campaign Goal"},
	KeyDirectSale:         {"بيع مباشر", "Direct Sale"},
	KeyDirectSaleDesc:     {"تحفيز الشراء الفوري", "Drive immediate purchases"},
	KeyBrandAwareness:     {"وعي بالعلامة", "Brand Awareness"},
	KeyBrandAwarenessDesc: {"بناء الهوية البصرية", "Build visual identity"},
	KeyEducational:        {"محتوى تعليمي", "Educational"},
	KeyEducationalDesc:    {"تقديم قيمة ومعلومات", "Provide value & info"},

	KeyPlatform:       {"المنصة والمقاس", "Platform & Size"},
	KeySelectPlatform: {"اختر المنصة", "Select Platform"},

	KeyPsychStrategy:  {"المحرك النفسي", "Neuro-Engine"},
	KeySelectStrategy: {"اختر الاستراتيجية النفسية لحملتك", "Choose psychological strategy for your campaign"},
	KeyVisualEffect:   {"التأثير البصري", "Visual Effect"},

	KeyGenerateImages:         {"توليد 3 صور", "Generate 3 Images"},
	KeyGenerateVideo:          {"توليد فيديو", "Generate Video"},
	KeyGenerating:             {"جاري التوليد...", "Generating..."},
	KeyGenerateNew:            {"توليد محتوى جديد", "Generate New Content"},
	KeyCustomInstructions:     {"تعليمات إضافية (اختياري)", "Custom Instructions (optional)"},
	KeyCustomInstructionsHint: {"أضف تعليمات خاصة...", "Add custom instructions..."},
	KeyVideoDuration:          {"مدة الفيديو", "Video Duration"},
	KeyVideoAspect:            {"نسبة الفيديو", "Video Aspect"},
	KeySeconds:                {"ثواني", "seconds"},
	KeyPortrait:               {"عمودي", "Portrait"},
	KeySquare:                 {"مربع", "Square"},
	KeyLandscape:              {"أفقي", "Landscape"},
	KeyCreatingAd:             {"جاري إنشاء الإعلان...", "Creating your ad..."},
	KeyMayTakeMinutes:         {"قد يستغرق هذا بضع دقائق", "This may take a few minutes"},

	KeyBrandAnalysis:  {"تحليل العلامة التجارية", "Brand Analysis"},
	KeyBrandVoice:     {"شخصية العلامة", "Brand Voice"},
	KeyColorPalette:   {"لوحة الألوان", "Color Palette"},
	KeyPrimaryColor:   {"اللون الرئيسي", "Primary Color"},
	KeySecondaryColor: {"اللون الثانوي", "Secondary Color"},
	KeyAccentColor:    {"لون التمييز", "Accent Color"},
	KeyVoiceLuxury:    {"فاخر", "Luxury"},
	KeyVoicePlayful:   {"مرح", "Playful"},
	KeyVoiceFormal:    {"رسمي", "Formal"},
	KeyVoiceFriendly:  {"ودود", "Friendly"},

	KeyStep1:         {"نوع المحتوى", "Content Type"},
	KeyStep2:         {"التحليل الذكي", "Smart Analysis"},
	KeyStep3:         {"الصور المرجعية", "Reference Images"},
	KeyStep4:         {"إعدادات الحملة", "Campaign"},
	KeyStep5:         {"المحرك النفسي", "Neuro-Engine"},
	KeyNext:          {"التالي", "Next"},
	KeyPrevious:      {"السابق", "Previous"},
	KeyCreateProject: {"إنشاء المشروع", "Create Project"},

	KeyGeneratedImages:  {"الصور المولدة", "Generated Images"},
	KeyGeneratedVideos:  {"الفيديوهات", "Videos"},
	KeyGeneratedCaption: {"النص الإعلاني", "Ad Caption"},
	KeyDownload:         {"تحميل", "Download"},
	KeyNoContent:        {"لم يتم توليد محتوى بعد", "No content generated yet"},
	KeyCopyCaption:      {"نسخ النص", "Copy Caption"},
	KeyCopied:           {"تم النسخ", "Copied"},
	KeyImageN:           {"صورة %d", "Image %d"},
	KeyProjectInfo:      {"معلومات المشروع", "Project Info"},
	KeyReferenceImages:  {"الصور المرجعية", "Reference Images"},

	KeyMockupPreview:   {"معاينة واقعية", "Live Preview"},
	KeyInstagramMockup: {"معاينة انستقرام", "Instagram Preview"},
	KeyTiktokMockup:    {"معاينة تيك توك", "TikTok Preview"},
	KeySponsored:       {"ممول", "Sponsored"},
	KeyLikes:           {"إعجاب", "likes"},

	KeyGeneratingTip: {"نصيحة تسويقية", "Marketing Tip"},

	KeyStatusDraft:           {"مسودة", "Draft"},
	KeyStatusGenerating:      {"جاري التوليد", "Generating"},
	KeyStatusGeneratingVideo: {"جاري توليد الفيديو", "Generating Video"},
	KeyStatusCompleted:       {"مكتمل", "Completed"},
	KeyStatusFailed:          {"فشل", "Failed"},

	KeyExtractSucceeded:    {"تم تحليل الموقع بنجاح", "Website analyzed successfully"},
	KeyExtractFailed:       {"فشل تحليل الموقع", "Failed to analyze website"},
	KeyMaxImages:           {"يمكنك رفع 4 صور كحد أقصى", "Maximum 4 images allowed"},
	KeyUploadFailed:        {"فشل رفع الصورة", "Failed to upload image"},
	KeyProjectCreated:      {"تم إنشاء المشروع بنجاح", "Project created successfully"},
	KeyProjectCreateFailed: {"فشل إنشاء المشروع", "Failed to create project"},
	KeyProjectLoadFailed:   {"فشل تحميل المشروع", "Failed to load project"},
	KeyProjectsLoadFailed:  {"فشل تحميل المشاريع", "Failed to load projects"},
	KeyImagesGenerated:     {"تم توليد 3 صور بنجاح", "3 images generated successfully"},
	KeyImagesFailed:        {"فشل توليد الصور", "Failed to generate images"},
	KeyVideoStarted:        {"جاري توليد الفيديو... قد يستغرق 2-10 دقائق", "Generating video... This may take 2-10 minutes"},
	KeyVideoGenerated:      {"تم توليد الفيديو بنجاح", "Video generated successfully"},
	KeyVideoFailed:         {"فشل توليد الفيديو", "Failed to generate video"},
	KeyConfirmDelete:       {"هل أنت متأكد من حذف هذا المشروع؟", "Are you sure you want to delete this project?"},
	KeyProjectDeleted:      {"تم حذف المشروع", "Project deleted"},
	KeyDeleteFailed:        {"فشل حذف المشروع", "Failed to delete project"},
	KeyCaptionCopied:       {"تم نسخ النص", "Caption copied"},
	KeyCopyFailed:          {"فشل نسخ النص", "Failed to copy"},
	KeyNoProjects:          {"لا توجد مشاريع بعد", "No projects yet"},
	KeyLoginFailed:         {"فشل تسجيل الدخول", "Login failed"},
	KeyLoggedOut:           {"تم تسجيل الخروج", "Logged out"},
	KeyWaitingForLogin:     {"في انتظار إكمال تسجيل الدخول في المتصفح...", "Waiting for login to complete in the browser..."},

	KeyLoading:     {"جاري التحميل...", "Loading..."},
	KeyError:       {"حدث خطأ", "Error occurred"},
	KeySuccess:     {"تم بنجاح", "Success"},
	KeyDelete:      {"حذف", "Delete"},
	KeyCancel:      {"إلغاء", "Cancel"},
	KeyConfirm:     {"تأكيد", "Confirm"},
	KeyBack:        {"رجوع", "Back"},
	KeyViewDetails: {"عرض التفاصيل", "View Details"},
	KeyCreatedAt:   {"تاريخ الإنشاء", "Created At"},
	KeySwipeHint:   {"اسحب للتنقل بين الصور", "Swipe to navigate images"},
	KeyVariations:  {"النسخ المختلفة", "Variations"},
	KeyRefresh:     {"تحديث", "Refresh"},
	KeyQuit:        {"خروج", "Quit"},
	KeyLanguage:    {"English", "العربية"},
	KeyTheme:       {"المظهر", "Theme"},
}

// Fails to compile when the table is shorter or longer than the key set.
var _ [keyCount]entry = table
