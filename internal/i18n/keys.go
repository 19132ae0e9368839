package i18n

// Key identifies a translatable string.
type Key int

const (
	// Navigation
	KeyHome Key = iota
	KeyNewProject
	KeyProjects
	KeyLogin
	KeyLogout

	// Hero
	KeyHeroTitle
	KeyHeroSubtitle
	KeyStartNow
	KeyViewProjects

	// Content types
	KeyContentType
	KeyContentTypeHint
	KeyStore
	KeyServiceWebsite
	KeySpecificProduct
	KeySpecificService

	// Form labels
	KeyWebsiteURL
	KeyExtractData
	KeyExtracting
	KeyCompanyName
	KeyCompanyDescription
	KeyStrengths
	KeyStrength
	KeyAddStrength
	KeyUploadImages
	KeyUploadHint
	KeyUploadPrompt
	KeyScrapedImages

	// Design goals
	KeyDesignGoal
	KeyDirectSale
	KeyDirectSaleDesc
	KeyBrandAwareness
	KeyBrandAwarenessDesc
	KeyEducational
	KeyEducationalDesc

	// Platform
	KeyPlatform
	KeySelectPlatform

	// Strategy
	KeyPsychStrategy
	KeySelectStrategy
	KeyVisualEffect

	// Generation
	KeyGenerateImages
	KeyGenerateVideo
	KeyGenerating
	KeyGenerateNew
	KeyCustomInstructions
	KeyCustomInstructionsHint
	KeyVideoDuration
	KeyVideoAspect
	KeySeconds
	KeyPortrait
	KeySquare
	KeyLandscape
	KeyCreatingAd
	KeyMayTakeMinutes

	// Brand analysis
	KeyBrandAnalysis
	KeyBrandVoice
	KeyColorPalette
	KeyPrimaryColor
	KeySecondaryColor
	KeyAccentColor
	KeyVoiceLuxury
	KeyVoicePlayful
	KeyVoiceFormal
	KeyVoiceFriendly

	// Wizard steps
	KeyStep1
	KeyStep2
	KeyStep3
	KeyStep4
	KeyStep5
	KeyNext
	KeyPrevious
	KeyCreateProject

	// Results
	KeyGeneratedImages
	KeyGeneratedVideos
	KeyGeneratedCaption
	KeyDownload
	KeyNoContent
	KeyCopyCaption
	KeyCopied
	KeyImageN
	KeyProjectInfo
	KeyReferenceImages

	// Mockups
	KeyMockupPreview
	KeyInstagramMockup
	KeyTiktokMockup
	KeySponsored
	KeyLikes

	// Loading
	KeyGeneratingTip

	// Status
	KeyStatusDraft
	KeyStatusGenerating
	KeyStatusGeneratingVideo
	KeyStatusCompleted
	KeyStatusFailed

	// Notifications
	KeyExtractSucceeded
	KeyExtractFailed
	KeyMaxImages
	KeyUploadFailed
	KeyProjectCreated
	KeyProjectCreateFailed
	KeyProjectLoadFailed
	KeyProjectsLoadFailed
	KeyImagesGenerated
	KeyImagesFailed
	KeyVideoStarted
	KeyVideoGenerated
	KeyVideoFailed
	KeyConfirmDelete
	KeyProjectDeleted
	KeyDeleteFailed
	KeyCaptionCopied
	KeyCopyFailed
	KeyNoProjects
	KeyLoginFailed
	KeyLoggedOut
	KeyWaitingForLogin

	// Misc
	KeyLoading
	KeyError
	KeySuccess
	KeyDelete
	KeyCancel
	KeyConfirm
	KeyBack
	KeyViewDetails
	KeyCreatedAt
	KeySwipeHint
	KeyVariations
	KeyRefresh
	KeyQuit
	KeyLanguage
	KeyTheme

	keyCount
)
