package domain

// Message keys resolved through a LocaleStore
const (
	MsgAppTitle       = "appTitle"
	MsgAppSubtitle    = "appSubtitle"
	MsgDocumentation  = "documentation"
	MsgGithub         = "github"
	MsgSettingsTitle  = "settingsTitle"
	MsgQualityLabel   = "qualityLabel"
	MsgQualityHigh    = "qualityHigh"
	MsgQualityMed     = "qualityMed"
	MsgQualityLow     = "qualityLow"
	MsgLowSize        = "lowSize"
	MsgBestQuality    = "bestQuality"
	MsgOutputFormat   = "outputFormat"
	MsgFormatJpegDesc = "formatJpegDesc"
	MsgFormatPngDesc  = "formatPngDesc"
	MsgFormatWebpDesc = "formatWebpDesc"

	// Terminal chrome
	MsgLanguage      = "language"
	MsgReadOnly      = "readOnly"
	MsgSaving        = "saving"
	MsgSaved         = "saved"
	MsgSaveFailed    = "saveFailed"
	MsgLanguageSaved = "languageSaved"
)
