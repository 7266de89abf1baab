package i18n

import (
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/mmcdole/squeeze/internal/domain"
)

// Tags used for each supported language
var (
	tagEnglish     = language.English
	tagSimplified  = language.SimplifiedChinese
	tagTraditional = language.MustParse("zh-Hant-HK")
)

// TagFor returns the BCP 47 tag for a language code
func TagFor(code domain.LanguageCode) language.Tag {
	switch code {
	case domain.LanguageChineseSimplified:
		return tagSimplified
	case domain.LanguageChineseTraditionalHK:
		return tagTraditional
	default:
		return tagEnglish
	}
}

// catalog holds the built-in message tables, keyed by language code
var catalog = map[domain.LanguageCode]map[string]string{
	domain.LanguageEnglish: {
		domain.MsgAppTitle:       "Image Compressor",
		domain.MsgAppSubtitle:    "Compress images right in your terminal",
		domain.MsgDocumentation:  "Documentation",
		domain.MsgGithub:         "GitHub",
		domain.MsgSettingsTitle:  "Compression Settings",
		domain.MsgQualityLabel:   "Quality",
		domain.MsgQualityHigh:    "High",
		domain.MsgQualityMed:     "Medium",
		domain.MsgQualityLow:     "Low",
		domain.MsgLowSize:        "Smaller file",
		domain.MsgBestQuality:    "Best quality",
		domain.MsgOutputFormat:   "Output Format",
		domain.MsgFormatJpegDesc: "JPG is best for photos with many colors.",
		domain.MsgFormatPngDesc:  "PNG keeps transparency and is lossless; quality has no effect.",
		domain.MsgFormatWebpDesc: "WebP gives the smallest files with good quality.",
		domain.MsgLanguage:       "Language",
		domain.MsgReadOnly:       "Settings are locked",
		domain.MsgSaving:         "Saving…",
		domain.MsgSaved:          "Settings saved",
		domain.MsgSaveFailed:     "Could not save settings",
		domain.MsgLanguageSaved:  "Language changed",
	},
	domain.LanguageChineseSimplified: {
		domain.MsgAppTitle:       "图片压缩",
		domain.MsgAppSubtitle:    "在终端中直接压缩图片",
		domain.MsgDocumentation:  "文档",
		domain.MsgGithub:         "GitHub",
		domain.MsgSettingsTitle:  "压缩设置",
		domain.MsgQualityLabel:   "质量",
		domain.MsgQualityHigh:    "高",
		domain.MsgQualityMed:     "中",
		domain.MsgQualityLow:     "低",
		domain.MsgLowSize:        "文件更小",
		domain.MsgBestQuality:    "最佳质量",
		domain.MsgOutputFormat:   "输出格式",
		domain.MsgFormatJpegDesc: "JPG 适合色彩丰富的照片。",
		domain.MsgFormatPngDesc:  "PNG 支持透明且无损，质量设置无效。",
		domain.MsgFormatWebpDesc: "WebP 在保证质量的同时文件最小。",
		domain.MsgLanguage:       "语言",
		domain.MsgReadOnly:       "设置已锁定",
		domain.MsgSaving:         "正在保存…",
		domain.MsgSaved:          "设置已保存",
		domain.MsgSaveFailed:     "无法保存设置",
		domain.MsgLanguageSaved:  "语言已切换",
	},
	domain.LanguageChineseTraditionalHK: {
		domain.MsgAppTitle:       "圖片壓縮",
		domain.MsgAppSubtitle:    "在終端機中直接壓縮圖片",
		domain.MsgDocumentation:  "文件",
		domain.MsgGithub:         "GitHub",
		domain.MsgSettingsTitle:  "壓縮設定",
		domain.MsgQualityLabel:   "質素",
		domain.MsgQualityHigh:    "高",
		domain.MsgQualityMed:     "中",
		domain.MsgQualityLow:     "低",
		domain.MsgLowSize:        "檔案較細",
		domain.MsgBestQuality:    "最佳質素",
		domain.MsgOutputFormat:   "輸出格式",
		domain.MsgFormatJpegDesc: "JPG 適合色彩豐富的相片。",
		domain.MsgFormatPngDesc:  "PNG 支援透明且無損，質素設定無效。",
		domain.MsgFormatWebpDesc: "WebP 在保持質素的同時檔案最細。",
		domain.MsgLanguage:       "語言",
		domain.MsgReadOnly:       "設定已鎖定",
		domain.MsgSaving:         "正在儲存…",
		domain.MsgSaved:          "設定已儲存",
		domain.MsgSaveFailed:     "無法儲存設定",
		domain.MsgLanguageSaved:  "語言已切換",
	},
}

// newBundle loads the catalog into a go-i18n bundle with English as the fallback language
func newBundle() (*goi18n.Bundle, error) {
	bundle := goi18n.NewBundle(tagEnglish)
	for code, table := range catalog {
		msgs := make([]*goi18n.Message, 0, len(table))
		for id, text := range table {
			msgs = append(msgs, &goi18n.Message{ID: id, Other: text})
		}
		if err := bundle.AddMessages(TagFor(code), msgs...); err != nil {
			return nil, err
		}
	}
	return bundle, nil
}
