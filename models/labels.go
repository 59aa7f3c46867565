package models

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Display labels for the snake_case keys used inside specification groups.
// The keys come from the catalog authors and are Vietnamese-derived codes.
var specLabelsEn = map[string]string{
	"dai":                   "Length",
	"rong":                  "Width",
	"cao":                   "Height",
	"duong_kinh_mat_ghe":    "Seat Diameter",
	"chieu_cao_tong_the":    "Total Height",
	"do_sau_long_ghe":       "Internal Depth",
	"mat_ghe":               "Seat Surface",
	"chieu_cao":             "Height",
	"chieu_cao_mat_ngoi":    "Seat Height",
	"tui_hong":              "Side Pocket",
	"duong_kinh":            "Diameter",
	"ban_lon":               "Large Table",
	"ban_nho":               "Small Table",
	"dung_tich_luu_tru_lit": "Storage Capacity (L)",
	"ghe_don":               "Ottoman",
	"ghe_bang":              "Bench",
	"vai":                   "Fabric",
	"go":                    "Wood",
	"chan_ghe":              "Legs",
	"khung":                 "Frame",
	"mat_ban":               "Table Top",
	"be_mat":                "Surface Finish",
	"vo_boc":                "Upholstery",
	"dem_mut":               "Foam",
	"khung_va_chan":         "Frame & Legs",
	"vai_boc":               "Fabric Cover",
}

var specLabelsVi = map[string]string{
	"dai":                   "Dài",
	"rong":                  "Rộng",
	"cao":                   "Cao",
	"duong_kinh_mat_ghe":    "Đường kính mặt ghế",
	"chieu_cao_tong_the":    "Chiều cao tổng thể",
	"do_sau_long_ghe":       "Độ sâu lòng ghế",
	"mat_ghe":               "Mặt ghế",
	"chieu_cao":             "Chiều cao",
	"chieu_cao_mat_ngoi":    "Chiều cao mặt ngồi",
	"tui_hong":              "Túi hông",
	"duong_kinh":            "Đường kính",
	"ban_lon":               "Bàn lớn",
	"ban_nho":               "Bàn nhỏ",
	"dung_tich_luu_tru_lit": "Dung tích lưu trữ",
	"ghe_don":               "Ghế đôn",
	"ghe_bang":              "Ghế băng",
	"vai":                   "Vải",
	"go":                    "Gỗ",
	"chan_ghe":              "Chân ghế",
	"khung":                 "Khung",
	"mat_ban":               "Mặt bàn",
	"be_mat":                "Bề mặt",
	"vo_boc":                "Vỏ bọc",
	"dem_mut":               "Đệm mút",
	"khung_va_chan":         "Khung và Chân",
	"vai_boc":               "Vải bọc",
}

var titleCaser = cases.Title(language.English)

// SpecKeyLabel translates a group key for display in the given language,
// falling back to a Title Case form of the snake_case key for unknown keys.
func SpecKeyLabel(key, lang string) string {
	if lang == "vi" {
		if label, ok := specLabelsVi[key]; ok {
			return label
		}
	} else if label, ok := specLabelsEn[key]; ok {
		return label
	}
	return titleCaser.String(strings.ReplaceAll(key, "_", " "))
}
