package scrape

import "strings"

func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// GuessCategory infers the employer kind from the organization name.
// Unrecognized names default to research, the dominant source type.
func GuessCategory(unit string) string {
	switch {
	case strings.Contains(unit, "医院"):
		return "hospital"
	// 科学院/研究所 before 学院: "中国科学院" must not read as a campus
	case strings.Contains(unit, "研究所") || strings.Contains(unit, "研究院") ||
		strings.Contains(unit, "科学院") || strings.Contains(unit, "研究中心"):
		return "research"
	case strings.Contains(unit, "大学") || strings.Contains(unit, "学院"):
		return "university"
	case strings.Contains(unit, "公司") || strings.Contains(unit, "科技"):
		return "enterprise"
	default:
		return "research"
	}
}

// GuessRegion pulls a coarse region label out of free text; unrecognized
// text passes through cleaned, since location is an open domain.
var regionHints = []string{
	"北京", "上海", "广东", "深圳", "浙江", "江苏", "川渝", "四川", "重庆",
	"湖北", "湖南", "陕西", "山东", "天津", "海南", "香港", "澳门",
}

func GuessRegion(text string) string {
	for _, r := range regionHints {
		if strings.Contains(text, r) {
			switch r {
			case "深圳":
				return "广东"
			case "四川", "重庆":
				return "川渝"
			}
			return r
		}
	}
	return CleanText(text)
}
