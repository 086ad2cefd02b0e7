package domain

// Category is the kind of employer behind a posting. The set below is what
// sources emit today; unknown values pass through untouched so novel source
// data never breaks ingestion or display.
type Category string

const (
	CategoryResearch   Category = "research"
	CategoryHospital   Category = "hospital"
	CategoryUniversity Category = "university"
	CategoryEnterprise Category = "enterprise"
)

var categoryNames = map[Category]string{
	CategoryResearch:   "研究院所",
	CategoryHospital:   "医院",
	CategoryUniversity: "高校",
	CategoryEnterprise: "企业",
}

// DisplayName maps a category to its dashboard label, falling back to the
// raw value for categories outside the known set.
func (c Category) DisplayName() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return string(c)
}
