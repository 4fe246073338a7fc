package record

// Icon names a glyph and the color class it is drawn with.
type Icon struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

const (
	FallbackTypeLabel   = "其他记录"
	FallbackStatusLabel = "未知"
	FallbackStatusColor = "bg-gray-100 text-gray-800"
)

// FallbackTypeIcon is shared by every type without its own icon.
var FallbackTypeIcon = Icon{Name: "file", Color: "text-gray-500"}

var typeLabels = map[RecordType]string{
	TypeConsultation: "门诊记录",
	TypeAdmission:    "入院记录",
	TypeDischarge:    "出院记录",
	TypeLabResult:    "检验报告",
	TypeImaging:      "影像报告",
	TypePrescription: "处方记录",
	TypeProcedure:    "手术记录",
	TypeNursing:      "护理记录",
	TypeProgressNote: "病程记录",
	TypeReferral:     "转诊记录",
	TypeVaccination:  "疫苗接种",
	TypeAllergy:      "过敏记录",
	TypeVitalSigns:   "生命体征",
	TypeAssessment:   "评估记录",
	TypePlan:         "诊疗计划",
}

var typeIcons = map[RecordType]Icon{
	TypeConsultation: {Name: "file-text", Color: "text-blue-500"},
	TypeProgressNote: {Name: "file-text", Color: "text-indigo-500"},
	TypeAssessment:   {Name: "file-text", Color: "text-cyan-500"},
	TypePlan:         {Name: "file-text", Color: "text-teal-500"},
	TypeAdmission:    {Name: "user", Color: "text-green-500"},
	TypeDischarge:    {Name: "user", Color: "text-orange-500"},
	TypeReferral:     {Name: "user", Color: "text-sky-500"},
	TypeLabResult:    {Name: "activity", Color: "text-purple-500"},
	TypeVitalSigns:   {Name: "activity", Color: "text-rose-500"},
	TypeImaging:      {Name: "image", Color: "text-pink-500"},
	TypePrescription: {Name: "pill", Color: "text-red-500"},
	TypeVaccination:  {Name: "pill", Color: "text-emerald-500"},
	TypeAllergy:      {Name: "pill", Color: "text-amber-500"},
	TypeProcedure:    {Name: "stethoscope", Color: "text-yellow-600"},
	TypeNursing:      {Name: "stethoscope", Color: "text-lime-600"},
}

var statusLabels = map[Status]string{
	StatusDraft:     "草稿",
	StatusActive:    "进行中",
	StatusCompleted: "已完成",
	StatusCancelled: "已取消",
	StatusAmended:   "已修改",
	StatusArchived:  "已归档",
}

var statusColors = map[Status]string{
	StatusDraft:     "bg-gray-100 text-gray-800",
	StatusActive:    "bg-blue-100 text-blue-800",
	StatusCompleted: "bg-green-100 text-green-800",
	StatusCancelled: "bg-red-100 text-red-800",
	StatusAmended:   "bg-yellow-100 text-yellow-800",
	StatusArchived:  "bg-purple-100 text-purple-800",
}

var priorityIcons = map[Priority]Icon{
	PriorityUrgent: {Name: "alert-triangle", Color: "text-red-500"},
	PriorityHigh:   {Name: "alert-triangle", Color: "text-orange-500"},
	PriorityNormal: {Name: "check-circle", Color: "text-green-500"},
	PriorityLow:    {Name: "check-circle", Color: "text-gray-400"},
}

func TypeLabel(t RecordType) string {
	if l, ok := typeLabels[t]; ok {
		return l
	}
	return FallbackTypeLabel
}

func TypeIcon(t RecordType) Icon {
	if i, ok := typeIcons[t]; ok {
		return i
	}
	return FallbackTypeIcon
}

func StatusLabel(s Status) string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return FallbackStatusLabel
}

func StatusColorClass(s Status) string {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return FallbackStatusColor
}

// PriorityIcon returns nil for anything outside the four known priorities,
// including the empty value.
func PriorityIcon(p Priority) *Icon {
	i, ok := priorityIcons[p]
	if !ok {
		return nil
	}
	return &i
}
