package record

// RecordType is the clinical category of a record.
type RecordType string

const (
	TypeConsultation RecordType = "consultation"
	TypeAdmission    RecordType = "admission"
	TypeDischarge    RecordType = "discharge"
	TypeLabResult    RecordType = "lab_result"
	TypeImaging      RecordType = "imaging"
	TypePrescription RecordType = "prescription"
	TypeProcedure    RecordType = "procedure"
	TypeNursing      RecordType = "nursing"
	TypeProgressNote RecordType = "progress_note"
	TypeReferral     RecordType = "referral"
	TypeVaccination  RecordType = "vaccination"
	TypeAllergy      RecordType = "allergy"
	TypeVitalSigns   RecordType = "vital_signs"
	TypeAssessment   RecordType = "assessment"
	TypePlan         RecordType = "plan"
)

var allTypes = []RecordType{
	TypeConsultation, TypeAdmission, TypeDischarge, TypeLabResult, TypeImaging,
	TypePrescription, TypeProcedure, TypeNursing, TypeProgressNote, TypeReferral,
	TypeVaccination, TypeAllergy, TypeVitalSigns, TypeAssessment, TypePlan,
}

// AllTypes returns the known record types in display order.
func AllTypes() []RecordType {
	out := make([]RecordType, len(allTypes))
	copy(out, allTypes)
	return out
}

func (t RecordType) Valid() bool {
	_, ok := typeLabels[t]
	return ok
}

// Status is the lifecycle state of a record.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusAmended   Status = "amended"
	StatusArchived  Status = "archived"
)

var allStatuses = []Status{
	StatusDraft, StatusActive, StatusCompleted, StatusCancelled, StatusAmended, StatusArchived,
}

func AllStatuses() []Status {
	out := make([]Status, len(allStatuses))
	copy(out, allStatuses)
	return out
}

func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Priority is the clinical urgency of a record.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

var allPriorities = []Priority{PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent}

func AllPriorities() []Priority {
	out := make([]Priority, len(allPriorities))
	copy(out, allPriorities)
	return out
}

func (p Priority) Valid() bool {
	_, ok := priorityIcons[p]
	return ok
}

// Record is a single medical-record entry as shown by the viewer. The
// viewer only reads records; their lifecycle belongs to the data layer.
type Record struct {
	ID               string     `json:"id" yaml:"id"`
	Title            string     `json:"title" yaml:"title"`
	Description      string     `json:"description" yaml:"description"`
	Date             string     `json:"date" yaml:"date"`
	Time             string     `json:"time,omitempty" yaml:"time,omitempty"`
	Type             RecordType `json:"type" yaml:"type"`
	Status           Status     `json:"status" yaml:"status"`
	Priority         Priority   `json:"priority" yaml:"priority"`
	Doctor           string     `json:"doctor" yaml:"doctor"`
	Department       string     `json:"department,omitempty" yaml:"department,omitempty"`
	Tags             []string   `json:"tags,omitempty" yaml:"tags,omitempty"`
	IsStarred        bool       `json:"isStarred" yaml:"isStarred"`
	HasAttachments   bool       `json:"hasAttachments,omitempty" yaml:"hasAttachments,omitempty"`
	AttachmentsCount int        `json:"attachmentsCount,omitempty" yaml:"attachmentsCount,omitempty"`
	PatientName      string     `json:"patientName,omitempty" yaml:"patientName,omitempty"`
	PatientID        string     `json:"patientId,omitempty" yaml:"patientId,omitempty"`
}
