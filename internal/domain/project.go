package domain

type ProjectStatus string

const (
	ProjectStatusPending  ProjectStatus = "PENDING"
	ProjectStatusApproved ProjectStatus = "APPROVED"
	ProjectStatusDeclined ProjectStatus = "DECLINED"
)

// MaxAssignments is the ceiling of simultaneous analyst assignments a
// launched project may hold.
const MaxAssignments = 5

// Project is a business project submitted for review and eventual listing.
// AssignmentCount mirrors the number of rows in assignments for this
// project; the two are only ever changed together, inside one transaction.
type Project struct {
	ID          int32  `json:"id"`
	OwnerID     int32  `json:"owner_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`

	Status          ProjectStatus `json:"status"`
	AssignmentCount int32         `json:"assignment_count"`

	BookmarkCount    int32 `json:"bookmark_count"`
	ViewCount        int32 `json:"view_count"`
	InteractionCount int32 `json:"interaction_count"`

	// Monthly income declared by the submitter, snapshotted into the
	// analytics record when one is created.
	MonthlyIncomeCents int32 `json:"monthly_income_cents"`

	PhotoURL    string `json:"photo_url,omitempty"`
	VideoURL    string `json:"video_url,omitempty"`
	DocumentURL string `json:"document_url,omitempty"`

	CreatedOn string `json:"created_on"`
	UpdatedOn string `json:"updated_on"`
}

// Assignment links one analyst to one project under review. The
// (project, analyst) pair is unique.
type Assignment struct {
	ID        int32  `json:"id"`
	ProjectID int32  `json:"project_id"`
	AnalystID int32  `json:"analyst_id"`
	CreatedOn string `json:"created_on"`
}

// ProjectUpdate carries the owner-editable fields applied on resubmission.
// Nil file fields mean "remove and release"; a changed URL means "replace
// and release the old object".
type ProjectUpdate struct {
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	Category           string  `json:"category"`
	MonthlyIncomeCents int32   `json:"monthly_income_cents"`
	PhotoURL           *string `json:"photo_url"`
	VideoURL           *string `json:"video_url"`
	DocumentURL        *string `json:"document_url"`
}
