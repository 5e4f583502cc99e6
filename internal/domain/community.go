package domain

// CommunityProject is a project published to recruit volunteer team members
// via join requests. It reuses the project status vocabulary but its status
// is not coupled to analytics or assignments.
type CommunityProject struct {
	ID          int32         `json:"id"`
	OwnerID     int32         `json:"owner_id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Status      ProjectStatus `json:"status"`
	CreatedOn   string        `json:"created_on"`

	Teams []TeamSlot `json:"teams,omitempty"`
}

// TeamSlot is a named sub-role on a community project with a finite number
// of open seats. RemainingSlots never goes below zero; the decrement is a
// guarded update on this row.
type TeamSlot struct {
	ID                 int32  `json:"id"`
	CommunityProjectID int32  `json:"community_project_id"`
	Name               string `json:"name"`
	RemainingSlots     int32  `json:"remaining_slots"`
}

type JoinRequestStatus string

const (
	JoinRequestStatusRequested JoinRequestStatus = "REQUESTED"
	JoinRequestStatusAccepted  JoinRequestStatus = "ACCEPTED"
	JoinRequestStatusRejected  JoinRequestStatus = "REJECTED"
)

// JoinRequest links a requesting user to a community project and a named
// team. A user gets one request per community project, ever; rejection does
// not open the door to a second attempt.
type JoinRequest struct {
	ID                 int32             `json:"id"`
	CommunityProjectID int32             `json:"community_project_id"`
	TeamSlotID         int32             `json:"team_slot_id"`
	TeamName           string            `json:"team_name"`
	UserID             int32             `json:"user_id"`
	Description        string            `json:"description"`
	Status             JoinRequestStatus `json:"status"`
	DecisionReason     string            `json:"decision_reason,omitempty"`
	CreatedOn          string            `json:"created_on"`
}
