package dto

// UpdateAnnouncementReq is the payload for editing an announcement. Absent
// fields are left unchanged; a request with no fields at all is rejected.
type UpdateAnnouncementReq struct {
	Title *string `json:"title"`
	Body  *string `json:"body"`
}
