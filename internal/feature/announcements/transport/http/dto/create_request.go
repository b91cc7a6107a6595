// Package dto defines the request payloads for the announcement endpoints.
package dto

// CreateAnnouncementReq is the payload for posting a new announcement.
type CreateAnnouncementReq struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body" binding:"required"`
}
