package models

// Review is a user-submitted product review. Reviews survive deletion
// of the product they reference; they are looked up by ProductID only.
type Review struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	UserName  string `json:"userName"`
	Rating    int    `json:"rating"` // 1–5
	Comment   string `json:"comment"`
	Date      string `json:"date"` // RFC 3339, set once at creation
	VideoURL  string `json:"videoUrl,omitempty"`
}
