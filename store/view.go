package store

import "digimarket/models"

// ViewMode is a plain navigation target.
type ViewMode string

const (
	ModeCatalog   ViewMode = "catalog"
	ModeLibrary   ViewMode = "library"
	ModeDashboard ViewMode = "dashboard"
	ModeAdmin     ViewMode = "admin"
)

// Resolved drill-down views that override the plain mode.
const (
	ViewCoursePlayer  = "course-player"
	ViewProductDetail = "product-detail"
)

// ValidMode reports whether m names a navigation target.
func ValidMode(m string) bool {
	switch ViewMode(m) {
	case ModeCatalog, ModeLibrary, ModeDashboard, ModeAdmin:
		return true
	}
	return false
}

// ViewState is the current navigation mode plus optional drill-down
// selections. Drill-downs are cleared whenever the mode changes.
type ViewState struct {
	Mode      ViewMode `json:"mode"`
	ProductID string   `json:"productId,omitempty"`
	CourseID  string   `json:"courseId,omitempty"`
}

// resolveView picks the active view. Priority order: admin mode wins
// outright, then an active course that the user actually owns, then a
// product-detail selection, then the plain mode. A course id missing
// from the purchased set is inert and falls through.
func resolveView(vs ViewState, purchased []models.Product) string {
	if vs.Mode == ModeAdmin {
		return string(ModeAdmin)
	}
	if vs.CourseID != "" {
		for _, p := range purchased {
			if p.ID == vs.CourseID {
				return ViewCoursePlayer
			}
		}
	}
	if vs.ProductID != "" {
		return ViewProductDetail
	}
	return string(vs.Mode)
}
