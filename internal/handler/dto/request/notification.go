package request

type PermissionRequest struct {
	Permission string `json:"permission" binding:"required"`
}
