package response

import "petcare-booking/internal/usecase"

type PermissionResponse struct {
	Permission string `json:"permission"`
}

func FromPermissionView(v *usecase.PermissionView) *PermissionResponse {
	return &PermissionResponse{Permission: v.Permission}
}
