package handlers

import (
	"net/http"

	request "workorder_engine/internal/adapter/http/dto/request"
	response "workorder_engine/internal/adapter/http/dto/response"
	"workorder_engine/internal/domain/permissions"
	"workorder_engine/pkg"

	"github.com/gin-gonic/gin"
)

var errUnknownRole = pkg.NewDomainErrorSimple("UNKNOWN_ROLE", "Unknown role", http.StatusNotFound)

// PermissionHandler exposes the role -> permission table.
type PermissionHandler struct{}

func NewPermissionHandler() *PermissionHandler {
	request.RegisterJSONTagNames()
	return &PermissionHandler{}
}

func (h *PermissionHandler) GetRolePermissions(c *gin.Context) {
	role, err := permissions.ParseRole(c.Param("role"))
	if err != nil {
		c.JSON(errUnknownRole.HTTPStatus, errUnknownRole.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRolePermissions(role))
}

// CheckPermissions answers hasAny/hasAll for a role. Unknown roles are answered
// with allowed=false rather than an error.
func (h *PermissionHandler) CheckPermissions(c *gin.Context) {
	var payload request.PermissionCheckRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		badPayload(c, err)
		return
	}

	role := permissions.Role(payload.Role)
	perms := payload.ResolvePermissions()
	mode := payload.ResolveMode()

	var allowed bool
	if mode == request.CheckModeAny {
		allowed = permissions.HasAnyPermission(role, perms)
	} else {
		allowed = permissions.HasAllPermissions(role, perms)
	}
	c.JSON(http.StatusOK, response.NewPermissionCheckResponse(role, mode, perms, allowed))
}
