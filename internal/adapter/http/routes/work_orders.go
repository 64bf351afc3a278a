package routes

import (
	"workorder_engine/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWorkOrders  = "/work-orders"
	PathPermissions = "/permissions"
)

func addWorkOrderRoutes(rg *gin.RouterGroup, h *handlers.WorkOrderHandler) {
	workOrders := rg.Group(PathWorkOrders)
	{
		workOrders.POST("", h.CreateWorkOrder)
		workOrders.GET("", h.ListWorkOrders)
		workOrders.GET("/:id", h.GetWorkOrder)
		workOrders.PATCH("/:id/cancel", h.CancelWorkOrder)
		workOrders.PATCH("/:id/reopen", h.ReopenWorkOrder)
		workOrders.PATCH("/:id/priority", h.ChangePriority)
		workOrders.POST("/:id/notes", h.AddNote)
		workOrders.POST("/:id/images", h.AddImage)

		// NTE requests are addressed by their date key.
		workOrders.GET("/:id/nte", h.GetNTEOverview)
		workOrders.PATCH("/:id/nte/:request_key/approve", h.ApproveNTE)
		workOrders.PATCH("/:id/nte/:request_key/deny", h.DenyNTE)
	}
}

func addPermissionRoutes(rg *gin.RouterGroup, h *handlers.PermissionHandler) {
	perms := rg.Group(PathPermissions)
	{
		perms.GET("/:role", h.GetRolePermissions)
		perms.POST("/check", h.CheckPermissions)
	}
}
