package handlers

import (
	"io"
	"net/http"
	"strings"

	request "workorder_engine/internal/adapter/http/dto/request"
	response "workorder_engine/internal/adapter/http/dto/response"
	"workorder_engine/internal/adapter/http/middleware"
	"workorder_engine/internal/domain/entities"
	"workorder_engine/internal/infrastructure/logger"
	"workorder_engine/internal/usecase"
	"workorder_engine/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const maxImageBytes = 10 << 20

// WorkOrderHandler handles HTTP requests for work orders and their NTE requests.
type WorkOrderHandler struct {
	usecase usecase.IWorkOrderUseCase
	log     logrus.FieldLogger
}

func NewWorkOrderHandler(uc usecase.IWorkOrderUseCase) *WorkOrderHandler {
	request.RegisterJSONTagNames()
	return &WorkOrderHandler{usecase: uc, log: logger.Get().WithField("component", "http")}
}

func (h *WorkOrderHandler) actor(c *gin.Context) (entities.ActingUser, bool) {
	u, ok := middleware.ActingUser(c)
	if !ok {
		c.JSON(errMissingIdentity.HTTPStatus, errMissingIdentity.ToHTTPError())
	}
	return u, ok
}

func (h *WorkOrderHandler) fail(c *gin.Context, op string, err error) {
	appErr := mapWorkOrderError(err)
	entry := h.log.WithFields(logrus.Fields{"op": op, "work_order_id": c.Param("id"), "code": appErr.Code})
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.LogError(h.log, "handlers", op, "request failed", c.Param("id"), err)
	} else {
		entry.WithError(err).Debug("request rejected")
	}
	_ = c.Error(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func badPayload(c *gin.Context, err error) {
	appErr := errInvalidPayload
	if fields := request.FieldErrors(err); fields != nil {
		appErr = errInvalidPayload.WithDetails(fields)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func (h *WorkOrderHandler) respond(c *gin.Context, status int, op string, actor entities.ActingUser, res usecase.MutationResult, err error) {
	if err != nil {
		h.fail(c, op, err)
		return
	}
	if res.NotificationFailed {
		h.log.WithFields(logrus.Fields{"op": op, "work_order_id": res.WorkOrder.ID, "warnings": res.Warnings}).Warn("committed with warnings")
	}
	c.JSON(status, response.FromMutationResult(res, actor))
}

// CreateWorkOrder submits a new work order.
// @Summary      Submit a work order
// @Tags         work-orders
// @Accept       json
// @Produce      json
// @Param        payload body request.CreateWorkOrderRequest true "Work order"
// @Success      201 {object} response.MutationResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      403 {object} pkg.HTTPError
// @Router       /work-orders [post]
func (h *WorkOrderHandler) CreateWorkOrder(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var payload request.CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		badPayload(c, err)
		return
	}
	res, err := h.usecase.Create(c.Request.Context(), payload.ToCommand(), actor)
	h.respond(c, http.StatusCreated, "create", actor, res, err)
}

// GetWorkOrder returns a work order visible to the caller.
// @Summary      Get a work order
// @Tags         work-orders
// @Produce      json
// @Param        id path string true "Work order ID"
// @Success      200 {object} response.WorkOrderResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /work-orders/{id} [get]
func (h *WorkOrderHandler) GetWorkOrder(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	wo, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		h.fail(c, "get", err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(wo, actor))
}

// ListWorkOrders lists the work orders of ?client_ref=, or of the caller's client.
// @Summary      List work orders of a client
// @Tags         work-orders
// @Produce      json
// @Param        client_ref query string false "Client reference"
// @Success      200 {array} response.WorkOrderResponse
// @Router       /work-orders [get]
func (h *WorkOrderHandler) ListWorkOrders(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	items, err := h.usecase.ListByClient(c.Request.Context(), c.Query("client_ref"), actor)
	if err != nil {
		h.fail(c, "list", err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrders(items, actor))
}

// @Summary      Cancel a work order
// @Tags         work-orders
// @Accept       json
// @Produce      json
// @Param        id path string true "Work order ID"
// @Param        payload body request.ReasonRequest true "Cancellation reason"
// @Success      200 {object} response.MutationResponse
// @Failure      409 {object} pkg.HTTPError
// @Failure      422 {object} pkg.HTTPError
// @Router       /work-orders/{id}/cancel [patch]
func (h *WorkOrderHandler) CancelWorkOrder(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var payload request.ReasonRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		badPayload(c, err)
		return
	}
	res, err := h.usecase.Cancel(c.Request.Context(), c.Param("id"), payload.ResolveReason(), actor)
	h.respond(c, http.StatusOK, "cancel", actor, res, err)
}

// @Summary      Reopen a completed work order
// @Tags         work-orders
// @Accept       json
// @Produce      json
// @Param        id path string true "Work order ID"
// @Param        payload body request.ReasonRequest true "Reopen reason"
// @Success      200 {object} response.MutationResponse
// @Failure      422 {object} pkg.HTTPError
// @Router       /work-orders/{id}/reopen [patch]
func (h *WorkOrderHandler) ReopenWorkOrder(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var payload request.ReasonRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		badPayload(c, err)
		return
	}
	res, err := h.usecase.Reopen(c.Request.Context(), c.Param("id"), payload.ResolveReason(), actor)
	h.respond(c, http.StatusOK, "reopen", actor, res, err)
}

// @Summary      Change the priority of a work order
// @Tags         work-orders
// @Accept       json
// @Produce      json
// @Param        id path string true "Work order ID"
// @Param        payload body request.ChangePriorityRequest true "New priority"
// @Success      200 {object} response.MutationResponse
// @Router       /work-orders/{id}/priority [patch]
func (h *WorkOrderHandler) ChangePriority(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var payload request.ChangePriorityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		badPayload(c, err)
		return
	}
	res, err := h.usecase.ChangePriority(c.Request.Context(), c.Param("id"), entities.Priority(payload.Priority), actor)
	h.respond(c, http.StatusOK, "change_priority", actor, res, err)
}

// @Summary      Pending and answered NTE requests
// @Tags         nte
// @Produce      json
// @Param        id path string true "Work order ID"
// @Success      200 {object} response.NTEOverviewResponse
// @Router       /work-orders/{id}/nte [get]
func (h *WorkOrderHandler) GetNTEOverview(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	ov, err := h.usecase.NTEOverview(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		h.fail(c, "nte_overview", err)
		return
	}
	c.JSON(http.StatusOK, response.FromNTEOverview(ov))
}

// ApproveNTE approves the request addressed by :request_key (its RFC3339 date).
// @Summary      Approve an NTE request
// @Tags         nte
// @Produce      json
// @Param        id path string true "Work order ID"
// @Param        request_key path string true "NTE request key"
// @Success      200 {object} response.MutationResponse
// @Failure      409 {object} pkg.HTTPError
// @Router       /work-orders/{id}/nte/{request_key}/approve [patch]
func (h *WorkOrderHandler) ApproveNTE(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	res, err := h.usecase.ApproveNTE(c.Request.Context(), c.Param("id"), c.Param("request_key"), actor)
	h.respond(c, http.StatusOK, "approve_nte", actor, res, err)
}

// @Summary      Deny an NTE request
// @Tags         nte
// @Accept       json
// @Produce      json
// @Param        id path string true "Work order ID"
// @Param        request_key path string true "NTE request key"
// @Param        payload body request.ReasonRequest true "Deny reason"
// @Success      200 {object} response.MutationResponse
// @Router       /work-orders/{id}/nte/{request_key}/deny [patch]
func (h *WorkOrderHandler) DenyNTE(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var payload request.ReasonRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		badPayload(c, err)
		return
	}
	res, err := h.usecase.DenyNTE(c.Request.Context(), c.Param("id"), c.Param("request_key"), payload.ResolveReason(), actor)
	h.respond(c, http.StatusOK, "deny_nte", actor, res, err)
}

// @Summary      Add a client note
// @Tags         work-orders
// @Accept       json
// @Produce      json
// @Param        id path string true "Work order ID"
// @Param        payload body request.AddNoteRequest true "Note"
// @Success      201 {object} response.MutationResponse
// @Router       /work-orders/{id}/notes [post]
func (h *WorkOrderHandler) AddNote(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var payload request.AddNoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		badPayload(c, err)
		return
	}
	res, err := h.usecase.AddNote(c.Request.Context(), c.Param("id"), strings.TrimSpace(payload.Body), entities.NotePriority(payload.Priority), actor)
	h.respond(c, http.StatusCreated, "add_note", actor, res, err)
}

// AddImage accepts a multipart upload in the "file" field.
// @Summary      Attach an image
// @Tags         work-orders
// @Accept       multipart/form-data
// @Produce      json
// @Param        id path string true "Work order ID"
// @Param        file formData file true "Image"
// @Success      201 {object} response.MutationResponse
// @Router       /work-orders/{id}/images [post]
func (h *WorkOrderHandler) AddImage(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.WithDetails(map[string]string{"file": "required"}).ToHTTPError())
		return
	}
	if fh.Size > maxImageBytes {
		appErr := pkg.NewDomainErrorSimple("FILE_TOO_LARGE", "Images are limited to 10MB", http.StatusRequestEntityTooLarge)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	f, err := fh.Open()
	if err != nil {
		h.fail(c, "add_image", err)
		return
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxImageBytes))
	if err != nil {
		h.fail(c, "add_image", err)
		return
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}
	res, err := h.usecase.AddImage(c.Request.Context(), c.Param("id"), usecase.ImageUpload{
		FileName:    fh.Filename,
		ContentType: contentType,
		Data:        data,
	}, actor)
	h.respond(c, http.StatusCreated, "add_image", actor, res, err)
}
