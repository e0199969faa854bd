// Package handlers translates HTTP requests on the stocks resource into
// commands and queries, and maps their outcomes onto the response envelope.
package handlers

import (
	"encoding/json"
	"net/http"

	"stocks-api/application/commands"
	"stocks-api/application/commands/bus"
	"stocks-api/application/queries"
	querybus "stocks-api/application/queries/bus"
	"stocks-api/domain/stock"
	"stocks-api/pkg/common"
	apperrors "stocks-api/pkg/errors"
	"stocks-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// StockHandler handles stock-related HTTP requests.
type StockHandler struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	logger     *zap.Logger
}

// NewStockHandler creates a new stock handler.
func NewStockHandler(commandBus *bus.CommandBus, queryBus *querybus.QueryBus, logger *zap.Logger) *StockHandler {
	return &StockHandler{
		commandBus: commandBus,
		queryBus:   queryBus,
		logger:     logger,
	}
}

// UpdateStockRequest is the recognized shape of a partial update. Extra
// body fields are accepted by the decoder and dropped: only stock_name and
// quantity are ever persisted on update.
type UpdateStockRequest struct {
	StockCode string   `json:"stock_code" validate:"required"`
	StockName *string  `json:"stock_name"`
	Quantity  *float64 `json:"quantity"`
}

// GetStock handles GET /stocks/{code}.
func (h *StockHandler) GetStock(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		common.RespondError(w, r, http.StatusBadRequest,
			string(apperrors.ErrorTypeValidation), "stock_code is required")
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.GetStockQuery{StockCode: code})
	if err != nil {
		h.respondError(w, r, err, "Failed to retrieve stock")
		return
	}

	common.RespondJSON(w, r, http.StatusOK, result)
}

// ListStocks handles GET /stocks.
func (h *StockHandler) ListStocks(w http.ResponseWriter, r *http.Request) {
	params := common.ExtractListParams(r)

	result, err := h.queryBus.Ask(r.Context(), queries.ListStocksQuery{
		Limit:    params.Limit,
		Offset:   params.Offset,
		Name:     params.Name,
		Category: params.Category,
		Sort:     params.Sort,
	})
	if err != nil {
		h.respondError(w, r, err, "Failed to list stocks")
		return
	}

	page, ok := result.(*queries.ListStocksResult)
	if !ok {
		h.respondError(w, r, apperrors.NewInternalError("unexpected list result"), "Failed to list stocks")
		return
	}

	common.RespondPage(w, r, http.StatusOK, page.Items, &common.Pagination{
		Limit:  page.Limit,
		Offset: page.Offset,
		Total:  page.Total,
	})
}

// CreateStock handles POST /stocks/{code}. The whole body becomes the
// record; its stock_code must match the path.
func (h *StockHandler) CreateStock(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	var record stock.Record
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		common.RespondError(w, r, http.StatusBadRequest,
			string(apperrors.ErrorTypeValidation), "Invalid request body")
		return
	}

	if record.Code() == "" || record.Code() != code {
		common.RespondError(w, r, http.StatusBadRequest,
			string(apperrors.ErrorTypeValidation), "stock_code in body must match the path")
		return
	}

	if err := h.commandBus.Send(r.Context(), commands.CreateStockCommand{Record: record}); err != nil {
		h.respondError(w, r, err, "Failed to create stock")
		return
	}

	common.RespondJSON(w, r, http.StatusCreated, common.SuccessResult{Success: true})
}

// UpdateStock handles PUT /stocks/{code}.
func (h *StockHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	var req UpdateStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, r, http.StatusBadRequest,
			string(apperrors.ErrorTypeValidation), "Invalid request body")
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, r, http.StatusBadRequest,
			string(apperrors.ErrorTypeValidation), err.Error())
		return
	}

	if req.StockCode != code {
		common.RespondError(w, r, http.StatusBadRequest,
			string(apperrors.ErrorTypeValidation), "stock_code in body must match the path")
		return
	}

	cmd := commands.UpdateStockCommand{
		StockCode: code,
		StockName: req.StockName,
		Quantity:  req.Quantity,
	}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.respondError(w, r, err, "Failed to update stock")
		return
	}

	common.RespondJSON(w, r, http.StatusOK, common.SuccessResult{Success: true})
}

// DeleteStock handles DELETE /stocks/{code}.
func (h *StockHandler) DeleteStock(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	if err := h.commandBus.Send(r.Context(), commands.DeleteStockCommand{StockCode: code}); err != nil {
		h.respondError(w, r, err, "Failed to delete stock")
		return
	}

	common.RespondJSON(w, r, http.StatusOK, common.SuccessResult{Success: true})
}

// respondError maps an application error onto the envelope. Routine
// outcomes (validation, not-found, conflict) carry their own message;
// anything else is logged with the request id and surfaced as a generic
// 500 so internals never leak.
func (h *StockHandler) respondError(w http.ResponseWriter, r *http.Request, err error, generic string) {
	if appErr := apperrors.GetAppError(err); appErr != nil {
		switch appErr.Type {
		case apperrors.ErrorTypeValidation, apperrors.ErrorTypeNotFound, apperrors.ErrorTypeConflict:
			common.RespondError(w, r, appErr.HTTPStatus, string(appErr.Type), appErr.Message)
			return
		}
	}

	requestID, _ := common.GetRequestID(r.Context())
	h.logger.Error("request failed",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("requestID", requestID),
		zap.Error(err),
	)
	common.RespondError(w, r, http.StatusInternalServerError,
		string(apperrors.ErrorTypeInternal), generic)
}
