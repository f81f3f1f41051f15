package wheel

import (
	"errors"
	"net/http"
	dto "spin_wheel/internal/api/dto/wheel"
	"spin_wheel/internal/converter"
	"spin_wheel/internal/model"
	"spin_wheel/internal/service"
	"spin_wheel/pkg/req"
	"spin_wheel/pkg/resp"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv   service.WheelService
	Logger *zap.Logger
}

type Handler struct {
	serv   service.WheelService
	logger *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{serv: deps.Serv, logger: logger}
}

// Routes Маршруты колеса, монтируются в /wheel
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.Snapshot)
	r.Get("/progress", h.Progress)
	r.Get("/stats", h.Stats)
	r.Get("/revealed", h.Revealed)
	r.Get("/sections/{index}", h.Section)

	r.Post("/spin", h.Spin)
	r.Post("/keep", h.Keep)
	r.Post("/remove", h.Remove)
	r.Post("/edit", h.EnterEdit)
	r.Post("/sections", h.Save)
	r.Post("/reset", h.Reset)
}

func (h *Handler) Snapshot(w http.ResponseWriter, r *http.Request) {
	snap := h.serv.Snapshot(r.Context())
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSnapshotResponse(snap))
}

func (h *Handler) Progress(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToProgressResponse(h.serv.Progress(r.Context())))
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.Stats(r.Context())))
}

func (h *Handler) Section(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid section index")
		return
	}

	section, err := h.serv.Section(r.Context(), index)
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSectionResponse(section))
}

// Spin Запуск колеса. Повторный запуск во время вращения игнорируется: accepted=false
func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	result, err := h.serv.Spin(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(result))
}

func (h *Handler) Revealed(w http.ResponseWriter, r *http.Request) {
	reveal, err := h.serv.Revealed(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRevealResponse(*reveal))
}

func (h *Handler) Keep(w http.ResponseWriter, r *http.Request) {
	err := h.serv.Keep(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	result, err := h.serv.Remove(r.Context())
	if err != nil && result == nil {
		h.writeError(w, err)
		return
	}

	response := converter.ToRemoveResponse(*result)
	response.Warning = h.warning(err)

	resp.WriteJSONResponse(w, http.StatusOK, response)
}

func (h *Handler) EnterEdit(w http.ResponseWriter, r *http.Request) {
	target, err := h.serv.EnterEdit(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToEditResponse(*target))
}

func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SaveRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	statements, err := converter.ToStatements(payload)
	if err != nil {
		h.writeError(w, err)
		return
	}

	result, err := h.serv.Save(r.Context(), statements)
	if err != nil && result == nil {
		h.writeError(w, err)
		return
	}

	response := converter.ToSaveResponse(*result)
	response.Warning = h.warning(err)

	resp.WriteJSONResponse(w, http.StatusOK, response)
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.ResetRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	err = h.serv.Reset(r.Context(), payload.Confirm)
	if err != nil && !errors.Is(err, model.ErrPersistence) {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.ResetResponse{
		Reset:   true,
		Warning: h.warning(err),
	})
}

// warning Ошибка хранилища не ломает операцию, клиент получает предупреждение
func (h *Handler) warning(err error) string {
	if err == nil {
		return ""
	}
	h.logger.Warn("operation completed without persistence", zap.Error(err))
	return err.Error()
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := mapError(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("wheel request failed", zap.Error(err))
	}
	resp.WriteError(w, status, err.Error())
}

func mapError(err error) int {
	switch {
	case errors.Is(err, model.ErrValidation), errors.Is(err, model.ErrConfirmationRequired):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrOutOfRange):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidState),
		errors.Is(err, model.ErrSpinInProgress),
		errors.Is(err, model.ErrEmptyPool):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
